package transform

import "github.com/matzehuels/classtower/pkg/dag"

// BreakCycles removes the back edges found by a depth-first search and
// returns how many were removed. The search starts from the sources in
// insertion order and then from any node not yet reached, so the removed
// edges are deterministic for a given graph.
//
// A well-formed class hierarchy has no cycles; they only appear when a
// provider resolves two names to each other.
func BreakCycles(g *dag.DAG) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var backEdges [][2]string

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, [2]string{node, child})
			}
		}
		color[node] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range backEdges {
		g.RemoveEdge(e[0], e[1])
	}
	return len(backEdges)
}
