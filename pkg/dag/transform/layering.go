package transform

import "github.com/matzehuels/classtower/pkg/dag"

// AssignLayers assigns rows by height: every sink (a node without outgoing
// edges) gets height 0 and every other node one more than its highest
// child. Rows are then numbered from the tallest node down:
//
//	row(n) = maxHeight - height(n)
//
// so all sinks share the last row and every edge points to a later row.
// For a hierarchy mirrored derived → base, the sinks are the classes without
// bases, and flipping the rows puts them on top with each class one row
// below its deepest base.
//
// Existing row assignments are overwritten. The graph must be acyclic; run
// [BreakCycles] first. Nodes on a cycle keep height 0.
//
// Time complexity is O(V + E).
func AssignLayers(g *dag.DAG) {
	nodes := g.Nodes()
	outDegree := make(map[string]int, len(nodes))
	height := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.OutDegree(n.ID)
		outDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	maxHeight := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, parent := range g.Parents(curr) {
			if h := height[curr] + 1; h > height[parent] {
				height[parent] = h
				maxHeight = max(maxHeight, h)
			}
			outDegree[parent]--
			if outDegree[parent] == 0 {
				queue = append(queue, parent)
			}
		}
	}

	rows := make(map[string]int, len(nodes))
	for _, n := range nodes {
		rows[n.ID] = maxHeight - height[n.ID]
	}
	g.SetRows(rows)
}
