package transform

import (
	"fmt"

	"github.com/matzehuels/classtower/pkg/dag"
)

// Subdivide replaces every edge spanning several rows by a chain of
// single-row edges through [dag.NodeKindBend] nodes, one per crossed row:
//
//	Before: Truck (row 0) → Vehicle (row 3)
//	After:  Truck → bend(1) → bend(2) → Vehicle
//
// Bend IDs have the form "from->to@row". The original edge's metadata moves
// to the last segment of its chain. Subdivide returns the number of bend
// nodes inserted.
func Subdivide(g *dag.DAG) int {
	gen := newIDGen(g.Nodes())
	bends := 0

	var toRemove []dag.Edge
	for _, e := range g.Edges() {
		src, srcOK := g.Node(e.From)
		dst, dstOK := g.Node(e.To)
		if !srcOK || !dstOK || dst.Row <= src.Row+1 {
			continue
		}

		toRemove = append(toRemove, e)
		prevID := src.ID
		for row := src.Row + 1; row < dst.Row; row++ {
			prevID = addBend(g, gen, prevID, e, row)
			bends++
		}
		if err := g.AddEdge(dag.Edge{From: prevID, To: dst.ID, Meta: e.Meta}); err != nil {
			panic(err)
		}
	}

	for _, e := range toRemove {
		g.RemoveEdge(e.From, e.To)
	}
	return bends
}

func addBend(g *dag.DAG, gen *idGen, from string, e dag.Edge, row int) string {
	id := gen.next(fmt.Sprintf("%s->%s@%d", e.From, e.To, row))
	if err := g.AddNode(dag.Node{ID: id, Row: row, Kind: dag.NodeKindBend}); err != nil {
		panic(err)
	}
	if err := g.AddEdge(dag.Edge{From: from, To: id}); err != nil {
		panic(err)
	}
	return id
}

type idGen struct {
	used map[string]struct{}
}

func newIDGen(nodes []*dag.Node) *idGen {
	m := make(map[string]struct{}, len(nodes)*2)
	for _, n := range nodes {
		m[n.ID] = struct{}{}
	}
	return &idGen{used: m}
}

func (gen *idGen) next(base string) string {
	id := base
	for i := 1; ; i++ {
		if _, exists := gen.used[id]; !exists {
			gen.used[id] = struct{}{}
			return id
		}
		id = fmt.Sprintf("%s__%d", base, i)
	}
}
