package uml

import (
	"github.com/matzehuels/classtower/pkg/dag"
	"github.com/matzehuels/classtower/pkg/hierarchy"
	"github.com/matzehuels/classtower/pkg/render"
)

// Metadata keys set on mirrored nodes.
const (
	MetaLabel  = "label"
	MetaWidth  = "width"
	MetaHeight = "height"
)

const (
	charWidth  = 5
	boxPadding = 20
	boxHeight  = 20
)

// BoxWidth returns the width of the box drawn for label.
func BoxWidth(label string) float64 {
	return float64(len(label)*charWidth + boxPadding)
}

// Mirror copies g into a fresh DAG: one node per class in registration
// order, labelled and sized for drawing, and one edge per drawable
// inheritance relation, derived → base. It returns the number of edges
// left out because an endpoint is missing.
func Mirror(g *hierarchy.Graph) (*dag.DAG, int) {
	d := dag.New(nil)
	for _, name := range g.Names() {
		_ = d.AddNode(dag.Node{
			ID: name,
			Meta: dag.Metadata{
				MetaLabel:  name,
				MetaWidth:  BoxWidth(name),
				MetaHeight: float64(boxHeight),
			},
		})
	}

	edges, dropped := render.Drawable(g)
	for _, e := range edges {
		if err := d.AddEdge(dag.Edge{From: e.From, To: e.To}); err != nil {
			dropped++
		}
	}
	return d, dropped
}

func nodeSize(n *dag.Node) (w, h float64) {
	if n.IsBend() {
		return 0, 0
	}
	w, _ = n.Meta[MetaWidth].(float64)
	h, _ = n.Meta[MetaHeight].(float64)
	return w, h
}
