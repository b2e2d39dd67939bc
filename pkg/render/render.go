package render

import (
	"context"
	"io"

	"github.com/matzehuels/classtower/pkg/hierarchy"
)

// Backend lays out a hierarchy graph and writes the resulting diagram.
type Backend interface {
	// Name identifies the backend in logs, statistics and output maps.
	Name() string
	// Render writes the diagram of g to w. g must not be modified.
	Render(ctx context.Context, g *hierarchy.Graph, w io.Writer) error
}

// Drawable returns the edges of g whose endpoints are both registered
// classes, in creation order, and the number of edges left out.
func Drawable(g *hierarchy.Graph) (edges []hierarchy.Edge, dropped int) {
	for _, e := range g.Edges() {
		if g.Resolvable(e) && e.From != e.To {
			edges = append(edges, e)
			continue
		}
		dropped++
	}
	return edges, dropped
}
