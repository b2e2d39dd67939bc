package transform

import (
	"fmt"

	"github.com/matzehuels/classtower/pkg/dag"
)

// Result summarises what [Layer] changed.
type Result struct {
	CyclesBroken int // back edges removed
	Bends        int // bend nodes inserted
	Rows         int // rows after layering
}

// Layer turns an arbitrary directed graph into a valid layered graph:
// it breaks cycles, assigns rows with [AssignLayers] and subdivides long
// edges. The returned error wraps the [dag.DAG.Validate] failure if the
// result is still not a proper layering.
func Layer(g *dag.DAG) (Result, error) {
	var r Result
	r.CyclesBroken = BreakCycles(g)
	AssignLayers(g)
	r.Bends = Subdivide(g)
	r.Rows = g.RowCount()
	if err := g.Validate(); err != nil {
		return r, fmt.Errorf("layered graph invalid: %w", err)
	}
	return r, nil
}
