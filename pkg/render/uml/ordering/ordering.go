package ordering

import (
	"context"

	"github.com/matzehuels/classtower/pkg/dag"
)

// Orderer determines the horizontal sequence of nodes in each row.
type Orderer interface {
	OrderRows(g *dag.DAG) map[int][]string
}

// ContextOrderer is an Orderer that stops early when ctx is done.
type ContextOrderer interface {
	Orderer
	OrderRowsContext(ctx context.Context, g *dag.DAG) map[int][]string
}

// Initial returns the insertion order of every row of g.
func Initial(g *dag.DAG) map[int][]string {
	orders := make(map[int][]string, g.RowCount())
	for _, r := range g.RowIDs() {
		orders[r] = dag.NodeIDs(g.NodesInRow(r))
	}
	return orders
}

func clone(orders map[int][]string) map[int][]string {
	out := make(map[int][]string, len(orders))
	for r, ids := range orders {
		out[r] = append([]string(nil), ids...)
	}
	return out
}
