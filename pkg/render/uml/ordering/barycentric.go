package ordering

import (
	"context"
	"slices"

	"github.com/matzehuels/classtower/pkg/dag"
	"github.com/matzehuels/classtower/pkg/dag/perm"
)

const (
	DefaultPasses          = 12
	DefaultExhaustiveLimit = 6
)

// Barycentric orders rows with alternating barycenter sweeps, transpose
// refinement and exhaustive search on small rows.
//
// The zero value uses [DefaultPasses] and [DefaultExhaustiveLimit]. A
// negative ExhaustiveLimit disables the exhaustive step.
type Barycentric struct {
	Passes          int
	ExhaustiveLimit int
}

// OrderRows implements [Orderer].
func (b Barycentric) OrderRows(g *dag.DAG) map[int][]string {
	return b.OrderRowsContext(context.Background(), g)
}

// OrderRowsContext implements [ContextOrderer].
func (b Barycentric) OrderRowsContext(ctx context.Context, g *dag.DAG) map[int][]string {
	passes := b.Passes
	if passes <= 0 {
		passes = DefaultPasses
	}
	limit := b.ExhaustiveLimit
	if limit == 0 {
		limit = DefaultExhaustiveLimit
	}

	rows := g.RowIDs()
	orders := Initial(g)
	best := clone(orders)
	bestCrossings := dag.CountCrossings(g, best)

	for pass := 0; pass < passes && bestCrossings > 0; pass++ {
		if ctx.Err() != nil {
			return best
		}
		if pass%2 == 0 {
			for i := 1; i < len(rows); i++ {
				sortByBarycenter(g, orders, rows[i], rows[i]-1, true)
			}
		} else {
			for i := len(rows) - 2; i >= 0; i-- {
				sortByBarycenter(g, orders, rows[i], rows[i]+1, false)
			}
		}
		transpose(g, orders, rows)

		if c := dag.CountCrossings(g, orders); c < bestCrossings {
			best, bestCrossings = clone(orders), c
		}
	}

	if limit > 0 && bestCrossings > 0 && ctx.Err() == nil {
		exhaustive(g, best, rows, limit)
	}
	return best
}

// sortByBarycenter reorders row by the mean position of each node's
// neighbours in adj. Nodes without neighbours there keep their position.
func sortByBarycenter(g *dag.DAG, orders map[int][]string, row, adj int, useParents bool) {
	ids := orders[row]
	adjPos := dag.PosMap(orders[adj])

	type entry struct {
		id     string
		center float64
	}
	entries := make([]entry, len(ids))
	for i, id := range ids {
		nbrs := g.Children(id)
		if useParents {
			nbrs = g.Parents(id)
		}
		sum, n := 0, 0
		for _, nb := range nbrs {
			if p, ok := adjPos[nb]; ok {
				sum += p
				n++
			}
		}
		center := float64(i)
		if n > 0 {
			center = float64(sum) / float64(n)
		}
		entries[i] = entry{id, center}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		switch {
		case a.center < b.center:
			return -1
		case a.center > b.center:
			return 1
		}
		return 0
	})
	for i, e := range entries {
		ids[i] = e.id
	}
}

// transpose swaps adjacent nodes while doing so strictly reduces crossings
// with both neighbouring rows.
func transpose(g *dag.DAG, orders map[int][]string, rows []int) {
	for improved := true; improved; {
		improved = false
		for _, r := range rows {
			ids := orders[r]
			above := dag.PosMap(orders[r-1])
			below := dag.PosMap(orders[r+1])
			for i := 0; i+1 < len(ids); i++ {
				u, v := ids[i], ids[i+1]
				keep := pairCrossings(g, u, v, above, below)
				swapped := pairCrossings(g, v, u, above, below)
				if swapped < keep {
					ids[i], ids[i+1] = v, u
					improved = true
				}
			}
		}
	}
}

func pairCrossings(g *dag.DAG, left, right string, above, below map[string]int) int {
	return dag.CountPairCrossings(g, left, right, above, true) +
		dag.CountPairCrossings(g, left, right, below, false)
}

// exhaustive tries every permutation of each row with at most limit nodes,
// keeping the other rows fixed.
func exhaustive(g *dag.DAG, orders map[int][]string, rows []int, limit int) {
	for _, r := range rows {
		ids := orders[r]
		if len(ids) < 2 || len(ids) > limit {
			continue
		}
		cost := func(row []string) int {
			return dag.CountLayerCrossings(g, orders[r-1], row) + dag.CountLayerCrossings(g, row, orders[r+1])
		}
		bestRow, bestCost := ids, cost(ids)
		for _, p := range perm.Generate(len(ids), 0) {
			if bestCost == 0 {
				break
			}
			candidate := perm.Apply(ids, p)
			if c := cost(candidate); c < bestCost {
				bestRow, bestCost = candidate, c
			}
		}
		orders[r] = bestRow
	}
}
