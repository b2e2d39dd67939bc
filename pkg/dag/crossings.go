package dag

import (
	"maps"
	"slices"
)

// CountCrossings returns the total number of edge crossings for the given
// row orderings, summed over each pair of consecutive rows. orders maps a
// row to its node IDs from left to right; missing rows count as empty.
//
//	orders := map[int][]string{
//	    0: {"Car", "Bicycle"},
//	    1: {"Vehicle", "Toy"},
//	}
//	crossings := dag.CountCrossings(g, orders)
func CountCrossings(g *DAG, orders map[int][]string) int {
	rows := slices.Sorted(maps.Keys(orders))
	crossings := 0
	for _, r := range rows {
		if next, ok := orders[r+1]; ok {
			crossings += CountLayerCrossings(g, orders[r], next)
		}
	}
	return crossings
}

// CountLayerCrossings counts edge crossings between two adjacent rows with a
// Fenwick tree in O(E log V), E being the edges between the rows and V the
// nodes of the lower row.
//
// Two edges (u1,v1) and (u2,v2) cross if and only if
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// so the count equals the inversions of the target positions once edges are
// sorted by source position.
func CountLayerCrossings(g *DAG, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := PosMap(lower)

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, nodeID := range upper {
		for _, child := range g.Children(nodeID) {
			if pos, ok := lowerPos[child]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}

// CountPairCrossings counts the crossings between the edges of two nodes of
// the same row when left is placed before right. With useParents the edges
// to the previous row are considered, otherwise the edges to the next row.
// adjPos maps the adjacent row's node IDs to their positions.
//
// Comparing CountPairCrossings(g, a, b, ...) with CountPairCrossings(g, b, a, ...)
// tells whether swapping two neighbours reduces crossings.
func CountPairCrossings(g *DAG, left, right string, adjPos map[string]int, useParents bool) int {
	var lnbr, rnbr []string
	if useParents {
		lnbr = g.Parents(left)
		rnbr = g.Parents(right)
	} else {
		lnbr = g.Children(left)
		rnbr = g.Children(right)
	}

	crossings := 0
	for _, ln := range lnbr {
		lp, ok := adjPos[ln]
		if !ok {
			continue
		}
		for _, rn := range rnbr {
			if rp, ok := adjPos[rn]; ok && lp > rp {
				crossings++
			}
		}
	}
	return crossings
}
