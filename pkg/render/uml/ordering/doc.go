// Package ordering arranges the nodes of each row of a layered graph from
// left to right so that few edges cross.
//
// # The Ordering Problem
//
// Once every class has a row, the only freedom left is the order within a
// row. Each pair of edges between two rows whose endpoints appear in
// opposite orders is a crossing. Minimising crossings is NP-hard even for
// two rows, so [Barycentric] combines heuristics with a bounded exact step:
//
//  1. Start from insertion order, which follows the declaration order of
//     the extracted classes.
//  2. Alternate top-down and bottom-up sweeps, sorting each row by the
//     mean position of its neighbours in the row just fixed.
//  3. After each sweep, swap adjacent nodes while that removes crossings
//     (transpose).
//  4. Keep the best ordering seen; stop early at zero crossings.
//  5. Rows no larger than ExhaustiveLimit are then tried in every
//     permutation against their fixed neighbour rows.
//
// # Usage
//
//	var o ordering.Orderer = ordering.Barycentric{Passes: 12}
//	orders := o.OrderRows(g) // map[row][]nodeID
//
// Orderers also implement [ContextOrderer]; a canceled context returns the
// best ordering found so far, which is always a valid arrangement.
package ordering
