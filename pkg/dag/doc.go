// Package dag provides a directed acyclic graph organized into rows, the
// working structure of classtower's layered UML layout.
//
// # Overview
//
// A layered drawing places every node on a horizontal row and requires every
// edge to connect two consecutive rows. The class diagram backend mirrors the
// hierarchy graph into a [DAG], assigns rows, inserts bend nodes for edges
// that skip rows and then orders each row to reduce crossings.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [DAG.AddNode] and edges with
// [DAG.AddEdge]. Node IDs must be unique; edges must connect existing nodes:
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "Car", Row: 0})
//	g.AddNode(dag.Node{ID: "Vehicle", Row: 1})
//	g.AddEdge(dag.Edge{From: "Car", To: "Vehicle"})
//
// [DAG.Validate] checks the layered invariants (consecutive rows, no cycle)
// once rows have been assigned.
//
// # Node Kinds
//
//   - [NodeKindRegular]: a node mirrored from the input graph
//   - [NodeKindBend]: a virtual node carrying an edge through a row
//
// Iteration order is insertion order everywhere, which keeps layouts stable
// across runs.
//
// # Edge Crossings
//
// [CountCrossings] and [CountLayerCrossings] count crossings between
// consecutive rows with a Fenwick tree in O(E log V). [CountPairCrossings]
// evaluates a single adjacent swap.
//
// # Related Packages
//
// The [transform] subpackage breaks cycles, assigns rows and subdivides long
// edges. The [perm] subpackage generates permutations for exhaustive
// ordering of small rows.
//
// [transform]: github.com/matzehuels/classtower/pkg/dag/transform
// [perm]: github.com/matzehuels/classtower/pkg/dag/perm
package dag
