// Package uml draws a class hierarchy as a layered UML class diagram.
//
// # Pipeline
//
// [Backend.Layout] runs the steps of a Sugiyama-style layout on a private
// mirror of the hierarchy graph:
//
//  1. [Mirror]: one DAG node per class, labelled with its qualified name and
//     sized [BoxWidth] x 20, and one edge per drawable inheritance relation,
//     derived → base. Dangling edges are dropped and counted.
//  2. [transform.Layer]: cycles are broken, rows assigned by inheritance
//     depth and long edges split at bend nodes.
//  3. Row ordering with an [ordering.Orderer], by default
//     [ordering.Barycentric].
//  4. Coordinates: rows are packed left to right, then pulled toward the
//     mean position of their neighbours without letting boxes overlap. Rows
//     are stacked with the classes without bases on top.
//
// [WriteSVG] then draws one box per class and one polyline per inheritance
// relation through its bend points, ending in a hollow generalization
// triangle at the base.
//
// # Errors
//
// A graph that is still not properly layered after step 2, or an orderer
// that loses nodes, fails with [errors.ErrCodeLayoutFailed]. Writing the
// SVG fails with [errors.ErrCodeRenderFailed].
//
// [transform.Layer]: github.com/matzehuels/classtower/pkg/dag/transform.Layer
// [errors.ErrCodeLayoutFailed]: github.com/matzehuels/classtower/pkg/errors.ErrCodeLayoutFailed
// [errors.ErrCodeRenderFailed]: github.com/matzehuels/classtower/pkg/errors.ErrCodeRenderFailed
package uml
