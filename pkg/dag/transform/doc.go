// Package transform turns a directed class graph into a layered graph that
// the UML backend can order and draw.
//
// # Layering
//
// The pipeline has three steps, run in order by [Layer]:
//
//  1. [BreakCycles] removes back edges so the graph is acyclic.
//  2. [AssignLayers] gives every node a row. Edges point derived → base,
//     so rows are counted from the sinks: classes without bases share the
//     last row and every derived class sits at least one row earlier than
//     each of its bases.
//  3. [Subdivide] splits edges that span more than one row into a chain of
//     bend nodes, one per crossed row.
//
// After [Layer] returns without error, [dag.DAG.Validate] holds: every edge
// joins consecutive rows and there are no cycles.
//
// # Bend Nodes
//
// Bend nodes have [dag.NodeKindBend] and IDs of the form "from->to@row".
// They take part in crossing minimization like any other node and become
// the bend points of the drawn polyline. Following the children of bend
// nodes from a regular node reconstructs the original edge.
//
// # Usage
//
//	res, err := transform.Layer(g)
//	if err != nil {
//	    return err
//	}
//	log.Debug("layered", "rows", res.Rows, "bends", res.Bends)
package transform
