// Package nodelink draws a class hierarchy as a plain node-link diagram
// laid out by Graphviz.
//
// # Overview
//
// The backend mirrors the hierarchy graph into a Graphviz graph: one node
// per class, named by its qualified name, and one edge per drawable
// inheritance relation from the derived class to its base. Every edge
// carries the same label, "Ling" unless [WithEdgeLabel] says otherwise.
// The graph is laid out with the "dot" engine and rendered to SVG.
//
// Unlike the uml backend, no sizes or styles are set: Graphviz decides
// everything from the node names.
//
// # Usage
//
//	b := nodelink.New(nodelink.WithLogger(logger))
//	err := b.Render(ctx, g, w)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process. The Graphviz instance and the graph are released when Render
// returns, whether or not rendering succeeded.
package nodelink
