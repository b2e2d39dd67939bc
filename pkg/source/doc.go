// Package source defines the program model consumed by the hierarchy
// extractor.
//
// # Overview
//
// A [Program] is a forest of [Decl] values: one root per translation unit
// (a C++ file, a Go package) holding namespaces, classes, methods and fields.
// Each declaration carries a [Kind] tag, a source [Location], an optional
// qualified name, its member declarations and, for classes, the base types it
// names as written ([BaseRef]).
//
// The model is deliberately independent of any parser. Providers such as
// [cpp] and [golang] translate their own syntax trees into it, and attach a
// [Resolver] that maps a base reference back to the declaration it denotes.
//
// # Traversal
//
// [Walk] visits every declaration depth-first and dispatches on the Kind tag
// through a [Table]:
//
//	source.Walk(prog.Units, source.Table{
//	    source.KindClass: func(d *source.Decl, enclosing []*source.Decl) bool {
//	        fmt.Println(d.Name)
//	        return true // keep descending into nested classes
//	    },
//	})
//
// Kinds without an entry in the table are descended into, so namespaces and
// units are crossed transparently.
//
// [cpp]: github.com/matzehuels/classtower/pkg/source/cpp
// [golang]: github.com/matzehuels/classtower/pkg/source/golang
package source
