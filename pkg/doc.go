// Package pkg holds the libraries behind classtower, which draws the
// inheritance hierarchy of a codebase.
//
// # Data flow
//
//	source provider (cpp, golang)
//	         ↓
//	    [source] Program: declaration tree + base resolver
//	         ↓
//	    [hierarchy] Extractor, filtered by [scope]
//	         ↓
//	    [hierarchy] Graph (frozen)
//	         ↓                         ↓
//	    [render/uml]             [render/nodelink]
//	    layered UML SVG          Graphviz dot SVG
//
// [pipeline] runs one extraction and then every backend, writing each
// artifact independently. [dag] and its subpackages carry the layered
// graph used by the UML backend.
package pkg
