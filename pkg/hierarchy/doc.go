// Package hierarchy builds the class hierarchy graph of a program.
//
// # Overview
//
// An [Extractor] walks a [source.Program] exactly once. Every class-like
// declaration accepted by its [Scope] becomes a [ClassEntity] keyed by its
// fully-qualified name, and every base that resolves to an in-scope
// declaration becomes an [Edge] from the derived class to the base:
//
//	filter, _ := scope.New("/home/dev/engine")
//	g, stats := hierarchy.NewExtractor(filter,
//	    hierarchy.WithDiagnostics(os.Stdout),
//	).Extract(prog)
//
// # Resolution Rules
//
//   - A base the resolver cannot map to a declaration (a template parameter,
//     a type from headers that were never parsed) is skipped.
//   - A base that resolves to a declaration outside the scope never becomes
//     a node and no edge is drawn to it; its name is kept in
//     [ClassEntity.ExternalBases].
//   - Nested classes are independent nodes. No edge links an inner class to
//     the class that contains it.
//   - A class declared twice (a header seen from two units) is registered
//     once. Edges are deduplicated per (derived, base) pair.
//
// Resolvers should return declarations with QualifiedName set; otherwise the
// bare Name is used as the base identity.
//
// # Lifecycle
//
// The returned [Graph] is frozen: mutators return [ErrGraphFrozen]. Layout
// backends read it concurrently or in sequence without synchronization and
// build their own mirrors. Edges may still name classes that were never
// registered if a provider resolves a base inconsistently; [Graph.Dangling]
// reports them and backends drop them.
package hierarchy
