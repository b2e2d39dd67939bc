// Package render defines the contract shared by classtower's layout
// backends.
//
// # Overview
//
// A [Backend] takes the frozen [hierarchy.Graph] produced by one extraction
// pass, mirrors it into its own working structure, lays it out and writes a
// diagram. Backends never modify the graph, so the same graph can be handed
// to several backends one after the other.
//
// Two backends ship with classtower:
//
//   - [uml]: a layered UML class diagram (class boxes, generalization
//     arrows) computed in-process
//   - [nodelink]: a plain node-link drawing laid out by Graphviz "dot"
//
// # Usage
//
//	var b render.Backend = uml.New()
//	if err := b.Render(ctx, g, w); err != nil {
//	    return err
//	}
//
// # Dangling Edges
//
// An edge whose endpoint is not a registered class cannot be drawn. Each
// backend mirrors only the edges [Drawable] returns and reports the number
// it dropped once.
//
// [uml]: github.com/matzehuels/classtower/pkg/render/uml
// [nodelink]: github.com/matzehuels/classtower/pkg/render/nodelink
package render
