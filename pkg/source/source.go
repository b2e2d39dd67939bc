package source

import (
	"context"
	"fmt"
)

// Kind tags the variant of a [Decl].
type Kind int

const (
	// KindUnit is the root of one translation unit (a file or a package).
	KindUnit Kind = iota
	// KindNamespace is a named scope that only groups other declarations.
	KindNamespace
	// KindClass is a class-like type with a body: class, struct, union,
	// Go struct or interface.
	KindClass
	// KindMethod is a member function, constructor, destructor or operator.
	KindMethod
	// KindField is a data member.
	KindField
	// KindOther is anything the providers keep for traversal but that has no
	// meaning for the hierarchy (enums, aliases, free functions).
	KindOther
)

var kindNames = [...]string{
	KindUnit:      "unit",
	KindNamespace: "namespace",
	KindClass:     "class",
	KindMethod:    "method",
	KindField:     "field",
	KindOther:     "other",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Location is the position of a declaration in its originating file.
// Line and Column are 1-based; File is the path as reported by the provider.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsValid reports whether the location names a file.
func (l Location) IsValid() bool { return l.File != "" }

func (l Location) String() string {
	if !l.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// BaseRef is a base type as written in a class declaration.
// Ref holds provider-private state used by the [Resolver].
type BaseRef struct {
	Spelling string
	Ref      any
}

// Decl is one node of the declaration tree.
type Decl struct {
	Kind Kind
	// Name is the unqualified name; empty for anonymous declarations.
	Name string
	// QualifiedName is set when the provider knows the full identity
	// (e.g. a Go import path qualified type). Otherwise consumers derive it
	// from the enclosing declarations.
	QualifiedName string
	Loc           Location
	Members       []*Decl
	Bases         []BaseRef
	Anonymous     bool
}

// Resolver maps a base reference to the declaration it denotes.
type Resolver interface {
	Resolve(ref BaseRef) (*Decl, bool)
}

// ResolverFunc adapts a function to [Resolver].
type ResolverFunc func(ref BaseRef) (*Decl, bool)

// Resolve calls f(ref).
func (f ResolverFunc) Resolve(ref BaseRef) (*Decl, bool) { return f(ref) }

type nopResolver struct{}

func (nopResolver) Resolve(BaseRef) (*Decl, bool) { return nil, false }

// Program is a parsed body of source code.
type Program struct {
	// Language is the provider name ("cpp", "go").
	Language string
	// Separator joins scope names into qualified names ("::" or ".").
	Separator string
	Units     []*Decl
	Resolver  Resolver
}

// Resolve resolves ref with the program's resolver. A program without a
// resolver resolves nothing.
func (p *Program) Resolve(ref BaseRef) (*Decl, bool) {
	if p.Resolver == nil {
		return nopResolver{}.Resolve(ref)
	}
	return p.Resolver.Resolve(ref)
}

// LoadOptions tells a provider what to parse.
type LoadOptions struct {
	// Dir is the working directory for relative paths and package patterns.
	Dir string
	// Paths are files, directories or package patterns to analyze.
	Paths []string
	// Includes are parsed only to resolve base types declared elsewhere.
	Includes []string
}

// Provider builds a Program from source code.
type Provider interface {
	// Name returns the canonical language name.
	Name() string
	// Load parses the sources named by opts.
	Load(ctx context.Context, opts LoadOptions) (*Program, error)
}
