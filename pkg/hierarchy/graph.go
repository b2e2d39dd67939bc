package hierarchy

import (
	"errors"
	"slices"

	"github.com/matzehuels/classtower/pkg/source"
)

var (
	// ErrEmptyName is returned by [Graph.AddClass] and [Graph.AddEdge] when a
	// class identity is empty.
	ErrEmptyName = errors.New("class name must not be empty")

	// ErrGraphFrozen is returned by every mutator once extraction has
	// completed and the graph was frozen.
	ErrGraphFrozen = errors.New("hierarchy graph is frozen")

	// ErrSelfInheritance is returned by [Graph.AddEdge] when a class would
	// derive from itself.
	ErrSelfInheritance = errors.New("class cannot derive from itself")
)

// ClassEntity is one class-like declaration of the analyzed project.
type ClassEntity struct {
	// Name is the fully-qualified identity and the graph key.
	Name string
	// Methods and Fields are qualified member names in declaration order.
	Methods []string
	Fields  []string
	// Bases lists the in-project base identities in declaration order.
	Bases []string
	// ExternalBases lists resolved bases that live outside the project root.
	ExternalBases []string
	Loc           source.Location
}

// Edge is an inheritance relation from a derived class to one of its bases.
type Edge struct {
	From string // derived
	To   string // base
}

// Graph is the canonical hierarchy model shared by every layout backend.
// It is built during one extraction pass and frozen afterwards, so readers
// need no synchronization once they receive it.
type Graph struct {
	nodes    map[string]*ClassEntity
	order    []string
	edges    []Edge
	seen     map[Edge]struct{}
	outgoing map[string][]string // derived -> bases
	frozen   bool
}

// NewGraph returns an empty, mutable graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]*ClassEntity),
		seen:     make(map[Edge]struct{}),
		outgoing: make(map[string][]string),
	}
}

// AddClass registers c under c.Name. If a class with that name already
// exists the existing entity is returned with added == false and c is
// ignored: registration is idempotent.
func (g *Graph) AddClass(c ClassEntity) (entity *ClassEntity, added bool, err error) {
	if g.frozen {
		return nil, false, ErrGraphFrozen
	}
	if c.Name == "" {
		return nil, false, ErrEmptyName
	}
	if existing, ok := g.nodes[c.Name]; ok {
		return existing, false, nil
	}
	node := &c
	g.nodes[c.Name] = node
	g.order = append(g.order, c.Name)
	return node, true, nil
}

// AddEdge records from → to. Endpoints are referenced by name and need not
// exist yet; a base may be registered after its derived class. A repeated
// pair is recorded once and reported with added == false.
func (g *Graph) AddEdge(from, to string) (added bool, err error) {
	if g.frozen {
		return false, ErrGraphFrozen
	}
	if from == "" || to == "" {
		return false, ErrEmptyName
	}
	if from == to {
		return false, ErrSelfInheritance
	}
	e := Edge{From: from, To: to}
	if _, ok := g.seen[e]; ok {
		return false, nil
	}
	g.seen[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.outgoing[from] = append(g.outgoing[from], to)
	return true, nil
}

// Freeze makes the graph read-only.
func (g *Graph) Freeze() { g.frozen = true }

// Frozen reports whether the graph is read-only.
func (g *Graph) Frozen() bool { return g.frozen }

// Class returns the entity registered under name.
func (g *Graph) Class(name string) (*ClassEntity, bool) {
	c, ok := g.nodes[name]
	return c, ok
}

// Classes returns all entities in registration order. The pointers refer to
// the graph's own entities and must be treated as read-only.
func (g *Graph) Classes() []*ClassEntity {
	out := make([]*ClassEntity, len(g.order))
	for i, name := range g.order {
		out[i] = g.nodes[name]
	}
	return out
}

// Names returns the class identities in registration order.
func (g *Graph) Names() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in creation order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Bases returns the base names recorded for derived, in edge order.
// The returned slice must not be modified.
func (g *Graph) Bases(derived string) []string { return g.outgoing[derived] }

// NodeCount returns the number of classes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of inheritance edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Resolvable reports whether both endpoints of e are registered classes.
func (g *Graph) Resolvable(e Edge) bool {
	_, okFrom := g.nodes[e.From]
	_, okTo := g.nodes[e.To]
	return okFrom && okTo
}

// Dangling returns the edges whose endpoints are not both registered.
func (g *Graph) Dangling() []Edge {
	var out []Edge
	for _, e := range g.edges {
		if !g.Resolvable(e) {
			out = append(out, e)
		}
	}
	return out
}
