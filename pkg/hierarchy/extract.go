package hierarchy

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/classtower/pkg/source"
)

// Scope decides whether a declaration location belongs to the project.
// [scope.Filter] is the production implementation.
//
// [scope.Filter]: github.com/matzehuels/classtower/pkg/scope.Filter
type Scope interface {
	Contains(loc source.Location) bool
}

// ScopeFunc adapts a function to [Scope].
type ScopeFunc func(loc source.Location) bool

// Contains calls f(loc).
func (f ScopeFunc) Contains(loc source.Location) bool { return f(loc) }

// Option configures an [Extractor].
type Option func(*Extractor)

// WithDiagnostics sets the writer receiving the human-readable line per
// class, method, field and resolved base. The default discards them.
func WithDiagnostics(w io.Writer) Option {
	return func(e *Extractor) { e.diag = w }
}

// WithLogger sets the logger used for skipped bases and duplicates.
func WithLogger(l *log.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// Extractor walks a program once and builds its hierarchy graph.
type Extractor struct {
	scope  Scope
	diag   io.Writer
	logger *log.Logger
}

// NewExtractor returns an extractor restricted to declarations accepted by s.
func NewExtractor(s Scope, opts ...Option) *Extractor {
	e := &Extractor{scope: s, diag: io.Discard}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Stats summarises one extraction pass.
type Stats struct {
	Visited       int // class-like declarations in scope
	Duplicates    int // repeated declarations of an already registered class
	Unresolved    int // bases that could not be resolved to a declaration
	ExternalBases int // resolved bases outside the project root
}

type pass struct {
	*Extractor
	prog  *source.Program
	sep   string
	graph *Graph
	stats Stats
}

// Extract performs one full traversal of prog and returns the frozen graph.
func (e *Extractor) Extract(prog *source.Program) (*Graph, Stats) {
	p := &pass{Extractor: e, prog: prog, sep: prog.Separator, graph: NewGraph()}
	if p.sep == "" {
		p.sep = "::"
	}
	source.Walk(prog.Units, source.Table{
		source.KindClass: p.visitClass,
	})
	p.graph.Freeze()
	return p.graph, p.stats
}

// visitClass always descends so nested classes are visited as their own
// nodes.
func (p *pass) visitClass(d *source.Decl, enclosing []*source.Decl) bool {
	if d.Anonymous || d.Name == "" || !p.scope.Contains(d.Loc) {
		return true
	}
	p.stats.Visited++

	scopeName := p.qualify(source.ScopeNames(enclosing), d.Name)
	name := d.QualifiedName
	if name == "" {
		name = scopeName
	}
	fmt.Fprintln(p.diag, name)

	entity, added, err := p.graph.AddClass(ClassEntity{Name: name, Loc: d.Loc})
	if err != nil {
		p.logger.Warn("skipping class", "name", name, "err", err)
		return true
	}
	if !added {
		p.stats.Duplicates++
		p.logger.Debug("class already registered", "name", name, "at", d.Loc)
	}

	// Members are qualified by the class's lexical scope, like the class
	// name itself.
	for _, m := range d.Members {
		switch m.Kind {
		case source.KindMethod:
			q := p.memberName(name, m)
			fmt.Fprintf(p.diag, "  method : %s\n", q)
			if added {
				entity.Methods = append(entity.Methods, q)
			}
		case source.KindField:
			q := p.memberName(name, m)
			fmt.Fprintf(p.diag, "  field : %s\n", q)
			if added {
				entity.Fields = append(entity.Fields, q)
			}
		}
	}

	for _, ref := range d.Bases {
		base, ok := p.prog.Resolve(ref)
		if !ok || base == nil {
			p.stats.Unresolved++
			p.logger.Debug("unresolvable base", "class", name, "base", ref.Spelling)
			continue
		}
		baseName := base.QualifiedName
		if baseName == "" {
			baseName = base.Name
		}
		fmt.Fprintf(p.diag, "  base : %s\n", baseName)

		if !p.scope.Contains(base.Loc) {
			p.stats.ExternalBases++
			p.logger.Debug("base outside project", "class", name, "base", baseName)
			entity.ExternalBases = appendUnique(entity.ExternalBases, baseName)
			continue
		}
		if _, err := p.graph.AddEdge(name, baseName); err != nil {
			p.logger.Warn("skipping base", "class", name, "base", baseName, "err", err)
			continue
		}
		// Repeated declarations may add bases; Bases follows the edges.
		entity.Bases = appendUnique(entity.Bases, baseName)
	}
	return true
}

func (p *pass) qualify(scope []string, name string) string {
	return strings.Join(append(scope, name), p.sep)
}

func (p *pass) memberName(owner string, m *source.Decl) string {
	if m.QualifiedName != "" {
		return m.QualifiedName
	}
	return owner + p.sep + m.Name
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
