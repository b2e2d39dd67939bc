// Package golang builds a [source.Program] from Go packages.
//
// Packages are loaded with golang.org/x/tools/go/packages and inspected
// through go/types. Every package-level named struct or interface type is a
// class: its declared methods (or, for an interface, its explicit methods)
// are the methods, its named struct fields are the fields, and its embedded
// fields or embedded interfaces are the bases.
//
// Base resolution follows the type checker. Pointers are dereferenced and
// generic instantiations map to their origin type, so embedding *List[int]
// names List. A type parameter never resolves. A base declared in a package
// outside the load set still resolves; its location comes from export data,
// so a scope filter rooted at the module keeps it out of the graph.
//
// Any package load or type error fails the load: go/types cannot be trusted
// to report complete embeddings for code that does not type-check.
package golang

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/source"
)

// Separator joins package paths and type names.
const Separator = "."

// Language registers the Go provider.
var Language = &source.Language{
	Name:        "go",
	Aliases:     []string{"golang"},
	NewProvider: func(logger *log.Logger) source.Provider { return New(logger) },
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedTypes |
	packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedImports

// maxReportedErrors bounds the package errors quoted in a load failure.
const maxReportedErrors = 5

// Provider loads Go packages.
type Provider struct {
	logger *log.Logger
}

// New returns a provider. A nil logger discards.
func New(logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Provider{logger: logger}
}

// Name returns "go".
func (p *Provider) Name() string { return Language.Name }

// Load loads the package patterns in opts.Paths and opts.Includes, relative
// to opts.Dir. Without paths, "./..." is loaded.
func (p *Provider) Load(ctx context.Context, opts source.LoadOptions) (*source.Program, error) {
	patterns := slices.Clone(opts.Paths)
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	patterns = append(patterns, opts.Includes...)

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode:    loadMode,
		Dir:     opts.Dir,
		Context: ctx,
		Fset:    fset,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(errors.ErrCodeParseFailed, err, "load packages %s", strings.Join(patterns, " "))
	}
	if len(pkgs) == 0 {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no Go packages match %s", strings.Join(patterns, " "))
	}
	if err := packageErrors(pkgs); err != nil {
		return nil, err
	}
	p.logger.Debug("packages loaded", "count", len(pkgs))

	r := &resolver{fset: fset, decls: make(map[*types.TypeName]*source.Decl)}
	units := make([]*source.Decl, 0, len(pkgs))
	for _, pkg := range pkgs {
		units = append(units, r.unit(pkg))
	}

	return &source.Program{
		Language:  Language.Name,
		Separator: Separator,
		Units:     units,
		Resolver:  r,
	}, nil
}

func packageErrors(pkgs []*packages.Package) error {
	var msgs []string
	total := 0
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			total++
			if len(msgs) < maxReportedErrors {
				msgs = append(msgs, e.Error())
			}
		}
	}
	if total == 0 {
		return nil
	}
	if total > len(msgs) {
		msgs = append(msgs, fmt.Sprintf("and %d more", total-len(msgs)))
	}
	return errors.New(errors.ErrCodeParseFailed, "package errors: %s", strings.Join(msgs, "; "))
}

// resolver creates the declarations of one load and resolves embeddings.
type resolver struct {
	fset  *token.FileSet
	decls map[*types.TypeName]*source.Decl
}

func (r *resolver) unit(pkg *packages.Package) *source.Decl {
	u := &source.Decl{Kind: source.KindUnit, Name: pkg.PkgPath}
	if len(pkg.GoFiles) > 0 {
		u.Loc = source.Location{File: pkg.GoFiles[0], Line: 1, Column: 1}
	}
	ns := &source.Decl{Kind: source.KindNamespace, Name: pkg.PkgPath, Loc: u.Loc}
	u.Members = []*source.Decl{ns}
	if pkg.Types == nil {
		return u
	}

	scope := pkg.Types.Scope()
	var names []*types.TypeName
	for _, name := range scope.Names() {
		if tn, ok := scope.Lookup(name).(*types.TypeName); ok && !tn.IsAlias() {
			names = append(names, tn)
		}
	}
	// Declaration order, not the scope's alphabetical order.
	slices.SortStableFunc(names, func(a, b *types.TypeName) int { return int(a.Pos()) - int(b.Pos()) })

	for _, tn := range names {
		if d := r.class(tn); d != nil {
			ns.Members = append(ns.Members, d)
		}
	}
	return u
}

// class returns the declaration of a named struct or interface type, or nil
// for any other type.
func (r *resolver) class(tn *types.TypeName) *source.Decl {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}
	d := r.decl(tn)

	switch u := named.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			if f.Embedded() {
				d.Bases = append(d.Bases, r.baseRef(tn.Pkg(), f.Type()))
				continue
			}
			d.Members = append(d.Members, r.member(source.KindField, f))
		}
		for i := 0; i < named.NumMethods(); i++ {
			d.Members = append(d.Members, r.member(source.KindMethod, named.Method(i)))
		}
	case *types.Interface:
		for i := 0; i < u.NumEmbeddeds(); i++ {
			d.Bases = append(d.Bases, r.baseRef(tn.Pkg(), u.EmbeddedType(i)))
		}
		for i := 0; i < u.NumExplicitMethods(); i++ {
			d.Members = append(d.Members, r.member(source.KindMethod, u.ExplicitMethod(i)))
		}
	default:
		return nil
	}
	return d
}

func (r *resolver) decl(tn *types.TypeName) *source.Decl {
	if d, ok := r.decls[tn]; ok {
		return d
	}
	d := &source.Decl{
		Kind:          source.KindClass,
		Name:          tn.Name(),
		QualifiedName: qualifiedName(tn),
		Loc:           r.loc(tn.Pos()),
	}
	r.decls[tn] = d
	return d
}

func (r *resolver) member(kind source.Kind, obj types.Object) *source.Decl {
	return &source.Decl{Kind: kind, Name: obj.Name(), Loc: r.loc(obj.Pos())}
}

func (r *resolver) baseRef(from *types.Package, t types.Type) source.BaseRef {
	return source.BaseRef{
		Spelling: types.TypeString(t, types.RelativeTo(from)),
		Ref:      t,
	}
}

// Resolve implements [source.Resolver].
func (r *resolver) Resolve(ref source.BaseRef) (*source.Decl, bool) {
	t, ok := ref.Ref.(types.Type)
	if !ok || t == nil {
		return nil, false
	}
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}
	named, ok := t.(*types.Named)
	if !ok {
		// Type parameters, unions and other non-named embeddings.
		return nil, false
	}
	// Only structs and interfaces are classes; an embedded "type ID int"
	// is not a base.
	switch named.Underlying().(type) {
	case *types.Struct, *types.Interface:
	default:
		return nil, false
	}
	return r.decl(named.Origin().Obj()), true
}

func (r *resolver) loc(pos token.Pos) source.Location {
	if !pos.IsValid() {
		return source.Location{}
	}
	p := r.fset.Position(pos)
	return source.Location{File: p.Filename, Line: p.Line, Column: p.Column}
}

// qualifiedName returns "import/path.Name", or the bare name for universe
// types such as error.
func qualifiedName(tn *types.TypeName) string {
	if tn.Pkg() == nil {
		return tn.Name()
	}
	return tn.Pkg().Path() + Separator + tn.Name()
}
