package cpp

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/matzehuels/classtower/pkg/source"
)

// fileParser turns one tree-sitter syntax tree into declarations.
type fileParser struct {
	src     []byte
	file    string
	index   *index
	scope   []string // named enclosing namespaces and classes
	params  []string // template parameter names of enclosing templates
	classes int
}

func (p *fileParser) unit(root *sitter.Node) *source.Decl {
	u := &source.Decl{Kind: source.KindUnit, Name: p.file, Loc: p.loc(root)}
	u.Members = p.items(root, false)
	return u
}

// items converts the named children of a container node. inClass selects
// member semantics: declarators become methods and fields instead of being
// ignored.
func (p *fileParser) items(n *sitter.Node, inClass bool) []*source.Decl {
	var out []*source.Decl
	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = append(out, p.item(n.NamedChild(i), inClass)...)
	}
	return out
}

func (p *fileParser) item(n *sitter.Node, inClass bool) []*source.Decl {
	switch n.Type() {
	case "namespace_definition":
		return p.namespace(n)

	case "class_specifier", "struct_specifier", "union_specifier":
		if d := p.class(n); d != nil {
			return []*source.Decl{d}
		}

	case "template_declaration":
		return p.template(n, inClass)

	case "declaration", "field_declaration", "type_definition":
		var out []*source.Decl
		if t := n.ChildByFieldName("type"); t != nil && isClassSpecifier(t) {
			if d := p.class(t); d != nil {
				out = append(out, d)
			}
		}
		if inClass && n.Type() != "type_definition" {
			out = append(out, p.members(n)...)
		}
		return out

	case "function_definition":
		var out []*source.Decl
		if inClass {
			out = p.members(n)
		}
		return append(out, p.localClasses(n)...)

	case "linkage_specification":
		if body := n.ChildByFieldName("body"); body != nil {
			if body.Type() == "declaration_list" {
				return p.items(body, inClass)
			}
			return p.item(body, inClass)
		}

	case "preproc_if", "preproc_ifdef", "preproc_else", "preproc_elif", "preproc_elifdef":
		return p.items(n, inClass)
	}
	return nil
}

func (p *fileParser) namespace(n *sitter.Node) []*source.Decl {
	var names []string
	if name := n.ChildByFieldName("name"); name != nil {
		names = splitScope(p.text(name))
	}
	body := n.ChildByFieldName("body")

	if len(names) == 0 {
		ns := &source.Decl{Kind: source.KindNamespace, Anonymous: true, Loc: p.loc(n)}
		if body != nil {
			saved := p.scope
			p.scope = append(p.scope[:len(p.scope):len(p.scope)], p.anonymousScope())
			ns.Members = p.items(body, false)
			p.scope = saved
		}
		return []*source.Decl{ns}
	}

	// "namespace a::b {}" nests one declaration per component.
	outer := &source.Decl{Kind: source.KindNamespace, Name: names[0], Loc: p.loc(n)}
	inner := outer
	for _, name := range names[1:] {
		next := &source.Decl{Kind: source.KindNamespace, Name: name, Loc: p.loc(n)}
		inner.Members = []*source.Decl{next}
		inner = next
	}
	if body != nil {
		saved := p.scope
		p.scope = append(p.scope[:len(p.scope):len(p.scope)], names...)
		inner.Members = p.items(body, false)
		p.scope = saved
	}
	return []*source.Decl{outer}
}

// anonymousScope names this file's unnamed namespace. Each file gets its
// own, so "namespace { class Impl {}; }" in two files yields two classes.
func (p *fileParser) anonymousScope() string {
	return "(anonymous namespace@" + filepath.Base(p.file) + ")"
}

// localClasses collects the classes defined in a function body, at any
// statement depth. They are qualified with the function's name.
func (p *fileParser) localClasses(fn *sitter.Node) []*source.Decl {
	body := fn.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	name, _ := p.declName(fn.ChildByFieldName("declarator"))
	saved := p.scope
	p.scope = append(p.scope[:len(p.scope):len(p.scope)], splitScope(stripTemplateArgs(name))...)
	defer func() { p.scope = saved }()
	return p.statements(body)
}

func (p *fileParser) statements(n *sitter.Node) []*source.Decl {
	var out []*source.Decl
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch {
		case isClassSpecifier(child):
			if d := p.class(child); d != nil {
				out = append(out, d)
			}
		case child.Type() == "declaration" || child.Type() == "type_definition":
			if t := child.ChildByFieldName("type"); t != nil && isClassSpecifier(t) {
				if d := p.class(t); d != nil {
					out = append(out, d)
				}
			}
		default:
			out = append(out, p.statements(child)...)
		}
	}
	return out
}

// template handles "template <...> decl". The parameters are in scope for
// the wrapped declaration only.
func (p *fileParser) template(n *sitter.Node, inClass bool) []*source.Decl {
	saved := p.params
	if params := n.ChildByFieldName("parameters"); params != nil {
		p.params = append(p.params[:len(p.params):len(p.params)], p.templateParams(params)...)
	}
	defer func() { p.params = saved }()

	var out []*source.Decl
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "template_parameter_list" {
			continue
		}
		out = append(out, p.item(child, inClass)...)
	}
	return out
}

func (p *fileParser) templateParams(list *sitter.Node) []string {
	var names []string
	for i := 0; i < int(list.NamedChildCount()); i++ {
		param := list.NamedChild(i)
		// type_parameter_declaration, optional_type_parameter_declaration,
		// variadic_type_parameter_declaration, template_template_parameter_declaration,
		// parameter_declaration and their optional/variadic forms.
		if name := param.ChildByFieldName("name"); name != nil {
			names = append(names, p.text(name))
			continue
		}
		if decl := param.ChildByFieldName("declarator"); decl != nil {
			if name, _ := p.declName(decl); name != "" {
				names = append(names, name)
			}
			continue
		}
		for j := int(param.NamedChildCount()) - 1; j >= 0; j-- {
			if c := param.NamedChild(j); c.Type() == "type_identifier" {
				names = append(names, p.text(c))
				break
			}
		}
	}
	return names
}

func isClassSpecifier(n *sitter.Node) bool {
	switch n.Type() {
	case "class_specifier", "struct_specifier", "union_specifier":
		return true
	}
	return false
}

// class converts a class specifier with a body. Forward declarations and
// elaborated type specifiers return nil.
func (p *fileParser) class(n *sitter.Node) *source.Decl {
	body := n.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	d := &source.Decl{Kind: source.KindClass, Loc: p.loc(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		d.Name = p.className(name)
	}
	if d.Name == "" {
		d.Anonymous = true
	}

	if !d.Anonymous {
		d.QualifiedName = strings.Join(append(p.scope[:len(p.scope):len(p.scope)], d.Name), Separator)
		p.index.add(d)
		p.classes++
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if clause := n.NamedChild(i); clause.Type() == "base_class_clause" {
			d.Bases = p.bases(clause)
		}
	}

	saved := p.scope
	if !d.Anonymous {
		p.scope = append(p.scope[:len(p.scope):len(p.scope)], d.Name)
	}
	d.Members = p.items(body, true)
	p.scope = saved
	return d
}

// className returns the name of a class head. "class ns::A {}" keeps its
// qualifier; "template <> class A<int> {}" names the primary template.
func (p *fileParser) className(n *sitter.Node) string {
	if n.Type() == "template_type" {
		if name := n.ChildByFieldName("name"); name != nil {
			return p.text(name)
		}
	}
	return stripTemplateArgs(p.text(n))
}

func (p *fileParser) bases(clause *sitter.Node) []source.BaseRef {
	var refs []source.BaseRef
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		b := clause.NamedChild(i)
		switch b.Type() {
		case "type_identifier", "qualified_identifier", "template_type":
			spelling := p.text(b)
			refs = append(refs, source.BaseRef{Spelling: spelling, Ref: p.lookup(spelling)})
		case "dependent_type":
			// "typename T::type" always names a template-dependent base.
			refs = append(refs, source.BaseRef{Spelling: b.Content(p.src)})
		}
	}
	return refs
}

// lookup prepares the resolution state for a base spelling. It returns nil
// for names that depend on a template parameter.
func (p *fileParser) lookup(spelling string) *baseLookup {
	global := strings.HasPrefix(spelling, Separator)
	key := strings.TrimPrefix(stripTemplateArgs(spelling), Separator)
	parts := splitScope(key)
	if len(parts) == 0 {
		return nil
	}
	for _, param := range p.params {
		if parts[0] == param {
			return nil
		}
	}
	return &baseLookup{
		name:      strings.Join(parts, Separator),
		scope:     append([]string(nil), p.scope...),
		anonymous: p.anonymousScope(),
		global:    global,
	}
}

// members converts a member declaration or inline definition into one
// method or field per declarator.
func (p *fileParser) members(n *sitter.Node) []*source.Decl {
	var out []*source.Decl
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.FieldNameForChild(i) != "declarator" {
			continue
		}
		decl := n.Child(i)
		name, isFunc := p.declName(decl)
		if name == "" {
			continue
		}
		kind := source.KindField
		if isFunc {
			kind = source.KindMethod
		}
		out = append(out, &source.Decl{Kind: kind, Name: name, Loc: p.loc(decl)})
	}
	return out
}

// declName unwraps a declarator to the declared name and reports whether it
// declares a function. A function pointer "void (*cb)(int)" is a field.
func (p *fileParser) declName(n *sitter.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Type() {
	case "identifier", "field_identifier", "type_identifier", "destructor_name",
		"operator_name", "qualified_identifier", "template_function", "template_method",
		"operator_cast":
		return p.text(n), false

	case "function_declarator":
		inner := n.ChildByFieldName("declarator")
		name, _ := p.declName(inner)
		if inner != nil && inner.Type() == "parenthesized_declarator" {
			return name, false
		}
		return name, true

	case "init_declarator", "pointer_declarator", "reference_declarator",
		"array_declarator", "parenthesized_declarator", "attributed_declarator":
		if inner := n.ChildByFieldName("declarator"); inner != nil {
			return p.declName(inner)
		}
		if c := n.NamedChildCount(); c > 0 {
			return p.declName(n.NamedChild(int(c) - 1))
		}
	}
	return "", false
}

func (p *fileParser) text(n *sitter.Node) string {
	return strings.Join(strings.Fields(n.Content(p.src)), "")
}

func (p *fileParser) loc(n *sitter.Node) source.Location {
	pt := n.StartPoint()
	return source.Location{File: p.file, Line: int(pt.Row) + 1, Column: int(pt.Column) + 1}
}

// stripTemplateArgs removes every bracket-balanced "<...>" group, so
// "ns::Base<std::vector<int>>" becomes "ns::Base".
func stripTemplateArgs(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func splitScope(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, Separator) {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
