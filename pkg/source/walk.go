package source

// VisitFunc handles one declaration. enclosing lists the ancestors of d from
// the outermost unit inward and must not be retained. The return value
// reports whether Walk should descend into d.Members.
type VisitFunc func(d *Decl, enclosing []*Decl) bool

// Table dispatches declarations to handlers by Kind.
type Table map[Kind]VisitFunc

// Walk visits every declaration under units depth-first, in member order.
// Declarations whose Kind has no handler are descended into.
func Walk(units []*Decl, t Table) {
	var stack []*Decl
	var visit func(d *Decl)
	visit = func(d *Decl) {
		if d == nil {
			return
		}
		if fn, ok := t[d.Kind]; ok && !fn(d, stack) {
			return
		}
		stack = append(stack, d)
		for _, m := range d.Members {
			visit(m)
		}
		stack = stack[:len(stack)-1]
	}
	for _, u := range units {
		visit(u)
	}
}

// ScopeNames returns the names of the namespaces and classes in enclosing,
// outermost first. Units and anonymous scopes contribute nothing.
func ScopeNames(enclosing []*Decl) []string {
	var names []string
	for _, d := range enclosing {
		switch d.Kind {
		case KindNamespace, KindClass:
			if d.Name != "" && !d.Anonymous {
				names = append(names, d.Name)
			}
		}
	}
	return names
}
