package cpp

import (
	"strings"

	"github.com/matzehuels/classtower/pkg/source"
)

// baseLookup is the resolution state stored in [source.BaseRef.Ref].
type baseLookup struct {
	name      string   // qualified spelling without template arguments
	scope     []string // scope of the derived class's declaration
	anonymous string   // unnamed namespace of the derived class's file
	global    bool     // spelled with a leading "::"
}

// index holds every named class of every parsed file by qualified name.
// The first declaration with a body wins.
type index struct {
	classes map[string]*source.Decl
}

func newIndex() *index {
	return &index{classes: make(map[string]*source.Decl)}
}

func (x *index) add(d *source.Decl) {
	if _, ok := x.classes[d.QualifiedName]; !ok {
		x.classes[d.QualifiedName] = d
	}
}

// Resolve implements [source.Resolver] with unqualified-then-outward lookup.
func (x *index) Resolve(ref source.BaseRef) (*source.Decl, bool) {
	l, ok := ref.Ref.(*baseLookup)
	if !ok || l == nil {
		return nil, false
	}
	lowest := len(l.scope)
	if l.global {
		lowest = 0
	}
	// Members of the file's unnamed namespace are visible in the
	// enclosing scope, so each level also tries that namespace.
	names := []string{l.name, l.anonymous + Separator + l.name}
	for i := lowest; i >= 0; i-- {
		prefix := strings.Join(l.scope[:i], Separator)
		for _, name := range names {
			candidate := name
			if prefix != "" {
				candidate = prefix + Separator + name
			}
			if d, ok := x.classes[candidate]; ok {
				return d, true
			}
		}
	}
	return nil, false
}
