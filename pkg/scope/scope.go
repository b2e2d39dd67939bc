// Package scope decides which declarations belong to the analyzed project.
//
// A [Filter] is built from a project root. [Filter.Contains] accepts a
// declaration location when the location's file, made absolute and with
// symlinks resolved, is the root itself or lies below it. Locations that
// cannot be resolved (no file, a file that no longer exists, a broken
// symlink) are simply out of scope; the filter never reports an error for
// them.
package scope

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/source"
)

// Filter is a project-root predicate. It memoises canonical paths and is
// not safe for concurrent use.
type Filter struct {
	root  string
	cache map[string]string
}

// New returns a Filter for root. The root must exist; it is canonicalized
// once so later comparisons are plain string prefix checks.
func New(root string) (*Filter, error) {
	if err := errors.ValidatePath(root); err != nil {
		return nil, err
	}
	canon, err := canonical(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "project root %q", root)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "project root %q", root)
	}
	return &Filter{root: canon, cache: make(map[string]string)}, nil
}

// Root returns the canonical project root.
func (f *Filter) Root() string { return f.root }

// Contains reports whether loc lies under the project root.
func (f *Filter) Contains(loc source.Location) bool {
	if !loc.IsValid() {
		return false
	}
	path, ok := f.resolve(loc.File)
	if !ok {
		return false
	}
	return Under(f.root, path)
}

func (f *Filter) resolve(file string) (string, bool) {
	if p, ok := f.cache[file]; ok {
		return p, p != ""
	}
	p, err := canonical(file)
	if err != nil {
		p = ""
	}
	f.cache[file] = p
	return p, p != ""
}

// Under reports whether path equals root or lies below it. Both arguments
// must already be canonical. The match is a string prefix match that stops at
// a separator, so "/src/app" does not contain "/src/application".
func Under(root, path string) bool {
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
