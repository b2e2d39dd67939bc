// Package languages provides the complete list of supported source languages.
//
// This package exists to break import cycles: the provider packages (cpp,
// golang) import pkg/source, so pkg/source cannot import them back. Consumers
// that need the full language list import this package instead.
//
// Usage:
//
//	import "github.com/matzehuels/classtower/pkg/source/languages"
//
//	lang, err := languages.Lookup("c++")
//	if err != nil {
//	    return err
//	}
//	prog, err := lang.Provider(logger).Load(ctx, opts)
package languages

import (
	"strings"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/source"
	"github.com/matzehuels/classtower/pkg/source/cpp"
	"github.com/matzehuels/classtower/pkg/source/golang"
)

// All is the canonical list of supported languages.
var All = []*source.Language{
	cpp.Language,
	golang.Language,
}

// Find returns the Language with the given name or alias, or nil if not found.
func Find(name string) *source.Language {
	return source.FindLanguage(name, All)
}

// Lookup is like [Find] but reports an unknown name as an
// [errors.ErrCodeInvalidLanguage] error listing the supported names.
func Lookup(name string) (*source.Language, error) {
	if l := Find(name); l != nil {
		return l, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidLanguage,
		"unsupported language %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the canonical language names.
func Names() []string {
	names := make([]string, len(All))
	for i, l := range All {
		names[i] = l.Name
	}
	return names
}
