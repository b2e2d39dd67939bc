package source

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Language describes one supported source language and how to build its
// provider.
type Language struct {
	Name    string
	Aliases []string
	// Extensions lists the file extensions the provider parses, if it works
	// on files rather than package patterns.
	Extensions  []string
	NewProvider func(logger *log.Logger) Provider
}

// Provider returns a provider logging to logger. A nil logger discards.
func (l *Language) Provider(logger *log.Logger) Provider {
	return l.NewProvider(logger)
}

// Matches reports whether name is the language's name or one of its aliases,
// ignoring case.
func (l *Language) Matches(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name == l.Name || slices.Contains(l.Aliases, name)
}

// FindLanguage returns the language in langs matching name, or nil.
func FindLanguage(name string, langs []*Language) *Language {
	for _, l := range langs {
		if l.Matches(name) {
			return l
		}
	}
	return nil
}
