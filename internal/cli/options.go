package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/observability"
	"github.com/matzehuels/classtower/pkg/scope"
	"github.com/matzehuels/classtower/pkg/source"
	"github.com/matzehuels/classtower/pkg/source/languages"
)

const (
	defaultLanguage = "cpp"
	defaultRoot     = "."
)

// sourceOptions are the flags shared by every command that loads code.
type sourceOptions struct {
	language string
	root     string
	includes []string
	paths    []string
	quiet    bool
}

func (o *sourceOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.language, "lang", "l", defaultLanguage, "source language: "+fmt.Sprint(languages.Names()))
	cmd.Flags().StringVar(&o.root, "root", defaultRoot, "project root; only classes declared under it are drawn")
	cmd.Flags().StringSliceVarP(&o.includes, "include", "I", nil, "extra paths parsed only to resolve bases (repeatable)")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "suppress the diagnostic stream")
}

// merge fills every option not set on the command line from cfg.
func (o *sourceOptions) merge(cmd *cobra.Command, args []string, cfg Config) {
	changed := cmd.Flags().Changed
	if !changed("lang") && cfg.Language != "" {
		o.language = cfg.Language
	}
	if !changed("root") && cfg.Root != "" {
		o.root = cfg.Root
	}
	if !changed("include") && len(cfg.Includes) > 0 {
		o.includes = cfg.Includes
	}
	o.paths = args
	if len(o.paths) == 0 {
		o.paths = cfg.Sources
	}
}

func (o *sourceOptions) validate() error {
	if err := errors.ValidatePath(o.root); err != nil {
		return err
	}
	for _, p := range append(append([]string(nil), o.paths...), o.includes...) {
		if err := errors.ValidatePath(p); err != nil {
			return err
		}
	}
	_, err := languages.Lookup(o.language)
	return err
}

// load parses the sources with the selected provider and builds the scope
// filter for the project root.
func (c *CLI) load(ctx context.Context, o *sourceOptions) (*source.Program, *scope.Filter, error) {
	if err := o.validate(); err != nil {
		return nil, nil, err
	}
	logger := loggerFromContext(ctx)

	lang, err := languages.Lookup(o.language)
	if err != nil {
		return nil, nil, err
	}
	filter, err := scope.New(o.root)
	if err != nil {
		return nil, nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "working directory")
	}

	prog := newProgress(logger)
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, lang.Name, o.paths)
	p, err := lang.Provider(logger).Load(ctx, source.LoadOptions{
		Dir:      wd,
		Paths:    o.paths,
		Includes: o.includes,
	})
	units := 0
	if p != nil {
		units = len(p.Units)
	}
	hooks.OnLoadComplete(ctx, lang.Name, units, time.Since(prog.start), err)
	if err != nil {
		return nil, nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d %s units", len(p.Units), lang.Name))
	return p, filter, nil
}
