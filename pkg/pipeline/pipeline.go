// Package pipeline drives one classtower run: a single extraction pass
// followed by every configured layout backend.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Extract: walk the loaded program once and build the frozen
//     [hierarchy.Graph], writing the diagnostic stream on the way.
//  2. Render: hand the graph to each [Target] in order. A target renders
//     into memory first and only then replaces its output file, so a
//     failing backend never leaves a half-written diagram behind.
//
// Backends are independent. A failure is logged and collected, the
// remaining targets still run, and the joined failures are returned next
// to the [Result].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger,
//	    pipeline.Target{Backend: uml.New(), Path: "hierarchy_uml.svg"},
//	    pipeline.Target{Backend: nodelink.New(), Path: "hierarchy_graph.svg"},
//	)
//	runner.Diagnostics = os.Stdout
//	result, err := runner.Run(ctx, prog, filter)
package pipeline

import (
	"time"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/hierarchy"
	"github.com/matzehuels/classtower/pkg/render"
)

// Default output paths, relative to the working directory.
const (
	DefaultUMLOutput   = "hierarchy_uml.svg"
	DefaultGraphOutput = "hierarchy_graph.svg"
)

// Target pairs a backend with the file it writes.
type Target struct {
	Backend render.Backend
	Path    string
}

// Result holds the outcome of [Runner.Run].
type Result struct {
	Graph   *hierarchy.Graph
	Outputs map[string]string // backend name -> written path
	Stats   Stats
}

// Stats describes one run.
type Stats struct {
	NodeCount     int
	EdgeCount     int
	DanglingEdges int
	ExternalBases int
	Unresolved    int
	ExtractTime   time.Duration
	RenderTimes   map[string]time.Duration // per backend, failed ones included
}

// ValidateTargets checks that every target has a backend and a valid SVG
// path, and that no two targets share a backend name or an output path.
func ValidateTargets(targets []Target) error {
	names := make(map[string]bool, len(targets))
	paths := make(map[string]bool, len(targets))
	for i, t := range targets {
		if t.Backend == nil {
			return errors.New(errors.ErrCodeInvalidConfig, "target %d has no backend", i)
		}
		if err := errors.ValidateOutputPath(t.Path); err != nil {
			return err
		}
		name := t.Backend.Name()
		if names[name] {
			return errors.New(errors.ErrCodeInvalidConfig, "backend %q configured twice", name)
		}
		if paths[t.Path] {
			return errors.New(errors.ErrCodeInvalidConfig, "output %q used by several backends", t.Path)
		}
		names[name], paths[t.Path] = true, true
	}
	return nil
}
