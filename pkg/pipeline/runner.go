package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/classtower/pkg/hierarchy"
	"github.com/matzehuels/classtower/pkg/observability"
	"github.com/matzehuels/classtower/pkg/source"
)

// Runner executes the pipeline. It keeps no state between runs.
type Runner struct {
	Logger      *log.Logger
	Diagnostics io.Writer // extraction diagnostic stream; nil discards
	Targets     []Target
}

// NewRunner creates a runner for the given targets. A nil logger uses
// log.Default().
func NewRunner(logger *log.Logger, targets ...Target) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, Targets: targets}
}

// Extract runs the extraction stage only.
func (r *Runner) Extract(ctx context.Context, prog *source.Program, scope hierarchy.Scope) (*hierarchy.Graph, Stats) {
	diag := r.Diagnostics
	if diag == nil {
		diag = io.Discard
	}

	start := time.Now()
	g, es := hierarchy.NewExtractor(scope,
		hierarchy.WithDiagnostics(diag),
		hierarchy.WithLogger(r.Logger),
	).Extract(prog)

	stats := Stats{
		NodeCount:     g.NodeCount(),
		EdgeCount:     g.EdgeCount(),
		DanglingEdges: len(g.Dangling()),
		ExternalBases: es.ExternalBases,
		Unresolved:    es.Unresolved,
		ExtractTime:   time.Since(start),
	}
	observability.Pipeline().OnExtractComplete(ctx, stats.NodeCount, stats.EdgeCount, stats.ExtractTime)
	r.Logger.Info("extracted hierarchy",
		"classes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"duration", stats.ExtractTime)
	return g, stats
}

// Run extracts the hierarchy of prog restricted to scope and renders it
// with every target. The result is returned even when some targets fail;
// the error then joins the failures of all failed targets.
func (r *Runner) Run(ctx context.Context, prog *source.Program, scope hierarchy.Scope) (*Result, error) {
	if err := ValidateTargets(r.Targets); err != nil {
		return nil, err
	}

	g, stats := r.Extract(ctx, prog, scope)
	stats.RenderTimes = make(map[string]time.Duration, len(r.Targets))
	result := &Result{Graph: g, Outputs: make(map[string]string), Stats: stats}

	var errs []error
	for _, t := range r.Targets {
		name := t.Backend.Name()
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		start := time.Now()
		observability.Pipeline().OnRenderStart(ctx, name, g.NodeCount())
		err := r.renderTarget(ctx, g, t)
		result.Stats.RenderTimes[name] = time.Since(start)
		observability.Pipeline().OnRenderComplete(ctx, name, result.Stats.RenderTimes[name], err)
		if err != nil {
			r.Logger.Error("backend failed", "backend", name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		result.Outputs[name] = t.Path
		r.Logger.Info("wrote diagram",
			"backend", name,
			"path", t.Path,
			"duration", result.Stats.RenderTimes[name])
	}
	return result, errors.Join(errs...)
}

func (r *Runner) renderTarget(ctx context.Context, g *hierarchy.Graph, t Target) error {
	var buf bytes.Buffer
	if err := t.Backend.Render(ctx, g, &buf); err != nil {
		return err
	}
	return writeFileAtomic(t.Path, buf.Bytes())
}
