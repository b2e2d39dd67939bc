// Package observability lets the binary observe pipeline stages without the
// library packages depending on a metrics or tracing backend.
//
// Hooks are registered once at startup:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//
// and called by the stages themselves:
//
//	observability.Pipeline().OnRenderStart(ctx, "uml", nodes)
//	// ... layout and write ...
//	observability.Pipeline().OnRenderComplete(ctx, "uml", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// PipelineHooks receives events from the extraction and rendering stages.
type PipelineHooks interface {
	// Source loading
	OnLoadStart(ctx context.Context, language string, paths []string)
	OnLoadComplete(ctx context.Context, language string, units int, duration time.Duration, err error)

	// Hierarchy extraction
	OnExtractComplete(ctx context.Context, classes, edges int, duration time.Duration)

	// Per-backend layout and write
	OnRenderStart(ctx context.Context, backend string, classes int)
	OnRenderComplete(ctx context.Context, backend string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string, []string)                     {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnExtractComplete(context.Context, int, int, time.Duration)        {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, int)                        {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error)    {}

// LogHooks reports every stage at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks logging to l.
func NewLogHooks(l *log.Logger) LogHooks {
	return LogHooks{Logger: l}
}

func (h LogHooks) OnLoadStart(_ context.Context, language string, paths []string) {
	h.Logger.Debug("load start", "language", language, "paths", paths)
}

func (h LogHooks) OnLoadComplete(_ context.Context, language string, units int, d time.Duration, err error) {
	h.Logger.Debug("load complete", "language", language, "units", units, "duration", d, "err", err)
}

func (h LogHooks) OnExtractComplete(_ context.Context, classes, edges int, d time.Duration) {
	h.Logger.Debug("extract complete", "classes", classes, "edges", edges, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, backend string, classes int) {
	h.Logger.Debug("render start", "backend", backend, "classes", classes)
}

func (h LogHooks) OnRenderComplete(_ context.Context, backend string, d time.Duration, err error) {
	h.Logger.Debug("render complete", "backend", backend, "duration", d, "err", err)
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
