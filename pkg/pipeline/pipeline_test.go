package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/hierarchy"
	"github.com/matzehuels/classtower/pkg/observability"
	"github.com/matzehuels/classtower/pkg/render/nodelink"
	"github.com/matzehuels/classtower/pkg/render/uml"
	"github.com/matzehuels/classtower/pkg/scope"
	"github.com/matzehuels/classtower/pkg/source"
	"github.com/matzehuels/classtower/pkg/source/cpp"
)

var everything = hierarchy.ScopeFunc(func(source.Location) bool { return true })

// vehicleProgram is the four-class Vehicle hierarchy in one file.
func vehicleProgram() *source.Program {
	loc := source.Location{File: "/project/vehicle.h", Line: 1, Column: 1}
	vehicle := &source.Decl{Kind: source.KindClass, Name: "Vehicle", Loc: loc}
	classes := map[string]*source.Decl{"Vehicle": vehicle}
	unit := &source.Decl{Kind: source.KindUnit, Name: loc.File, Members: []*source.Decl{vehicle}}
	for _, name := range []string{"Car", "Motorcycle", "Bicycle"} {
		d := &source.Decl{
			Kind:  source.KindClass,
			Name:  name,
			Loc:   loc,
			Bases: []source.BaseRef{{Spelling: "Vehicle", Ref: "Vehicle"}},
		}
		classes[name] = d
		unit.Members = append(unit.Members, d)
	}
	return &source.Program{
		Language:  "cpp",
		Separator: "::",
		Units:     []*source.Decl{unit},
		Resolver: source.ResolverFunc(func(ref source.BaseRef) (*source.Decl, bool) {
			d, ok := classes[ref.Spelling]
			return d, ok
		}),
	}
}

type fakeBackend struct {
	name string
	out  string
	err  error
}

func (f fakeBackend) Name() string { return f.name }

func (f fakeBackend) Render(_ context.Context, g *hierarchy.Graph, w io.Writer) error {
	if f.err != nil {
		_, _ = io.WriteString(w, "partial")
		return f.err
	}
	_, err := io.WriteString(w, f.out+strings.Join(g.Names(), ","))
	return err
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

func TestRun(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.svg")
	second := filepath.Join(dir, "second.svg")

	var diag bytes.Buffer
	r := NewRunner(quietLogger(),
		Target{Backend: fakeBackend{name: "a", out: "A:"}, Path: first},
		Target{Backend: fakeBackend{name: "b", out: "B:"}, Path: second},
	)
	r.Diagnostics = &diag

	res, err := r.Run(context.Background(), vehicleProgram(), everything)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Stats.NodeCount)
	assert.Equal(t, 3, res.Stats.EdgeCount)
	assert.Zero(t, res.Stats.DanglingEdges)
	assert.Equal(t, map[string]string{"a": first, "b": second}, res.Outputs)
	assert.Len(t, res.Stats.RenderTimes, 2)
	assert.Contains(t, diag.String(), "Car\n  base : Vehicle\n")

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "A:Vehicle,Car,Motorcycle,Bicycle", string(data))
}

func TestRun_BackendFailureIsIsolated(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.svg")
	good := filepath.Join(dir, "good.svg")
	require.NoError(t, os.WriteFile(broken, []byte("previous"), 0o644))

	failure := errors.New(errors.ErrCodeLayoutFailed, "no layout")
	r := NewRunner(quietLogger(),
		Target{Backend: fakeBackend{name: "broken", err: failure}, Path: broken},
		Target{Backend: fakeBackend{name: "good", out: "ok:"}, Path: good},
	)

	res, err := r.Run(context.Background(), vehicleProgram(), everything)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.True(t, errors.Is(err, errors.ErrCodeLayoutFailed))
	assert.Contains(t, err.Error(), "broken")

	assert.Equal(t, map[string]string{"good": good}, res.Outputs)
	prev, _ := os.ReadFile(broken)
	assert.Equal(t, "previous", string(prev), "failed backend must not touch its output")
	_, statErr := os.Stat(good)
	assert.NoError(t, statErr)

	entries, _ := os.ReadDir(dir)
	assert.Len(t, entries, 2, "no temporary files left behind")
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.svg")
	r := NewRunner(quietLogger(), Target{Backend: fakeBackend{name: "a"}, Path: path})
	res, err := r.Run(ctx, vehicleProgram(), everything)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Outputs)
}

func TestValidateTargets(t *testing.T) {
	a := fakeBackend{name: "a"}
	tests := []struct {
		name    string
		targets []Target
		code    errors.Code
	}{
		{"ok", []Target{{a, "a.svg"}, {fakeBackend{name: "b"}, "b.svg"}}, ""},
		{"no backend", []Target{{nil, "a.svg"}}, errors.ErrCodeInvalidConfig},
		{"not svg", []Target{{a, "a.png"}}, errors.ErrCodeInvalidPath},
		{"same backend", []Target{{a, "a.svg"}, {a, "b.svg"}}, errors.ErrCodeInvalidConfig},
		{"same path", []Target{{a, "x.svg"}, {fakeBackend{name: "b"}, "x.svg"}}, errors.ErrCodeInvalidConfig},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTargets(tt.targets)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestWriteFileAtomic_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, writeFileAtomic(path, []byte("one")))
	require.NoError(t, writeFileAtomic(path, []byte("two")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := writeFileAtomic(filepath.Join(t.TempDir(), "nope", "out.svg"), []byte("x"))
	assert.True(t, errors.Is(err, errors.ErrCodeRenderFailed), "got %v", err)
}

func TestRun_GarageEndToEnd(t *testing.T) {
	garage := filepath.Join("..", "source", "cpp", "testdata", "garage")
	prog, err := cpp.New(nil).Load(context.Background(), source.LoadOptions{Paths: []string{garage}})
	require.NoError(t, err)
	filter, err := scope.New(garage)
	require.NoError(t, err)

	dir := t.TempDir()
	r := NewRunner(quietLogger(),
		Target{Backend: uml.New(), Path: filepath.Join(dir, DefaultUMLOutput)},
		Target{Backend: nodelink.New(), Path: filepath.Join(dir, DefaultGraphOutput)},
	)
	res, err := r.Run(context.Background(), prog, filter)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Stats.NodeCount)
	assert.Equal(t, 3, res.Stats.EdgeCount)

	for _, name := range []string{uml.Name, nodelink.Name} {
		data, err := os.ReadFile(res.Outputs[name])
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "<svg", name)
		assert.Contains(t, string(data), "Vehicle::Car", name)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnExtractComplete(_ context.Context, classes, edges int, _ time.Duration) {
	h.events = append(h.events, "extract")
}

func (h *recordingHooks) OnRenderStart(_ context.Context, backend string, _ int) {
	h.events = append(h.events, "start:"+backend)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, backend string, _ time.Duration, err error) {
	if err != nil {
		backend += "!"
	}
	h.events = append(h.events, "done:"+backend)
}

func TestRun_Hooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	dir := t.TempDir()
	r := NewRunner(quietLogger(),
		Target{Backend: fakeBackend{name: "a", err: errors.New(errors.ErrCodeRenderFailed, "boom")}, Path: filepath.Join(dir, "a.svg")},
		Target{Backend: fakeBackend{name: "b"}, Path: filepath.Join(dir, "b.svg")},
	)
	_, err := r.Run(context.Background(), vehicleProgram(), everything)
	require.Error(t, err)

	assert.Equal(t, []string{"extract", "start:a", "done:a!", "start:b", "done:b"}, hooks.events)
}
