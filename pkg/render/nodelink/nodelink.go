package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/hierarchy"
	"github.com/matzehuels/classtower/pkg/render"
)

// Name is the backend name.
const Name = "graphviz"

// DefaultEdgeLabel is the label put on every inheritance edge.
const DefaultEdgeLabel = "Ling"

// Option configures a [Backend].
type Option func(*Backend)

// WithEdgeLabel replaces [DefaultEdgeLabel]. An empty label leaves edges
// unlabelled.
func WithEdgeLabel(label string) Option {
	return func(b *Backend) { b.edgeLabel = label }
}

// WithLogger sets the logger for dropped edges.
func WithLogger(l *log.Logger) Option {
	return func(b *Backend) { b.logger = l }
}

// Backend renders hierarchy graphs with Graphviz "dot".
type Backend struct {
	edgeLabel string
	logger    *log.Logger
}

var _ render.Backend = (*Backend)(nil)

// New returns a Graphviz backend.
func New(opts ...Option) *Backend {
	b := &Backend{edgeLabel: DefaultEdgeLabel, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns "graphviz".
func (b *Backend) Name() string { return Name }

// Render lays out g with Graphviz and writes the SVG to w.
func (b *Backend) Render(ctx context.Context, g *hierarchy.Graph, w io.Writer) error {
	svg, err := b.renderSVG(ctx, g)
	if err != nil {
		return err
	}
	if _, err := w.Write(svg); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write graph diagram")
	}
	return nil
}

func (b *Backend) renderSVG(ctx context.Context, g *hierarchy.Graph) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "create graph")
	}
	defer graph.Close()

	nodes := make(map[string]*cgraph.Node, g.NodeCount())
	for _, name := range g.Names() {
		n, err := graph.CreateNodeByName(name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "create node %q", name)
		}
		nodes[name] = n
	}

	edges, dropped := render.Drawable(g)
	if dropped > 0 {
		b.logger.Warn("dropped dangling edges", "backend", Name, "count", dropped)
	}
	for _, e := range edges {
		edge, err := graph.CreateEdgeByName(e.From+"->"+e.To, nodes[e.From], nodes[e.To])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "create edge %s -> %s", e.From, e.To)
		}
		if b.edgeLabel != "" {
			edge.SetLabel(b.edgeLabel)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gv.SetLayout(graphviz.DOT)
	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "graphviz render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's <svg> tag, whose width and height
// are in points, with one whose viewBox starts at the origin and whose size
// matches the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
