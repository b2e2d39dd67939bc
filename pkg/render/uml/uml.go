package uml

import (
	"bytes"
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/hierarchy"
	"github.com/matzehuels/classtower/pkg/render"
	"github.com/matzehuels/classtower/pkg/render/uml/ordering"
)

// Name is the backend name.
const Name = "uml"

// Spacing controls the distances of the layout, in SVG user units.
type Spacing struct {
	NodeGap float64 // horizontal gap between boxes of one row
	RowGap  float64 // vertical gap between rows
	Margin  float64 // border around the drawing
}

// DefaultSpacing is used unless [WithSpacing] overrides it.
var DefaultSpacing = Spacing{NodeGap: 20, RowGap: 40, Margin: 20}

// Option configures a [Backend].
type Option func(*Backend)

// WithOrderer replaces the row orderer. The default is
// [ordering.Barycentric] with its default settings.
func WithOrderer(o ordering.Orderer) Option {
	return func(b *Backend) { b.orderer = o }
}

// WithSpacing overrides [DefaultSpacing].
func WithSpacing(s Spacing) Option {
	return func(b *Backend) { b.spacing = s }
}

// WithLogger sets the logger for dropped edges and broken cycles.
func WithLogger(l *log.Logger) Option {
	return func(b *Backend) { b.logger = l }
}

// Backend draws a hierarchy graph as a layered UML class diagram.
type Backend struct {
	orderer ordering.Orderer
	spacing Spacing
	logger  *log.Logger
}

var _ render.Backend = (*Backend)(nil)

// New returns a UML backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		orderer: ordering.Barycentric{},
		spacing: DefaultSpacing,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns "uml".
func (b *Backend) Name() string { return Name }

// Render lays out g and writes the diagram as SVG to w.
func (b *Backend) Render(ctx context.Context, g *hierarchy.Graph, w io.Writer) error {
	d, err := b.Layout(ctx, g)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	WriteSVG(&buf, d)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write UML diagram")
	}
	return nil
}

// Layout computes the diagram of g with the default settings.
func Layout(g *hierarchy.Graph, opts ...Option) (*Diagram, error) {
	return New(opts...).Layout(context.Background(), g)
}
