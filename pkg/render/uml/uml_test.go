package uml

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/classtower/pkg/dag"
	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/hierarchy"
)

func graph(t *testing.T, names []string, edges ...[2]string) *hierarchy.Graph {
	t.Helper()
	g := hierarchy.NewGraph()
	for _, name := range names {
		_, _, err := g.AddClass(hierarchy.ClassEntity{Name: name})
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	g.Freeze()
	return g
}

func vehicles(t *testing.T) *hierarchy.Graph {
	return graph(t, []string{"Vehicle", "Car", "Motorcycle", "Bicycle"},
		[2]string{"Car", "Vehicle"},
		[2]string{"Motorcycle", "Vehicle"},
		[2]string{"Bicycle", "Vehicle"},
	)
}

func assertNoOverlap(t *testing.T, d *Diagram, gap float64) {
	t.Helper()
	for i, a := range d.Boxes {
		for _, b := range d.Boxes[i+1:] {
			if a.Y != b.Y {
				continue
			}
			apart := a.Right()+gap <= b.X+1e-6 || b.Right()+gap <= a.X+1e-6
			assert.True(t, apart, "boxes %s and %s overlap", a.ID, b.ID)
		}
	}
}

func TestMirror(t *testing.T) {
	g := graph(t, []string{"Vehicle", "Car"},
		[2]string{"Car", "Vehicle"},
		[2]string{"Truck", "Vehicle"},
	)
	d, dropped := Mirror(g)

	assert.Equal(t, 1, dropped)
	assert.Equal(t, 2, d.NodeCount())
	assert.Equal(t, 1, d.EdgeCount())
	assert.Equal(t, []string{"Vehicle"}, d.Children("Car"))

	car, ok := d.Node("Car")
	require.True(t, ok)
	assert.Equal(t, "Car", car.Meta[MetaLabel])
	assert.Equal(t, float64(3*5+20), car.Meta[MetaWidth])
	assert.Equal(t, float64(20), car.Meta[MetaHeight])
}

func TestLayout_Vehicles(t *testing.T) {
	d, err := Layout(vehicles(t))
	require.NoError(t, err)

	assert.Equal(t, 2, d.Rows)
	assert.Zero(t, d.Crossings)
	assert.Zero(t, d.Bends)
	require.Len(t, d.Boxes, 4)
	require.Len(t, d.Arrows, 3)
	assert.Equal(t, 120.0, d.Height)

	vehicle, _ := d.Box("Vehicle")
	var sum float64
	for _, name := range []string{"Car", "Motorcycle", "Bicycle"} {
		box, ok := d.Box(name)
		require.True(t, ok)
		assert.Less(t, vehicle.Bottom(), box.Y, "base %s must be drawn above %s", vehicle.ID, name)
		sum += box.CenterX()
	}
	assert.InDelta(t, sum/3, vehicle.CenterX(), 1e-6)
	assertNoOverlap(t, d, DefaultSpacing.NodeGap)

	for _, a := range d.Arrows {
		assert.Equal(t, "Vehicle", a.To)
		from, _ := d.Box(a.From)
		require.Len(t, a.Points, 2)
		assert.Equal(t, Point{X: from.CenterX(), Y: from.Y}, a.Points[0])
		assert.Equal(t, Point{X: vehicle.CenterX(), Y: vehicle.Bottom()}, a.Points[1])
	}

	for _, b := range d.Boxes {
		assert.GreaterOrEqual(t, b.X, DefaultSpacing.Margin-1e-6)
		assert.LessOrEqual(t, b.Right(), d.Width-DefaultSpacing.Margin+1e-6)
	}
}

func TestLayout_LongEdgeBends(t *testing.T) {
	g := graph(t, []string{"Vehicle", "Car", "SportsCar"},
		[2]string{"Car", "Vehicle"},
		[2]string{"SportsCar", "Car"},
		[2]string{"SportsCar", "Vehicle"},
	)
	d, err := Layout(g)
	require.NoError(t, err)

	assert.Equal(t, 3, d.Rows)
	assert.Equal(t, 1, d.Bends)

	var long *Arrow
	for i := range d.Arrows {
		if d.Arrows[i].From == "SportsCar" && d.Arrows[i].To == "Vehicle" {
			long = &d.Arrows[i]
		}
	}
	require.NotNil(t, long)
	require.Len(t, long.Points, 3)

	car, _ := d.Box("Car")
	assert.InDelta(t, car.CenterY(), long.Points[1].Y, 1e-6, "bend point sits in the middle row")
	assertNoOverlap(t, d, DefaultSpacing.NodeGap)
}

func TestLayout_MultipleInheritanceOrdering(t *testing.T) {
	g := graph(t, []string{"Engine", "Pedals", "Car", "Bicycle"},
		[2]string{"Car", "Pedals"},
		[2]string{"Bicycle", "Engine"},
	)
	d, err := Layout(g)
	require.NoError(t, err)
	assert.Zero(t, d.Crossings)
}

func TestLayout_Empty(t *testing.T) {
	d, err := Layout(graph(t, nil))
	require.NoError(t, err)
	assert.Empty(t, d.Boxes)
	assert.Equal(t, 2*DefaultSpacing.Margin, d.Width)
	assert.Equal(t, 2*DefaultSpacing.Margin, d.Height)
}

func TestLayout_Dangling(t *testing.T) {
	g := graph(t, []string{"Vehicle"}, [2]string{"Ghost", "Vehicle"})
	d, err := Layout(g)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Dropped)
	assert.Empty(t, d.Arrows)
}

type lossyOrderer struct{}

func (lossyOrderer) OrderRows(*dag.DAG) map[int][]string { return map[int][]string{} }

func TestLayout_OrdererFailure(t *testing.T) {
	_, err := Layout(vehicles(t), WithOrderer(lossyOrderer{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeLayoutFailed), "got %v", err)
}

func TestRender(t *testing.T) {
	b := New()
	assert.Equal(t, "uml", b.Name())

	var buf bytes.Buffer
	require.NoError(t, b.Render(context.Background(), vehicles(t), &buf))

	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Equal(t, 4, strings.Count(svg, "<rect"))
	assert.Equal(t, 3, strings.Count(svg, "<polyline"))
	assert.Equal(t, 3, strings.Count(svg, `class="generalization-head"`))
	assert.Contains(t, svg, ">Motorcycle</text>")
}

func TestRender_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := New().Render(ctx, vehicles(t), &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestRender_WriteFailure(t *testing.T) {
	err := New().Render(context.Background(), vehicles(t), failingWriter{})
	assert.True(t, errors.Is(err, errors.ErrCodeRenderFailed), "got %v", err)
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "Box&lt;T&gt; &amp; co", escapeXML("Box<T> & co"))
}
