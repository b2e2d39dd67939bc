package transform

import (
	"testing"

	"github.com/matzehuels/classtower/pkg/dag"
)

func rowOf(t *testing.T, g *dag.DAG, id string) int {
	t.Helper()
	n, ok := g.Node(id)
	if !ok {
		t.Fatalf("node %q missing", id)
	}
	return n.Row
}

func TestAssignLayers(t *testing.T) {
	// Edges point derived -> base.
	g := build([]string{"Car", "SportsCar", "Vehicle", "Engine", "Logger"},
		[2]string{"Car", "Vehicle"},
		[2]string{"SportsCar", "Car"},
		[2]string{"SportsCar", "Engine"},
	)
	AssignLayers(g)

	want := map[string]int{
		"SportsCar": 0,
		"Car":       1,
		"Vehicle":   2,
		"Engine":    2,
		"Logger":    2,
	}
	for id, row := range want {
		if got := rowOf(t, g, id); got != row {
			t.Errorf("row(%s) = %d, want %d", id, got, row)
		}
	}
}

func TestAssignLayers_Empty(t *testing.T) {
	g := dag.New(nil)
	AssignLayers(g)
	if g.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", g.RowCount())
	}
}

func TestSubdivide(t *testing.T) {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "Truck", Row: 0})
	_ = g.AddNode(dag.Node{ID: "Car", Row: 2})
	_ = g.AddNode(dag.Node{ID: "Vehicle", Row: 3})
	_ = g.AddEdge(dag.Edge{From: "Truck", To: "Vehicle", Meta: dag.Metadata{"kind": "inherits"}})
	_ = g.AddEdge(dag.Edge{From: "Car", To: "Vehicle"})

	if bends := Subdivide(g); bends != 2 {
		t.Fatalf("Subdivide() = %d bends, want 2", bends)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() after Subdivide: %v", err)
	}

	// Follow the chain from Truck down to Vehicle.
	id, hops := "Truck", 0
	var last dag.Edge
	for id != "Vehicle" {
		children := g.Children(id)
		if len(children) != 1 {
			t.Fatalf("children(%s) = %v, want one", id, children)
		}
		next := children[0]
		if n, _ := g.Node(next); next != "Vehicle" && !n.IsBend() {
			t.Fatalf("%s should be a bend node", next)
		}
		for _, e := range g.Edges() {
			if e.From == id && e.To == next {
				last = e
			}
		}
		id = next
		hops++
	}
	if hops != 3 {
		t.Errorf("chain has %d hops, want 3", hops)
	}
	if last.Meta["kind"] != "inherits" {
		t.Errorf("last segment meta = %v, want original edge meta", last.Meta)
	}
	if _, ok := g.Node("Truck->Vehicle@1"); !ok {
		t.Error("bend Truck->Vehicle@1 missing")
	}
}

func TestLayer(t *testing.T) {
	g := build([]string{"D", "A", "B", "C"},
		[2]string{"D", "A"},
		[2]string{"A", "B"},
		[2]string{"B", "C"},
		[2]string{"C", "B"},
		[2]string{"D", "C"},
	)
	res, err := Layer(g)
	if err != nil {
		t.Fatalf("Layer() error: %v", err)
	}
	want := Result{CyclesBroken: 1, Bends: 2, Rows: 4}
	if res != want {
		t.Errorf("Layer() = %+v, want %+v", res, want)
	}
	if got := rowOf(t, g, "C"); got != 3 {
		t.Errorf("row(C) = %d, want 3", got)
	}
}
