package render

import (
	"testing"

	"github.com/matzehuels/classtower/pkg/hierarchy"
)

func TestDrawable(t *testing.T) {
	g := hierarchy.NewGraph()
	for _, name := range []string{"Vehicle", "Car"} {
		if _, _, err := g.AddClass(hierarchy.ClassEntity{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	mustEdge := func(from, to string) {
		t.Helper()
		if _, err := g.AddEdge(from, to); err != nil {
			t.Fatal(err)
		}
	}
	mustEdge("Car", "Vehicle")
	mustEdge("Truck", "Vehicle")
	mustEdge("Car", "Ghost")
	g.Freeze()

	edges, dropped := Drawable(g)
	if len(edges) != 1 || edges[0] != (hierarchy.Edge{From: "Car", To: "Vehicle"}) {
		t.Errorf("Drawable() edges = %v, want [Car->Vehicle]", edges)
	}
	if dropped != 2 {
		t.Errorf("Drawable() dropped = %d, want 2", dropped)
	}
	if got := len(g.Dangling()); got != dropped {
		t.Errorf("len(g.Dangling()) = %d, want %d", got, dropped)
	}
}
