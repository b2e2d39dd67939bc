package transform_test

import (
	"fmt"

	"github.com/matzehuels/classtower/pkg/dag"
	"github.com/matzehuels/classtower/pkg/dag/transform"
)

func ExampleAssignLayers() {
	// Edges point from the derived class to its base.
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "Vehicle"})
	_ = g.AddNode(dag.Node{ID: "Car"})
	_ = g.AddNode(dag.Node{ID: "Bicycle"})
	_ = g.AddNode(dag.Node{ID: "Workshop"})
	_ = g.AddEdge(dag.Edge{From: "Car", To: "Vehicle"})
	_ = g.AddEdge(dag.Edge{From: "Bicycle", To: "Vehicle"})

	transform.AssignLayers(g)

	for _, n := range g.Nodes() {
		fmt.Println(n.ID, n.Row)
	}
	// Output:
	// Vehicle 1
	// Car 0
	// Bicycle 0
	// Workshop 1
}

func ExampleSubdivide() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "Truck", Row: 0})
	_ = g.AddNode(dag.Node{ID: "Vehicle", Row: 2})
	_ = g.AddEdge(dag.Edge{From: "Truck", To: "Vehicle"})

	bends := transform.Subdivide(g)

	fmt.Println("bends:", bends)
	for _, n := range g.Nodes() {
		fmt.Println(n.ID, n.Row, n.IsBend())
	}
	// Output:
	// bends: 1
	// Truck 0 false
	// Vehicle 2 false
	// Truck->Vehicle@1 1 true
}

func ExampleBreakCycles() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "A"})
	_ = g.AddNode(dag.Node{ID: "B"})
	_ = g.AddEdge(dag.Edge{From: "A", To: "B"})
	_ = g.AddEdge(dag.Edge{From: "B", To: "A"})

	fmt.Println("removed:", transform.BreakCycles(g))
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// removed: 1
	// edges: 1
}

func ExampleLayer() {
	g := dag.New(nil)
	for _, id := range []string{"SportsCar", "Car", "Vehicle"} {
		_ = g.AddNode(dag.Node{ID: id})
	}
	_ = g.AddEdge(dag.Edge{From: "SportsCar", To: "Car"})
	_ = g.AddEdge(dag.Edge{From: "Car", To: "Vehicle"})
	_ = g.AddEdge(dag.Edge{From: "SportsCar", To: "Vehicle"})

	res, err := transform.Layer(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("rows=%d bends=%d cycles=%d\n", res.Rows, res.Bends, res.CyclesBroken)
	// Output:
	// rows=3 bends=1 cycles=0
}
