package animals

import "io"

type Animal interface {
	Sound() string
}

type Walker interface {
	Animal
	io.Closer
	Walk(steps int)
}

type Named struct {
	Name string
	Age  int
}

func (n Named) String() string { return n.Name }

type Dog struct {
	Named
	*Tracker
	Breed string
}

func (d *Dog) Sound() string { return "woof" }

func (d *Dog) Walk(steps int) {}

type Tracker struct{}

type Weight float64

type Kennel = Dog

func helper() {
	type local struct{ Named }
	_ = local{}
}
