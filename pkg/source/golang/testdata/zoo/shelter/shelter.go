package shelter

import "example.com/zoo/animals"

type List[T any] struct {
	items []T
}

type Pen[T any] struct {
	List[T]
	Label string
}

type Shelter struct {
	animals.Dog
	*Pen[animals.Dog]
}

type Noisy interface {
	animals.Animal
	error
}
