package records

type ID int

type Handler func()

type Base struct{}

type Record struct {
	ID
	Handler
	*Base
	Note string
}
