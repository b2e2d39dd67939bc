package broken

type Base struct{}

type Derived struct {
	Base
	Missing UndefinedType
}
