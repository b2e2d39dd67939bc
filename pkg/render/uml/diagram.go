package uml

// Point is a position in SVG user units, y growing downwards.
type Point struct {
	X, Y float64
}

// Box is the rectangle drawn for one class.
type Box struct {
	ID    string
	Label string
	X, Y  float64 // top-left corner
	W, H  float64
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Arrow is one generalization from a derived class up to its base. Points
// runs from the top of the derived box through the bend points to the
// bottom of the base box.
type Arrow struct {
	From, To string
	Points   []Point
}

// Diagram is a finished layout.
type Diagram struct {
	Width, Height float64
	Boxes         []Box   // registration order
	Arrows        []Arrow // derived classes in registration order
	Rows          int
	Crossings     int
	Bends         int
	CyclesBroken  int
	Dropped       int // dangling edges left out
}

// Box returns the box drawn for the class id.
func (d *Diagram) Box(id string) (Box, bool) {
	for _, b := range d.Boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}
