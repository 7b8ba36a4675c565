package pui

// Component identifies the focusable or armed parts of a control.
// Simple controls only ever use ComponentLeft; the ranged-int menu
// button uses Left for its decrement half and Right for its increment
// half.
type Component int

const (
	ComponentNone  Component = 0
	ComponentLeft  Component = 1
	ComponentRight Component = 2
	ComponentBoth            = ComponentLeft | ComponentRight
)

func (c Component) Union(o Component) Component {
	return c | o
}

func (c Component) Intersect(o Component) Component {
	return c & o
}

func (c Component) Without(o Component) Component {
	return c &^ o
}

// Has reports whether any part of o is in c.
func (c Component) Has(o Component) bool {
	return c&o != 0
}

func (c Component) String() string {
	switch c {
	case ComponentNone:
		return "none"
	case ComponentLeft:
		return "left"
	case ComponentRight:
		return "right"
	case ComponentBoth:
		return "both"
	}
	return "invalid"
}
