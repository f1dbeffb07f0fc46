package geometry

// DockSide identifies the display edge the docked region is anchored to.
type DockSide int

const (
	DockInvalid DockSide = iota
	DockLeft
	DockTop
	DockRight
	DockBottom
)

// Valid reports whether the side refers to a real display edge.
func (s DockSide) Valid() bool {
	return s >= DockLeft && s <= DockBottom
}

// Invert returns the opposite display edge: Left↔Right, Top↔Bottom.
// Inverting DockInvalid yields DockInvalid.
func (s DockSide) Invert() DockSide {
	switch s {
	case DockLeft:
		return DockRight
	case DockTop:
		return DockBottom
	case DockRight:
		return DockLeft
	case DockBottom:
		return DockTop
	default:
		return DockInvalid
	}
}

// TopLeft reports whether the side is anchored at the top-left of the
// display, which selects the top-left alignment and dismiss-start rules.
func (s DockSide) TopLeft() bool {
	return s == DockTop || s == DockLeft
}

// BottomRight reports whether the side is anchored at the bottom-right of
// the display.
func (s DockSide) BottomRight() bool {
	return s == DockBottom || s == DockRight
}

func (s DockSide) String() string {
	switch s {
	case DockLeft:
		return "left"
	case DockTop:
		return "top"
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	default:
		return "invalid"
	}
}
