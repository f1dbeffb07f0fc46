// Package geometry provides the rectangle and dock-side arithmetic used to
// split a display into two resizable regions around a divider.
package geometry

import "fmt"

// Rect is an integer pixel rectangle. Left/Top are inclusive, Right/Bottom
// exclusive, matching screen coordinates with the origin at the top-left.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// NewRect creates a rectangle from its four edges.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// AlignTopLeft returns a rectangle with r's width and height whose top-left
// corner coincides with the containing rectangle's top-left corner.
func (r Rect) AlignTopLeft(containing Rect) Rect {
	w, h := r.Width(), r.Height()
	return Rect{
		Left:   containing.Left,
		Top:    containing.Top,
		Right:  containing.Left + w,
		Bottom: containing.Top + h,
	}
}

// AlignBottomRight returns a rectangle with r's width and height whose
// bottom-right corner coincides with the containing rectangle's bottom-right
// corner.
func (r Rect) AlignBottomRight(containing Rect) Rect {
	w, h := r.Width(), r.Height()
	return Rect{
		Left:   containing.Right - w,
		Top:    containing.Bottom - h,
		Right:  containing.Right,
		Bottom: containing.Bottom,
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	out := r
	if other.Left < out.Left {
		out.Left = other.Left
	}
	if other.Top < out.Top {
		out.Top = other.Top
	}
	if other.Right > out.Right {
		out.Right = other.Right
	}
	if other.Bottom > out.Bottom {
		out.Bottom = other.Bottom
	}
	return out
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d][%d,%d]", r.Left, r.Top, r.Right, r.Bottom)
}

// Insets describes padding applied on each display edge, such as the stable
// system insets that snap positions must respect.
type Insets struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}
