package geometry

// Display holds the logical display dimensions the divider operates on.
type Display struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether the display has a positive area.
func (d Display) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// BoundsForPosition computes the bounds of the region anchored at dockSide
// when the divider sits at position along the active axis. The region runs
// from its anchoring edge up to the divider; the region on the far side of
// the divider starts dividerSize pixels later.
func BoundsForPosition(position int, dockSide DockSide, display Display, dividerSize int) Rect {
	r := Rect{Left: 0, Top: 0, Right: display.Width, Bottom: display.Height}
	switch dockSide {
	case DockLeft:
		r.Right = position
	case DockTop:
		r.Bottom = position
	case DockRight:
		r.Left = position + dividerSize
	case DockBottom:
		r.Top = position + dividerSize
	}
	return sanitizeBounds(r, display)
}

// sanitizeBounds keeps a split rectangle inside the display and prevents
// edge inversion when the divider is dragged past a display edge.
func sanitizeBounds(r Rect, display Display) Rect {
	if r.Left < 0 {
		r.Left = 0
	}
	if r.Top < 0 {
		r.Top = 0
	}
	if r.Left > display.Width {
		r.Left = display.Width
	}
	if r.Top > display.Height {
		r.Top = display.Height
	}
	if r.Right > display.Width {
		r.Right = display.Width
	}
	if r.Bottom > display.Height {
		r.Bottom = display.Height
	}
	if r.Right < r.Left {
		r.Right = r.Left
	}
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	return r
}
