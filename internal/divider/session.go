package divider

import "github.com/bnema/divvy/internal/geometry"

// Session is the state of one drag gesture, created on press and consumed
// when the release settle commits. At most one session exists at a time; it
// is owned exclusively by the engine.
type Session struct {
	// StartX, StartY are the pointer coordinates recorded when the drag was
	// promoted (at press, re-anchored when the touch slop is exceeded).
	StartX int
	StartY int

	// StartPosition is the divider position at drag start.
	StartPosition int

	// LastPosition is the divider position of the most recent move, used
	// when a cancel arrives without fresh coordinates.
	LastPosition int

	// Moving is set once the pointer travel exceeded the touch slop.
	Moving bool

	// Touching distinguishes pointer-driven drags from programmatic ones.
	Touching bool

	// Side is the dock side captured from the collaborator at drag start.
	Side geometry.DockSide

	tracker VelocityTracker
}

// Resolve converts pointer coordinates into a divider position along the
// active axis: the vertical axis for a horizontal divider, the horizontal
// axis otherwise.
func (s *Session) Resolve(x, y int, horizontal bool) int {
	if horizontal {
		return s.StartPosition + y - s.StartY
	}
	return s.StartPosition + x - s.StartX
}

// AxisVelocity returns the tracked pointer velocity along the active axis
// in px/s.
func (s *Session) AxisVelocity(horizontal bool) float64 {
	if horizontal {
		return s.tracker.VelocityY()
	}
	return s.tracker.VelocityX()
}

// ExceededSlop reports whether the pointer travelled further than slop from
// the drag start along the active axis.
func (s *Session) ExceededSlop(x, y, slop int, horizontal bool) bool {
	if horizontal {
		return absInt(y-s.StartY) > slop
	}
	return absInt(x-s.StartX) > slop
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
