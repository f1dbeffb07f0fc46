package divider

import "fmt"

// TaskPosition is the divider position the task rectangles are computed
// from. It is either a concrete position or Unchanged, which requests a
// divider-only resize where the two contents stay where they are.
type TaskPosition struct {
	at        int
	unchanged bool
}

// TaskPositionAt returns a concrete task position.
func TaskPositionAt(position int) TaskPosition {
	return TaskPosition{at: position}
}

// TaskPositionUnchanged requests a divider-only resize.
func TaskPositionUnchanged() TaskPosition {
	return TaskPosition{unchanged: true}
}

// Unchanged reports whether this is a divider-only resize.
func (p TaskPosition) Unchanged() bool { return p.unchanged }

// At returns the concrete position. Only meaningful when !Unchanged().
func (p TaskPosition) At() int { return p.at }

func (p TaskPosition) String() string {
	if p.unchanged {
		return "unchanged"
	}
	return fmt.Sprintf("at(%d)", p.at)
}
