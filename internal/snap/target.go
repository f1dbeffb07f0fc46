// Package snap models the designated stopping positions of the divider and
// provides the velocity-aware selection algorithm between them.
package snap

import "fmt"

// Flag marks the semantic role of a snap target.
type Flag int

const (
	// FlagNone marks a plain split position.
	FlagNone Flag = iota
	// FlagDismissStart marks the target that dismisses the region anchored
	// at the top/left of the display.
	FlagDismissStart
	// FlagDismissEnd marks the target that dismisses the region anchored at
	// the bottom/right of the display.
	FlagDismissEnd
)

func (f Flag) String() string {
	switch f {
	case FlagDismissStart:
		return "dismiss-start"
	case FlagDismissEnd:
		return "dismiss-end"
	default:
		return "none"
	}
}

// Target is a designated stopping position for the divider along the active
// axis. Targets are plain values; two targets are the same target iff their
// position and flag are equal.
type Target struct {
	// Position is the pixel offset of the divider along the active axis.
	Position int
	// Flag marks dismiss targets; FlagNone for split positions.
	Flag Flag
}

func (t Target) String() string {
	return fmt.Sprintf("target(%d, %s)", t.Position, t.Flag)
}

// Dismissing reports whether the target dismisses one of the two regions.
func (t Target) Dismissing() bool {
	return t.Flag != FlagNone
}
