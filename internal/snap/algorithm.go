package snap

import (
	"errors"
	"fmt"
	"math"

	"github.com/bnema/divvy/internal/geometry"
)

var (
	// ErrDegenerateDisplay is returned when the display has no area to split.
	ErrDegenerateDisplay = errors.New("snap: display has zero or negative size")
	// ErrNoTargets is returned when the parameters leave no room for any
	// split target between the two dismiss targets.
	ErrNoTargets = errors.New("snap: no snap targets fit the display")
)

const (
	// defaultFixedRatio is the share of the usable axis given to the
	// smaller region at the first/last split targets.
	defaultFixedRatio = 0.38

	// dismissAttraction scales the effective snap distance of dismiss
	// targets during zero-velocity snapping, so a plain release close to a
	// display edge still settles on the outer split target unless the drag
	// went most of the way.
	dismissAttraction = 0.35
)

// Params tunes the algorithm. The zero value selects the defaults.
type Params struct {
	// FixedRatio overrides defaultFixedRatio when > 0.
	FixedRatio float64
	// MinFlingVelocity is the axis speed in px/s above which the release
	// velocity decides the direction of the snap. Defaults to 400.
	MinFlingVelocity float64
	// MinDismissVelocity is the axis speed in px/s above which a fling past
	// the outer split targets dismisses. Defaults to 600.
	MinDismissVelocity float64
}

func (p Params) withDefaults() Params {
	if p.FixedRatio <= 0 {
		p.FixedRatio = defaultFixedRatio
	}
	if p.MinFlingVelocity <= 0 {
		p.MinFlingVelocity = 400
	}
	if p.MinDismissVelocity <= 0 {
		p.MinDismissVelocity = 600
	}
	return p
}

// Algorithm is the default Provider. It derives the target sequence once
// from the display geometry; a new Algorithm must be built whenever the
// display or the divider size changes.
type Algorithm struct {
	params      Params
	dividerSize int
	startInset  int

	targets      []Target
	firstSplit   Target
	lastSplit    Target
	middle       Target
	dismissStart Target
	dismissEnd   Target
}

// NewAlgorithm enumerates the snap targets for one display configuration.
// horizontal selects a horizontal divider (portrait-like split stacked top
// over bottom); otherwise the divider is vertical and splits left/right.
func NewAlgorithm(display geometry.Display, dividerSize int, horizontal bool, insets geometry.Insets, params Params) (*Algorithm, error) {
	if !display.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateDisplay, display.Width, display.Height)
	}

	axisMax := display.Width
	start := insets.Left
	end := display.Width - insets.Right
	if horizontal {
		axisMax = display.Height
		start = insets.Top
		end = display.Height - insets.Bottom
	}

	a := &Algorithm{
		params:      params.withDefaults(),
		dividerSize: dividerSize,
		startInset:  start,
	}

	splitSize := int(a.params.FixedRatio*float64(end-start)) - dividerSize/2
	firstPos := start + splitSize
	lastPos := end - splitSize - dividerSize
	middlePos := start + (end-start)/2 - dividerSize/2

	if firstPos <= start || lastPos >= end || middlePos <= 0 {
		return nil, fmt.Errorf("%w: axis %d, divider %d", ErrNoTargets, end-start, dividerSize)
	}

	a.dismissStart = Target{Position: -dividerSize, Flag: FlagDismissStart}
	a.dismissEnd = Target{Position: axisMax, Flag: FlagDismissEnd}
	a.firstSplit = Target{Position: firstPos}
	a.lastSplit = Target{Position: lastPos}
	a.middle = Target{Position: middlePos}

	a.targets = append(a.targets, a.dismissStart)
	a.targets = append(a.targets, a.firstSplit)
	if middlePos != firstPos && middlePos != lastPos {
		a.targets = append(a.targets, a.middle)
	}
	if lastPos != firstPos {
		a.targets = append(a.targets, a.lastSplit)
	}
	a.targets = append(a.targets, a.dismissEnd)

	return a, nil
}

// Targets returns the ordered target sequence.
func (a *Algorithm) Targets() []Target {
	out := make([]Target, len(a.targets))
	copy(out, a.targets)
	return out
}

// Nearest selects the settle target for a release at position with the
// given axis velocity.
func (a *Algorithm) Nearest(position int, velocity float64, hardDismiss bool) Target {
	if math.Abs(velocity) < a.params.MinFlingVelocity {
		return a.snapClosest(position, hardDismiss)
	}
	dismissable := hardDismiss || math.Abs(velocity) >= a.params.MinDismissVelocity
	if velocity < 0 {
		if position < a.firstSplit.Position && dismissable {
			return a.dismissStart
		}
		return a.firstSplit
	}
	if position > a.lastSplit.Position && dismissable {
		return a.dismissEnd
	}
	return a.lastSplit
}

// snapClosest picks the target with the smallest weighted distance to
// position. Dismiss targets attract from a shorter range unless hardDismiss.
func (a *Algorithm) snapClosest(position int, hardDismiss bool) Target {
	best := a.targets[0]
	bestDistance := math.MaxFloat64
	for _, t := range a.targets {
		d := math.Abs(float64(position - t.Position))
		if t.Dismissing() && !hardDismiss {
			d /= dismissAttraction
		}
		if d < bestDistance {
			bestDistance = d
			best = t
		}
	}
	return best
}

// DismissFraction reports progress from the outer split targets toward the
// dismiss targets; 0 anywhere between the split targets.
func (a *Algorithm) DismissFraction(position int) float64 {
	switch {
	case position < a.firstSplit.Position:
		return 1 - float64(position-a.startInset)/float64(a.firstSplit.Position-a.startInset)
	case position > a.lastSplit.Position:
		return float64(position-a.lastSplit.Position) /
			float64(a.dismissEnd.Position-a.lastSplit.Position-a.dividerSize)
	default:
		return 0
	}
}

func (a *Algorithm) FirstSplitTarget() Target   { return a.firstSplit }
func (a *Algorithm) LastSplitTarget() Target    { return a.lastSplit }
func (a *Algorithm) MiddleTarget() Target       { return a.middle }
func (a *Algorithm) DismissStartTarget() Target { return a.dismissStart }
func (a *Algorithm) DismissEndTarget() Target   { return a.dismissEnd }

// NextTarget returns the target following t, or t at the end of the sequence.
func (a *Algorithm) NextTarget(t Target) Target {
	if i := a.indexOf(t); i >= 0 && i < len(a.targets)-1 {
		return a.targets[i+1]
	}
	return t
}

// PreviousTarget returns the target preceding t, or t at the start.
func (a *Algorithm) PreviousTarget(t Target) Target {
	if i := a.indexOf(t); i > 0 {
		return a.targets[i-1]
	}
	return t
}

// ClosestDismissTarget returns whichever dismiss target is nearer.
func (a *Algorithm) ClosestDismissTarget(position int) Target {
	startDistance := abs(position - a.dismissStart.Position)
	endDistance := abs(a.dismissEnd.Position - position)
	if startDistance <= endDistance {
		return a.dismissStart
	}
	return a.dismissEnd
}

func (a *Algorithm) indexOf(t Target) int {
	for i, candidate := range a.targets {
		if candidate == t {
			return i
		}
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
