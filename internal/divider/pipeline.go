package divider

import (
	"github.com/bnema/divvy/internal/anim"
	"github.com/bnema/divvy/internal/geometry"
	"github.com/bnema/divvy/internal/snap"
)

const (
	// switchFullscreenFraction is the drag progress between two snap
	// targets at which the task rectangle switches early onto a
	// full-screen dismiss target, shrinking the hole behind the divider.
	switchFullscreenFraction = 0.12

	// bottomRightSwitchBiggerFraction is the later switch point used for
	// bottom/right anchored layouts when the neighboring target is a plain
	// split target.
	bottomRightSwitchBiggerFraction = 0.2

	// parallaxDamping divides the reshaped dismiss fraction so the
	// dismissed region trails the divider instead of pacing it.
	parallaxDamping = 3.5
)

// Metrics is the divider geometry derived from display metrics. It is
// rebuilt, together with the snap provider, whenever the display
// configuration changes.
type Metrics struct {
	Display geometry.Display
	Insets  geometry.Insets

	// DividerSize is the visible thickness of the divider.
	DividerSize int

	// TouchSlop is the pointer travel below which a move is jitter, not a
	// drag.
	TouchSlop int

	// Horizontal is true when the divider is laid out horizontally and
	// drags travel along the Y axis.
	Horizontal bool
}

// Pipeline computes the region rectangles for a divider position and
// publishes them. All geometry is a pure function of its inputs; the only
// state is the last published docked rectangle, kept to suppress redundant
// publishes.
type Pipeline struct {
	proxy    WindowManagerProxy
	provider snap.Provider
	metrics  Metrics

	lastResize *geometry.Rect
}

// NewPipeline creates a pipeline publishing to proxy.
func NewPipeline(proxy WindowManagerProxy, provider snap.Provider, metrics Metrics) *Pipeline {
	return &Pipeline{proxy: proxy, provider: provider, metrics: metrics}
}

// Invalidate discards the publish-suppression cache, forcing the next
// Resize to publish even if the docked rectangle is unchanged.
func (p *Pipeline) Invalidate() {
	p.lastResize = nil
}

// Resize runs the full geometry pipeline for one frame and publishes the
// result. taskPosition carries the position the task rectangles are built
// from, or Unchanged for the divider-only settle frame. Returns false when
// the publish was suppressed because nothing moved.
func (p *Pipeline) Resize(position int, taskPosition TaskPosition, target snap.Target, side geometry.DockSide) bool {
	docked := p.bounds(position, side)
	if p.lastResize != nil && docked == *p.lastResize {
		return false
	}
	last := docked
	p.lastResize = &last

	if taskPosition.Unchanged() {
		p.proxy.ResizeRegions(docked, nil, nil, nil, nil)
	} else {
		inverted := side.Invert()
		other := p.bounds(position, inverted)

		taskPositionDocked := p.restrictDismissingTaskPosition(taskPosition.At(), side, target)
		taskPositionOther := p.restrictDismissingTaskPosition(taskPosition.At(), inverted, target)
		taskPositionDocked = p.minimizeHoles(position, taskPositionDocked, side, target)
		taskPositionOther = p.minimizeHoles(position, taskPositionOther, inverted, target)

		dockedTask := p.bounds(taskPositionDocked, side).AlignTopLeft(docked)
		otherTask := p.bounds(taskPositionOther, inverted).AlignTopLeft(other)

		dockedInset := dockedTask
		otherInset := otherTask
		if side.TopLeft() {
			dockedInset = dockedInset.AlignTopLeft(docked)
			otherInset = otherInset.AlignBottomRight(other)
		} else {
			dockedInset = dockedInset.AlignBottomRight(docked)
			otherInset = otherInset.AlignTopLeft(other)
		}

		dockedTask = p.applyDismissingParallax(dockedTask, side, target, position, taskPositionDocked)
		otherTask = p.applyDismissingParallax(otherTask, inverted, target, position, taskPositionOther)

		p.proxy.ResizeRegions(docked, &dockedTask, &dockedInset, &otherTask, &otherInset)
	}

	fraction := clamp01(p.provider.DismissFraction(position))
	fraction = anim.Dim(fraction)
	dim := dimTargetFor(p.provider.ClosestDismissTarget(position), side)
	p.proxy.SetDimOverlay(fraction != 0, dim, fraction)
	return true
}

func (p *Pipeline) bounds(position int, side geometry.DockSide) geometry.Rect {
	return geometry.BoundsForPosition(position, side, p.metrics.Display, p.metrics.DividerSize)
}

// restrictDismissingTaskPosition keeps the surviving side from collapsing
// to zero size while the snap target dismisses the opposite side: its task
// rectangle is computed from the outermost split position instead of the
// dismiss position.
func (p *Pipeline) restrictDismissingTaskPosition(taskPosition int, side geometry.DockSide, target snap.Target) int {
	switch {
	case target.Flag == snap.FlagDismissStart && side.TopLeft():
		return p.provider.FirstSplitTarget().Position
	case target.Flag == snap.FlagDismissEnd && side.BottomRight():
		return p.provider.LastSplitTarget().Position
	default:
		return taskPosition
	}
}

// minimizeHoles advances the task position onto the neighboring target
// early, once the drag progress between the two targets exceeds a
// threshold, so the hole opening behind the divider near a dismiss stays
// small.
func (p *Pipeline) minimizeHoles(position, taskPosition int, side geometry.DockSide, target snap.Target) int {
	if side.TopLeft() {
		if position <= taskPosition {
			return taskPosition
		}
		next := p.provider.NextTarget(target)
		// Switch earlier only when heading into the dismiss-end target.
		if next != target && next == p.provider.DismissEndTarget() {
			t := float64(position-taskPosition) / float64(next.Position-taskPosition)
			if t > switchFullscreenFraction {
				return next.Position
			}
		}
		return taskPosition
	}
	if side.BottomRight() {
		if position >= taskPosition {
			return taskPosition
		}
		previous := p.provider.PreviousTarget(target)
		if previous != target {
			t := float64(taskPosition-position) / float64(taskPosition-previous.Position)
			// Switch a bit early in general, really early when the
			// previous target dismisses the top.
			threshold := bottomRightSwitchBiggerFraction
			if previous == p.provider.DismissStartTarget() {
				threshold = switchFullscreenFraction
			}
			if t > threshold {
				return previous.Position
			}
		}
	}
	return taskPosition
}

// applyDismissingParallax translates the task rectangle of a dismissing
// region by a damped share of the dismiss progress. The rectangle keeps its
// size; on the trailing side it is pushed past the divider so the two never
// overlap.
func (p *Pipeline) applyDismissingParallax(taskRect geometry.Rect, side geometry.DockSide, target snap.Target, position, taskPosition int) geometry.Rect {
	fraction := clamp01(p.provider.DismissFraction(position))

	var dismissTarget, splitTarget snap.Target
	var dismissing bool
	switch {
	case (target.Flag == snap.FlagDismissStart || target == p.provider.FirstSplitTarget()) && side.TopLeft():
		dismissTarget = p.provider.DismissStartTarget()
		splitTarget = p.provider.FirstSplitTarget()
		dismissing = true
	case (target.Flag == snap.FlagDismissEnd || target == p.provider.LastSplitTarget()) && side.BottomRight():
		dismissTarget = p.provider.DismissEndTarget()
		splitTarget = p.provider.LastSplitTarget()
		dismissing = true
	}
	if !dismissing || fraction <= 0 || !isDismissing(splitTarget, position, side) {
		return taskRect
	}

	fraction = anim.Slowdown(fraction) / parallaxDamping
	offset := taskPosition + int(fraction*float64(dismissTarget.Position-splitTarget.Position))
	w, h := taskRect.Width(), taskRect.Height()
	switch side {
	case geometry.DockLeft:
		taskRect.Left = offset - w
		taskRect.Right = offset
	case geometry.DockRight:
		taskRect.Left = offset + p.metrics.DividerSize
		taskRect.Right = offset + w + p.metrics.DividerSize
	case geometry.DockTop:
		taskRect.Top = offset - h
		taskRect.Bottom = offset
	case geometry.DockBottom:
		taskRect.Top = offset + p.metrics.DividerSize
		taskRect.Bottom = offset + h + p.metrics.DividerSize
	}
	return taskRect
}

// isDismissing reports whether position is still on the dismissing side of
// the outer split target: below it for top/left anchoring, above it for
// bottom/right.
func isDismissing(splitTarget snap.Target, position int, side geometry.DockSide) bool {
	if side.TopLeft() {
		return position < splitTarget.Position
	}
	return position > splitTarget.Position
}

// dimTargetFor picks the region the dim overlay covers for the given
// dismiss target.
func dimTargetFor(dismissTarget snap.Target, side geometry.DockSide) DimTarget {
	if dismissTarget.Flag == snap.FlagDismissStart && side.TopLeft() {
		return DimDocked
	}
	return DimOther
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
