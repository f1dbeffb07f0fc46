// Package divider implements the drag state machine and geometry pipeline
// behind a split-screen divider: it turns pointer input into a divider
// position, snaps it onto meaningful targets and publishes the resulting
// region rectangles to the window-management collaborator.
package divider

import "github.com/bnema/divvy/internal/geometry"

// DimTarget identifies the region a dim overlay is applied to.
type DimTarget int

const (
	// DimNone is passed when the overlay is disabled.
	DimNone DimTarget = iota
	// DimDocked dims the docked region.
	DimDocked
	// DimOther dims the non-docked region.
	DimOther
)

func (t DimTarget) String() string {
	switch t {
	case DimDocked:
		return "docked"
	case DimOther:
		return "other"
	default:
		return "none"
	}
}

// WindowManagerProxy is the window-management collaborator the engine
// publishes to. Calls are fire-and-forget; failures are the collaborator's
// concern.
type WindowManagerProxy interface {
	// ResizeRegions publishes the region rectangles for one frame. The four
	// task/inset rectangles are nil for divider-only resizes, signalling
	// that only the divider line moved.
	ResizeRegions(docked geometry.Rect, dockedTask, dockedInset, otherTask, otherInset *geometry.Rect)

	// Dismiss collapses the docked region and returns the other region to
	// full screen.
	Dismiss()

	// Maximize expands the docked region to full screen.
	Maximize()

	// SetDimOverlay fades a dim layer over the region being dismissed.
	SetDimOverlay(enabled bool, target DimTarget, fraction float64)

	// DockSide reports which edge the docked region is currently anchored
	// to, or DockInvalid when there is no docked region.
	DockSide() geometry.DockSide

	// SetResizing marks the start and end of an interactive resize.
	SetResizing(resizing bool)
}
