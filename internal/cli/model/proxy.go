package model

import (
	"github.com/bnema/divvy/internal/divider"
	"github.com/bnema/divvy/internal/geometry"
)

// publishProxy is the playground's window manager stand-in. It records the
// engine's publishes so the view can render them.
type publishProxy struct {
	side geometry.DockSide

	docked      geometry.Rect
	dockedTask  *geometry.Rect
	dockedInset *geometry.Rect
	otherTask   *geometry.Rect
	otherInset  *geometry.Rect
	published   bool

	dimEnabled  bool
	dimTarget   divider.DimTarget
	dimFraction float64

	resizing  bool
	committed string
}

func (p *publishProxy) ResizeRegions(docked geometry.Rect, dockedTask, dockedInset, otherTask, otherInset *geometry.Rect) {
	p.docked = docked
	p.dockedTask = dockedTask
	p.dockedInset = dockedInset
	p.otherTask = otherTask
	p.otherInset = otherInset
	p.published = true
}

func (p *publishProxy) Dismiss() {
	p.committed = "docked region dismissed"
	p.side = geometry.DockInvalid
}

func (p *publishProxy) Maximize() {
	p.committed = "docked region maximized"
	p.side = geometry.DockInvalid
}

func (p *publishProxy) SetDimOverlay(enabled bool, target divider.DimTarget, fraction float64) {
	p.dimEnabled = enabled
	p.dimTarget = target
	p.dimFraction = fraction
}

func (p *publishProxy) DockSide() geometry.DockSide { return p.side }

func (p *publishProxy) SetResizing(resizing bool) { p.resizing = resizing }
