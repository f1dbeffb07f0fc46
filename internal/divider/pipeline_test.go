package divider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/divvy/internal/geometry"
	"github.com/bnema/divvy/internal/snap"
)

// recordingProxy captures pipeline publishes without any expectations.
type recordingProxy struct {
	side geometry.DockSide

	resizeCalls int
	docked      geometry.Rect
	dockedTask  *geometry.Rect
	dockedInset *geometry.Rect
	otherTask   *geometry.Rect
	otherInset  *geometry.Rect

	dimEnabled  bool
	dimTarget   DimTarget
	dimFraction float64

	dismissed bool
	maximized bool
	resizing  bool
}

func (p *recordingProxy) ResizeRegions(docked geometry.Rect, dockedTask, dockedInset, otherTask, otherInset *geometry.Rect) {
	p.resizeCalls++
	p.docked = docked
	p.dockedTask = dockedTask
	p.dockedInset = dockedInset
	p.otherTask = otherTask
	p.otherInset = otherInset
}

func (p *recordingProxy) Dismiss()  { p.dismissed = true }
func (p *recordingProxy) Maximize() { p.maximized = true }

func (p *recordingProxy) SetDimOverlay(enabled bool, target DimTarget, fraction float64) {
	p.dimEnabled = enabled
	p.dimTarget = target
	p.dimFraction = fraction
}

func (p *recordingProxy) DockSide() geometry.DockSide { return p.side }
func (p *recordingProxy) SetResizing(resizing bool)   { p.resizing = resizing }

func testMetrics() Metrics {
	return Metrics{
		Display:     geometry.Display{Width: 1200, Height: 800},
		DividerSize: 48,
		TouchSlop:   8,
		Horizontal:  false,
	}
}

func newTestPipeline() (*Pipeline, *recordingProxy, *stubProvider) {
	proxy := &recordingProxy{side: geometry.DockLeft}
	provider := newStubProvider()
	return NewPipeline(proxy, provider, testMetrics()), proxy, provider
}

func TestRestrictDismissingTaskPosition(t *testing.T) {
	p, _, provider := newTestPipeline()

	// Dragging from x=400 deep into the dismiss-start range must not let
	// the docked task shrink toward zero: it keeps the first split size.
	got := p.restrictDismissingTaskPosition(60, geometry.DockLeft, provider.DismissStartTarget())
	assert.Equal(t, 400, got)

	// The other (bottom/right) side is unaffected by a dismiss-start.
	got = p.restrictDismissingTaskPosition(60, geometry.DockRight, provider.DismissStartTarget())
	assert.Equal(t, 60, got)

	// Symmetric for dismiss-end against a bottom/right anchor.
	got = p.restrictDismissingTaskPosition(1100, geometry.DockRight, provider.DismissEndTarget())
	assert.Equal(t, 800, got)

	// Plain split targets restrict nothing.
	got = p.restrictDismissingTaskPosition(500, geometry.DockLeft, provider.MiddleTarget())
	assert.Equal(t, 500, got)
}

func TestMinimizeHoles_TopLeft(t *testing.T) {
	p, _, provider := newTestPipeline()
	last := provider.LastSplitTarget() // 800, next is dismiss-end at 1200

	// Progress below the threshold keeps the task position.
	got := p.minimizeHoles(840, 800, geometry.DockLeft, last)
	assert.Equal(t, 800, got)

	// Past 12% of the way to the dismiss-end target, switch onto it.
	got = p.minimizeHoles(850, 800, geometry.DockLeft, last)
	assert.Equal(t, 1200, got)

	// Moving the other way never switches.
	got = p.minimizeHoles(700, 800, geometry.DockLeft, last)
	assert.Equal(t, 800, got)

	// The next target of the middle split is a plain split target, so no
	// early switch happens regardless of progress.
	got = p.minimizeHoles(790, 400, geometry.DockLeft, provider.FirstSplitTarget())
	assert.Equal(t, 400, got)
}

func TestMinimizeHoles_BottomRight(t *testing.T) {
	p, _, provider := newTestPipeline()
	first := provider.FirstSplitTarget() // 400, previous is dismiss-start at 0

	// The previous target dismisses the top, so the switch happens at 12%.
	got := p.minimizeHoles(340, 400, geometry.DockRight, first)
	assert.Equal(t, 0, got)

	got = p.minimizeHoles(360, 400, geometry.DockRight, first)
	assert.Equal(t, 400, got)

	// Between two split targets the later 20% threshold applies.
	last := provider.LastSplitTarget() // 800, previous split at 400
	got = p.minimizeHoles(740, 800, geometry.DockRight, last)
	assert.Equal(t, 800, got)
	got = p.minimizeHoles(710, 800, geometry.DockRight, last)
	assert.Equal(t, 400, got)
}

func TestMinimizeHoles_NeverOutOfRange(t *testing.T) {
	p, _, provider := newTestPipeline()

	// For any position between two adjacent targets the result is either
	// the unmodified task position or exactly the neighbor's position.
	for position := 401; position < 1200; position += 13 {
		got := p.minimizeHoles(position, 800, geometry.DockLeft, provider.LastSplitTarget())
		assert.Contains(t, []int{800, 1200}, got, "position %d", position)
	}
	for position := 1; position < 800; position += 13 {
		got := p.minimizeHoles(position, 800, geometry.DockRight, provider.LastSplitTarget())
		assert.Contains(t, []int{400, 800}, got, "position %d", position)
	}
}

func TestApplyDismissingParallax_PreservesSize(t *testing.T) {
	p, _, provider := newTestPipeline()
	task := geometry.NewRect(0, 0, 400, 800)

	for position := 390; position >= 0; position -= 30 {
		got := p.applyDismissingParallax(task, geometry.DockLeft, provider.DismissStartTarget(), position, 400)
		assert.Equal(t, task.Width(), got.Width(), "position %d", position)
		assert.Equal(t, task.Height(), got.Height(), "position %d", position)
		// Only a translation along the drag axis.
		assert.Equal(t, task.Top, got.Top)
		assert.Equal(t, task.Bottom, got.Bottom)
	}
}

func TestApplyDismissingParallax_OnlyWhileDismissing(t *testing.T) {
	p, _, provider := newTestPipeline()
	task := geometry.NewRect(0, 0, 400, 800)

	// Position past the split target on the non-dismissing side: no offset.
	got := p.applyDismissingParallax(task, geometry.DockLeft, provider.FirstSplitTarget(), 500, 400)
	assert.Equal(t, task, got)

	// Dismissing toward start with a left anchor: the rectangle slides
	// toward the edge, trailing the divider.
	got = p.applyDismissingParallax(task, geometry.DockLeft, provider.DismissStartTarget(), 100, 400)
	assert.Less(t, got.Right, task.Right)

	// The right-anchored region is offset past the divider, never over it.
	rightTask := geometry.NewRect(448, 0, 1200, 800)
	got = p.applyDismissingParallax(rightTask, geometry.DockRight, provider.DismissEndTarget(), 1100, 800)
	assert.GreaterOrEqual(t, got.Left, 800+48)
}

func TestIsDismissing(t *testing.T) {
	split := snap.Target{Position: 400}
	assert.True(t, isDismissing(split, 300, geometry.DockLeft))
	assert.False(t, isDismissing(split, 500, geometry.DockLeft))
	assert.True(t, isDismissing(split, 500, geometry.DockRight))
	assert.False(t, isDismissing(split, 300, geometry.DockBottom))
}

func TestPipeline_ResizePublishes(t *testing.T) {
	p, proxy, provider := newTestPipeline()

	ok := p.Resize(500, TaskPositionAt(400), provider.FirstSplitTarget(), geometry.DockLeft)
	require.True(t, ok)
	require.Equal(t, 1, proxy.resizeCalls)

	assert.Equal(t, geometry.NewRect(0, 0, 500, 800), proxy.docked)
	require.NotNil(t, proxy.dockedTask)
	require.NotNil(t, proxy.otherTask)
	require.NotNil(t, proxy.dockedInset)
	require.NotNil(t, proxy.otherInset)

	// The other region starts past the divider.
	assert.Equal(t, 548, proxy.otherTask.Left)
}

func TestPipeline_IdenticalResizeSuppressed(t *testing.T) {
	p, proxy, provider := newTestPipeline()

	ok := p.Resize(500, TaskPositionAt(400), provider.FirstSplitTarget(), geometry.DockLeft)
	require.True(t, ok)
	ok = p.Resize(500, TaskPositionAt(400), provider.FirstSplitTarget(), geometry.DockLeft)
	assert.False(t, ok)
	assert.Equal(t, 1, proxy.resizeCalls)

	// Invalidate forces the next publish through.
	p.Invalidate()
	ok = p.Resize(500, TaskPositionAt(400), provider.FirstSplitTarget(), geometry.DockLeft)
	assert.True(t, ok)
	assert.Equal(t, 2, proxy.resizeCalls)
}

func TestPipeline_DividerOnlyResize(t *testing.T) {
	p, proxy, provider := newTestPipeline()

	ok := p.Resize(400, TaskPositionUnchanged(), provider.FirstSplitTarget(), geometry.DockLeft)
	require.True(t, ok)
	assert.Nil(t, proxy.dockedTask)
	assert.Nil(t, proxy.dockedInset)
	assert.Nil(t, proxy.otherTask)
	assert.Nil(t, proxy.otherInset)
	assert.Equal(t, geometry.NewRect(0, 0, 400, 800), proxy.docked)
}

func TestPipeline_DimOverlay(t *testing.T) {
	p, proxy, provider := newTestPipeline()

	// Between the split targets the overlay is off.
	p.Resize(600, TaskPositionAt(600), provider.MiddleTarget(), geometry.DockLeft)
	assert.False(t, proxy.dimEnabled)
	assert.Zero(t, proxy.dimFraction)

	// Deep in the dismiss-start range it fades in over the docked region.
	p.Resize(80, TaskPositionAt(400), provider.DismissStartTarget(), geometry.DockLeft)
	assert.True(t, proxy.dimEnabled)
	assert.Greater(t, proxy.dimFraction, 0.0)
	assert.Equal(t, DimDocked, proxy.dimTarget)
}

func TestDimTargetFor(t *testing.T) {
	start := snap.Target{Position: 0, Flag: snap.FlagDismissStart}
	end := snap.Target{Position: 1200, Flag: snap.FlagDismissEnd}

	assert.Equal(t, DimDocked, dimTargetFor(start, geometry.DockLeft))
	assert.Equal(t, DimDocked, dimTargetFor(start, geometry.DockTop))
	assert.Equal(t, DimOther, dimTargetFor(start, geometry.DockRight))
	assert.Equal(t, DimOther, dimTargetFor(end, geometry.DockLeft))
}
