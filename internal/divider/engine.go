package divider

import (
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/divvy/internal/anim"
	"github.com/bnema/divvy/internal/geometry"
	"github.com/bnema/divvy/internal/snap"
)

var (
	// ErrInvalidDockSide is returned when the collaborator reports no
	// docked region; no drag can start.
	ErrInvalidDockSide = errors.New("divider: no docked region to drag against")

	// ErrDragInProgress is returned when a drag is requested while a prior
	// drag or its settle animation is still running.
	ErrDragInProgress = errors.New("divider: drag or settle already in progress")
)

// State is the engine's drag lifecycle state.
type State int

const (
	// StateIdle means no gesture is active.
	StateIdle State = iota
	// StateDragging means a session exists and moves reposition the divider.
	StateDragging
	// StateReleasing means the release settle animation is running.
	StateReleasing
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateReleasing:
		return "releasing"
	default:
		return "idle"
	}
}

// Engine is the top-level drag state machine. It owns the single drag
// session, feeds pointer input through the geometry pipeline and commits
// the terminal snap action when the release settle completes.
//
// The engine is not safe for concurrent use: input events and animation
// frames must be delivered on one sequential execution context.
type Engine struct {
	log      zerolog.Logger
	proxy    WindowManagerProxy
	provider snap.Provider
	pipeline *Pipeline
	metrics  Metrics

	state    State
	session  *Session
	position int

	settle       *anim.Animation
	settleTarget snap.Target

	// GrowRecents mirrors the host configuration that lets the docked
	// region grow when recents opens over a minimized split.
	GrowRecents bool

	animateAfterDrawn bool
	growAfterDrawn    bool
}

// NewEngine creates an engine publishing to proxy. The divider starts at
// the provider's middle target.
func NewEngine(log zerolog.Logger, proxy WindowManagerProxy, provider snap.Provider, metrics Metrics) *Engine {
	return &Engine{
		log:      log,
		proxy:    proxy,
		provider: provider,
		pipeline: NewPipeline(proxy, provider, metrics),
		metrics:  metrics,
		position: provider.MiddleTarget().Position,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Position returns the current divider position along the active axis.
func (e *Engine) Position() int { return e.position }

// SetPosition moves the divider without a gesture, for initial placement.
func (e *Engine) SetPosition(position int) { e.position = position }

// UpdateMetrics replaces the divider geometry and snap provider after a
// display or configuration change and discards the publish cache.
func (e *Engine) UpdateMetrics(metrics Metrics, provider snap.Provider) {
	e.metrics = metrics
	e.provider = provider
	e.pipeline = NewPipeline(e.proxy, provider, metrics)
	e.log.Debug().
		Int("display_width", metrics.Display.Width).
		Int("display_height", metrics.Display.Height).
		Bool("horizontal", metrics.Horizontal).
		Msg("divider metrics updated")
}

// TouchableRegion returns the divider band that should receive pointer
// input at the current position.
func (e *Engine) TouchableRegion() geometry.Rect {
	if e.metrics.Horizontal {
		return geometry.NewRect(0, e.position, e.metrics.Display.Width, e.position+e.metrics.DividerSize)
	}
	return geometry.NewRect(e.position, 0, e.position+e.metrics.DividerSize, e.metrics.Display.Height)
}

// HandleTouch feeds one pointer event through the state machine.
func (e *Engine) HandleTouch(ev TouchEvent) error {
	switch ev.Type {
	case TouchDown:
		if err := e.StartDrag(true); err != nil {
			return err
		}
		e.session.StartX = ev.X
		e.session.StartY = ev.Y
		e.session.tracker.Reset()
		e.session.tracker.Add(ev.Time, ev.X, ev.Y)
		return nil

	case TouchMove:
		if e.state != StateDragging || e.session == nil {
			return nil
		}
		e.session.tracker.Add(ev.Time, ev.X, ev.Y)
		if !e.session.Moving && e.session.ExceededSlop(ev.X, ev.Y, e.metrics.TouchSlop, e.metrics.Horizontal) {
			// Re-anchor so the divider doesn't jump by the slop distance.
			e.session.StartX = ev.X
			e.session.StartY = ev.Y
			e.session.Moving = true
		}
		if e.session.Moving && e.session.Side.Valid() {
			position := e.session.Resolve(ev.X, ev.Y, e.metrics.Horizontal)
			e.session.LastPosition = position
			e.position = position
			target := e.provider.Nearest(position, 0, false)
			e.pipeline.Resize(position, TaskPositionAt(target.Position), target, e.session.Side)
		}
		return nil

	case TouchUp:
		if e.state != StateDragging || e.session == nil {
			return nil
		}
		e.session.tracker.Add(ev.Time, ev.X, ev.Y)
		position := e.session.Resolve(ev.X, ev.Y, e.metrics.Horizontal)
		e.StopDrag(position, e.session.AxisVelocity(e.metrics.Horizontal), false)
		return nil

	case TouchCancel:
		if e.state != StateDragging || e.session == nil {
			return nil
		}
		// A cancel carries no trustworthy coordinates; settle from the last
		// known position.
		e.StopDrag(e.session.LastPosition, e.session.AxisVelocity(e.metrics.Horizontal), false)
		return nil
	}
	return nil
}

// StartDrag opens a drag session. It fails when the collaborator reports no
// docked region, or when a previous gesture's settle is still in flight; a
// new drag is rejected rather than cancelling the running commit.
func (e *Engine) StartDrag(touching bool) error {
	if e.state != StateIdle {
		return ErrDragInProgress
	}
	side := e.proxy.DockSide()
	if !side.Valid() {
		return ErrInvalidDockSide
	}
	e.proxy.SetResizing(true)
	e.session = &Session{
		Side:          side,
		Touching:      touching,
		StartPosition: e.position,
		LastPosition:  e.position,
	}
	e.state = StateDragging
	e.log.Debug().
		Stringer("side", side).
		Int("position", e.position).
		Bool("touching", touching).
		Msg("drag started")
	return nil
}

// StopDrag releases the drag at position with the given axis velocity and
// starts the settle toward the selected snap target. When avoidDismissStart
// is set, a selection landing on the dismiss-start target is replaced by
// the first split target.
func (e *Engine) StopDrag(position int, velocity float64, avoidDismissStart bool) {
	if e.state != StateDragging || e.session == nil {
		return
	}
	target := e.provider.Nearest(position, velocity, false)
	if avoidDismissStart && target == e.provider.DismissStartTarget() {
		target = e.provider.FirstSplitTarget()
	}
	e.beginSettle(position, target, anim.FlingSpec(position, target.Position, velocity))
}

// StopDragAt settles a programmatic drag onto an explicit target with a
// fixed animation spec, skipping velocity selection.
func (e *Engine) StopDragAt(position int, target snap.Target, spec anim.Spec) {
	if e.state != StateDragging || e.session == nil {
		return
	}
	e.beginSettle(position, target, spec)
}

func (e *Engine) beginSettle(position int, target snap.Target, spec anim.Spec) {
	e.settle = anim.NewAnimation(float64(position), float64(target.Position), spec.Duration, spec.Curve)
	e.settleTarget = target
	e.state = StateReleasing
	e.log.Debug().
		Int("from", position).
		Stringer("target", target).
		Dur("duration", spec.Duration).
		Msg("settling")
}

// Frame advances the settle animation to now, publishing one frame of
// geometry. It returns true while further frames are needed. The terminal
// frame publishes a divider-only resize and commits the snap action.
func (e *Engine) Frame(now time.Time) bool {
	if e.state != StateReleasing || e.settle == nil || e.session == nil {
		return false
	}
	value, _, done := e.settle.Tick(now)
	position := int(math.Round(value))
	e.position = position

	taskPosition := TaskPositionAt(e.settleTarget.Position)
	if done {
		taskPosition = TaskPositionUnchanged()
	}
	e.pipeline.Resize(position, taskPosition, e.settleTarget, e.session.Side)

	if done {
		e.commitSnapFlags(e.settleTarget, e.session.Side)
		e.proxy.SetResizing(false)
		e.session = nil
		e.settle = nil
		e.state = StateIdle
		return false
	}
	return true
}

// commitSnapFlags issues the terminal action for a dismiss target: which of
// dismiss and maximize fires depends on which side the target collapses
// relative to the docked region's anchor.
func (e *Engine) commitSnapFlags(target snap.Target, side geometry.DockSide) {
	if target.Flag == snap.FlagNone {
		return
	}
	dismiss := (target.Flag == snap.FlagDismissStart && side.TopLeft()) ||
		(target.Flag == snap.FlagDismissEnd && side.BottomRight())
	if dismiss {
		e.proxy.Dismiss()
	} else {
		e.proxy.Maximize()
	}
	e.proxy.SetDimOverlay(false, DimNone, 0)
	e.log.Info().
		Stringer("target", target).
		Stringer("side", side).
		Bool("dismiss", dismiss).
		Msg("snap committed")
}

// HandleLifecycle reacts to host-shell lifecycle events with programmatic
// drags: docking a task animates the divider to the middle split once the
// recents surface has drawn.
func (e *Engine) HandleLifecycle(ev LifecycleEvent) {
	switch ev := ev.(type) {
	case RecentsStarting:
		if e.GrowRecents && e.proxy.DockSide() == geometry.DockTop &&
			e.position == e.provider.LastSplitTarget().Position {
			if err := e.StartDrag(false); err == nil {
				e.growAfterDrawn = true
			}
		}
	case DockingTask:
		if ev.Mode == DragModeNone {
			e.growAfterDrawn = false
			if err := e.StartDrag(false); err == nil {
				e.animateAfterDrawn = true
			}
		}
	case RecentsDrawn:
		if e.animateAfterDrawn || e.growAfterDrawn {
			e.animateAfterDrawn = false
			e.growAfterDrawn = false
			e.StopDragAt(e.position, e.provider.MiddleTarget(), anim.SettleSpec())
		}
	}
}
