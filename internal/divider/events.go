package divider

import "time"

// TouchType is the kind of a pointer event.
type TouchType int

const (
	TouchDown TouchType = iota
	TouchMove
	TouchUp
	TouchCancel
)

func (t TouchType) String() string {
	switch t {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	default:
		return "cancel"
	}
}

// TouchEvent is one pointer event in screen coordinates.
type TouchEvent struct {
	Type TouchType
	X    int
	Y    int
	Time time.Time
}

// DragMode describes how a docking gesture was initiated by the host shell.
type DragMode int

const (
	DragModeNone DragMode = iota
	DragModeDivider
	DragModeRecents
)

// LifecycleEvent is a host-shell lifecycle notification the engine reacts
// to with programmatic drags.
type LifecycleEvent interface {
	lifecycleEvent()
}

// RecentsStarting fires when the recents surface begins opening.
type RecentsStarting struct{}

// DockingTask fires when a task is being docked into the split.
type DockingTask struct {
	Mode DragMode
}

// RecentsDrawn fires once the recents surface has produced its first frame.
type RecentsDrawn struct{}

func (RecentsStarting) lifecycleEvent() {}
func (DockingTask) lifecycleEvent()     {}
func (RecentsDrawn) lifecycleEvent()    {}
