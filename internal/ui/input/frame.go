package input

import (
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
)

// DragState is the controller state between frames.
type DragState int

const (
	// DragIdle means no session is active.
	DragIdle DragState = iota
	// DragArmed means a handle was pressed but the pointer has not travelled
	// past the threshold yet.
	DragArmed
	// DragDragging means a session is live and candidates are reported.
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragArmed:
		return "armed"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Button is the pointer button transition reported for a frame.
type Button int

const (
	// ButtonNone means the button state did not change this frame.
	ButtonNone Button = iota
	ButtonPress
	ButtonHeld
	ButtonRelease
)

// HandleKind says what was under the pointer when the button went down.
type HandleKind int

const (
	// HandleNone lets the controller look for a divider under the press point.
	HandleNone HandleKind = iota
	// HandleTab is a panel tab.
	HandleTab
	// HandleDivider is the bar between two split children.
	HandleDivider
	// HandleWindow is the title bar of a floating window.
	HandleWindow
)

// Handle identifies the grabbed element. Only the field matching Kind is read.
type Handle struct {
	Kind   HandleKind
	Panel  entity.PanelID     // HandleTab
	Split  entity.ContainerID // HandleDivider; NoContainer hit-tests the press point
	Window entity.ContainerID // HandleWindow
}

// TabHandle is shorthand for a press on panel's tab.
func TabHandle(panel entity.PanelID) Handle {
	return Handle{Kind: HandleTab, Panel: panel}
}

// WindowHandle is shorthand for a press on a floating window's title bar.
func WindowHandle(window entity.ContainerID) Handle {
	return Handle{Kind: HandleWindow, Window: window}
}

// Frame is one poll of host input.
type Frame struct {
	Pointer entity.Point
	Button  Button
	// Handle is read on ButtonPress only.
	Handle Handle
	// Cancel ends any session in this frame, e.g. on focus loss.
	Cancel   bool
	Viewport entity.Rect
}

// Outcome is what a frame concluded, if anything.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeClick is a tab press released before the drag threshold.
	OutcomeClick
	// OutcomeDropped is a tab drag that moved its panel.
	OutcomeDropped
	// OutcomeDropFailed is a tab drag whose move was rejected; the tree is unchanged.
	OutcomeDropFailed
	// OutcomeCancelled is a session discarded without a drop.
	OutcomeCancelled
	// OutcomeResized ends a divider drag.
	OutcomeResized
	// OutcomeMoved ends a floating window drag.
	OutcomeMoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeClick:
		return "click"
	case OutcomeDropped:
		return "dropped"
	case OutcomeDropFailed:
		return "drop_failed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeResized:
		return "resized"
	case OutcomeMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// FrameResult is returned by every Update.
type FrameResult struct {
	State DragState
	// Candidate is advisory drop feedback, valid when HasCandidate is set.
	Candidate    layout.Candidate
	HasCandidate bool
	Outcome      Outcome
	// Panel is the dragged or clicked panel, if the session had one.
	Panel entity.PanelID
	// Leaf is the stack holding a clicked tab.
	Leaf     entity.ContainerID
	Mutation *usecase.MutationOutput
	Err      error
}
