package mouse

import (
	"sync"
	"time"

	"github.com/dshills/autoscroll/internal/input"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
	// ButtonScrollLeft indicates horizontal scroll left.
	ButtonScrollLeft
	// ButtonScrollRight indicates horizontal scroll right.
	ButtonScrollRight
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward
)

var buttonNames = map[Button]string{
	ButtonLeft:        "left",
	ButtonMiddle:      "middle",
	ButtonRight:       "right",
	ButtonScrollUp:    "scroll-up",
	ButtonScrollDown:  "scroll-down",
	ButtonScrollLeft:  "scroll-left",
	ButtonScrollRight: "scroll-right",
	ButtonBack:        "back",
	ButtonForward:     "forward",
}

// String returns a string representation of the button.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "none"
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b >= ButtonScrollUp && b <= ButtonScrollRight
}

// ParseButton returns the button named s, as produced by String.
// Scroll buttons cannot be parsed since they never have a release.
func ParseButton(s string) (Button, bool) {
	for b, name := range buttonNames {
		if name == s && !b.IsScroll() {
			return b, true
		}
	}
	return ButtonNone, false
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// Position represents a screen cell.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Event represents a mouse input event.
type Event struct {
	// Position is the screen cell of the pointer.
	Position Position

	// Button is the mouse button involved. For a release it is the button
	// that was let go, for a drag the button being held.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers input.Modifier

	// Action is the type of mouse action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Config configures the fallback click and wheel handler.
type Config struct {
	// DoubleClickTime is the maximum time between clicks for a double-click.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between clicks for a double-click.
	DoubleClickDistance int

	// ScrollLines is the number of lines to scroll per wheel tick.
	ScrollLines int

	// ScrollLinesShift is the number of lines when Shift is held.
	ScrollLinesShift int

	// EnableDragMarking marks a range of lines while dragging with the
	// left button.
	EnableDragMarking bool

	// EnableMiddleClickCenter centers the clicked line on a middle click
	// that no other processor consumed.
	EnableMiddleClickCenter bool
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:         400 * time.Millisecond,
		DoubleClickDistance:     4,
		ScrollLines:             3,
		ScrollLinesShift:        1,
		EnableDragMarking:       true,
		EnableMiddleClickCenter: true,
	}
}

// Action names produced by Handler.
const (
	ActionScrollUp      = "scroll.up"
	ActionScrollDown    = "scroll.down"
	ActionScrollLeft    = "scroll.left"
	ActionScrollRight   = "scroll.right"
	ActionPageUp        = "scroll.pageUp"
	ActionPageDown      = "scroll.pageDown"
	ActionMarkLine      = "view.markLine"
	ActionMarkExtend    = "view.markExtend"
	ActionCenterLine    = "view.centerLine"
	ActionClearMarks    = "view.clearMarks"
	ActionMarkParagraph = "view.markParagraph"
)

// Handler turns clicks, drags and wheel events into pager actions.
// It is meant to sit at the end of a Chain, after processors that consume
// events themselves.
type Handler struct {
	mu     sync.Mutex
	config Config

	click *clickTracker
	drag  *dragTracker
}

// NewHandler creates a new mouse handler with the given configuration.
func NewHandler(config Config) *Handler {
	return &Handler{
		config: config,
		click:  newClickTracker(config.DoubleClickTime, config.DoubleClickDistance),
		drag:   newDragTracker(),
	}
}

// Handle processes a mouse event and returns an action (or nil).
func (h *Handler) Handle(event Event) *input.Action {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Action {
	case ActionPress:
		return h.handlePress(event)
	case ActionRelease:
		h.drag.end()
	case ActionDrag:
		return h.handleDrag(event)
	}
	return nil
}

func (h *Handler) handlePress(event Event) *input.Action {
	if event.Button.IsScroll() {
		return ParseScrollEvent(event, h.config).ToAction()
	}

	x, y := event.Position.X, event.Position.Y
	switch event.Button {
	case ButtonLeft:
		return h.handleLeftPress(event)

	case ButtonMiddle:
		if h.config.EnableMiddleClickCenter {
			a := input.At(ActionCenterLine, x, y)
			return &a
		}

	case ButtonRight:
		a := input.At(ActionClearMarks, x, y)
		return &a

	case ButtonBack:
		return &input.Action{Name: ActionPageUp, Source: input.SourceMouse}

	case ButtonForward:
		return &input.Action{Name: ActionPageDown, Source: input.SourceMouse}
	}
	return nil
}

func (h *Handler) handleLeftPress(event Event) *input.Action {
	count := h.click.recordClick(event.Position, event.Timestamp)
	h.drag.start(event.Position, event.Button)

	x, y := event.Position.X, event.Position.Y
	var a input.Action
	switch {
	case count >= 2:
		a = input.At(ActionMarkParagraph, x, y)
	case event.Modifiers.HasShift():
		a = input.At(ActionMarkExtend, x, y)
	default:
		a = input.At(ActionMarkLine, x, y)
	}
	return &a
}

func (h *Handler) handleDrag(event Event) *input.Action {
	if !h.config.EnableDragMarking || !h.drag.active || h.drag.button != ButtonLeft {
		return nil
	}
	if event.Position.Y == h.drag.currentPos.Y {
		return nil
	}
	h.drag.update(event.Position)
	a := input.At(ActionMarkExtend, event.Position.X, event.Position.Y)
	return &a
}

// Reset clears all handler state.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.click.reset()
	h.drag.end()
}

// IsDragging returns true if a drag operation is in progress.
func (h *Handler) IsDragging() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drag.active
}

// Processor adapts h to the Chain. Every action h produces is passed to
// dispatch and counts as handled.
func (h *Handler) Processor(dispatch func(input.Action)) Processor {
	return &handlerProcessor{handler: h, dispatch: dispatch}
}

type handlerProcessor struct {
	handler  *Handler
	dispatch func(input.Action)
}

func (p *handlerProcessor) Name() string { return "mouse" }

func (p *handlerProcessor) ProcessMouse(event Event) bool {
	action := p.handler.Handle(event)
	if action == nil {
		return false
	}
	if p.dispatch != nil {
		p.dispatch(*action)
	}
	return true
}
