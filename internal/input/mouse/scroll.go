package mouse

import "github.com/dshills/autoscroll/internal/input"

// ScrollDirection represents the direction of a wheel event.
type ScrollDirection uint8

const (
	// ScrollNone indicates no scroll.
	ScrollNone ScrollDirection = iota
	// ScrollUp indicates scrolling up (content moves down).
	ScrollUp
	// ScrollDown indicates scrolling down (content moves up).
	ScrollDown
	// ScrollLeft indicates scrolling left.
	ScrollLeft
	// ScrollRight indicates scrolling right.
	ScrollRight
)

// String returns a string representation of the scroll direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	default:
		return "none"
	}
}

// scrollDirection converts a scroll button to a direction.
func scrollDirection(b Button) ScrollDirection {
	switch b {
	case ButtonScrollUp:
		return ScrollUp
	case ButtonScrollDown:
		return ScrollDown
	case ButtonScrollLeft:
		return ScrollLeft
	case ButtonScrollRight:
		return ScrollRight
	default:
		return ScrollNone
	}
}

// ScrollEvent is a wheel event with its line count resolved.
type ScrollEvent struct {
	Direction ScrollDirection
	Lines     int
	Position  Position
}

// ParseScrollEvent parses a mouse event into a scroll event.
// Returns nil if the event is not a wheel event.
func ParseScrollEvent(event Event, config Config) *ScrollEvent {
	direction := scrollDirection(event.Button)
	if direction == ScrollNone {
		return nil
	}

	lines := config.ScrollLines
	if event.Modifiers.HasShift() {
		lines = config.ScrollLinesShift
	}
	return &ScrollEvent{
		Direction: direction,
		Lines:     lines,
		Position:  event.Position,
	}
}

// ToAction converts the scroll event to a pager action. A nil event has
// no action.
func (e *ScrollEvent) ToAction() *input.Action {
	if e == nil {
		return nil
	}

	var name string
	switch e.Direction {
	case ScrollUp:
		name = ActionScrollUp
	case ScrollDown:
		name = ActionScrollDown
	case ScrollLeft:
		name = ActionScrollLeft
	case ScrollRight:
		name = ActionScrollRight
	default:
		return nil
	}
	return &input.Action{
		Name:   name,
		Source: input.SourceMouse,
		Count:  e.Lines,
	}
}

// IsHorizontal returns true if the scroll is horizontal.
func (e *ScrollEvent) IsHorizontal() bool {
	return e.Direction == ScrollLeft || e.Direction == ScrollRight
}
