// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"time"

	"github.com/dshills/autoscroll/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventFocus
	// EventInterrupt carries a value posted with PostInterrupt.
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType
	When time.Time

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseAction    MouseAction
	// MouseButton is the button pressed or released, or held during a drag.
	MouseButton MouseButton

	// Resize event fields
	Width, Height int

	// Focus event fields
	Focused bool

	// Interrupt payload
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the pager binds.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlL
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton identifies a mouse button or wheel direction.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseBack
	MouseForward
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// MouseAction is what happened to the pointer.
type MouseAction int

const (
	MouseActionNone MouseAction = iota
	MousePress
	MouseRelease
	// MouseMove is motion with no button held.
	MouseMove
	// MouseDrag is motion with a button held.
	MouseDrag
)

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the terminal.
	GetCell(x, y int) core.Cell

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// HideCursor hides the text cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// It returns an EventNone event once the backend is shut down.
	PollEvent() Event

	// PostInterrupt queues an EventInterrupt carrying data. It may be
	// called from any goroutine. It fails when the queue is full.
	PostInterrupt(data any) error
}
