package backend

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/autoscroll/internal/renderer/core"
)

// ErrQueueFull is returned when an event cannot be queued.
var ErrQueueFull = errors.New("event queue full")

// NullBackend is an in-memory backend for testing.
// Cell access is locked so a test can inspect rows while an event loop
// draws.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }
func (b *NullBackend) Shutdown()   {}
func (b *NullBackend) Show()       {}
func (b *NullBackend) HideCursor() {}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setCell(x, y, cell)
}

func (b *NullBackend) setCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fill(rect, cell)
}

func (b *NullBackend) fill(rect core.ScreenRect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			b.setCell(x, y, cell)
		}
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fill(core.RectFromSize(0, 0, b.height, b.width), core.EmptyCell())
}

// PollEvent returns the next posted event.
func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// PostEvent queues ev for PollEvent.
func (b *NullBackend) PostEvent(ev Event) error {
	if ev.When.IsZero() {
		ev.When = time.Now()
	}
	select {
	case b.events <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

func (b *NullBackend) PostInterrupt(data any) error {
	return b.PostEvent(Event{Type: EventInterrupt, Data: data})
}

// Pending returns the number of queued events.
func (b *NullBackend) Pending() int {
	return len(b.events)
}

// Row returns the text of row y, for assertions.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	return core.StringFromCells(b.cells[y])
}

// Resize changes the dimensions and queues a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.allocate()
	b.mu.Unlock()
	_ = b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
