package backend

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/autoscroll/internal/renderer/core"
)

func TestNullBackend_Cells(t *testing.T) {
	b := NewNullBackend(10, 3)

	w, h := b.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)

	for i, c := range core.CellsFromString("hello", core.DefaultStyle()) {
		b.SetCell(i, 1, c)
	}
	assert.Equal(t, "hello", b.Row(1)[:5])
	assert.Equal(t, 'e', b.GetCell(1, 1).Rune)

	// Out of range writes are ignored.
	b.SetCell(-1, 0, core.NewStyledCell('x', core.DefaultStyle()))
	b.SetCell(10, 0, core.NewStyledCell('x', core.DefaultStyle()))
	assert.Equal(t, ' ', b.GetCell(50, 50).Rune)

	b.Clear()
	assert.Equal(t, ' ', b.GetCell(1, 1).Rune)
	assert.Empty(t, b.Row(5))
}

func TestNullBackend_Fill(t *testing.T) {
	b := NewNullBackend(5, 5)
	b.Fill(core.RectFromSize(1, 1, 2, 3), core.NewStyledCell('#', core.DefaultStyle()))

	assert.Equal(t, ' ', b.GetCell(0, 1).Rune)
	assert.Equal(t, '#', b.GetCell(1, 1).Rune)
	assert.Equal(t, '#', b.GetCell(3, 2).Rune)
	assert.Equal(t, ' ', b.GetCell(4, 2).Rune)
	assert.Equal(t, ' ', b.GetCell(1, 3).Rune)
}

func TestNullBackend_Events(t *testing.T) {
	b := NewNullBackend(5, 5)

	require.NoError(t, b.PostInterrupt("tick"))
	b.Resize(8, 4)
	assert.Equal(t, 2, b.Pending())

	ev := b.PollEvent()
	assert.Equal(t, EventInterrupt, ev.Type)
	assert.Equal(t, "tick", ev.Data)
	assert.False(t, ev.When.IsZero())

	ev = b.PollEvent()
	assert.Equal(t, EventResize, ev.Type)
	assert.Equal(t, 8, ev.Width)
	assert.Equal(t, 4, ev.Height)

	w, h := b.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 4, h)
}

func TestNullBackend_QueueFull(t *testing.T) {
	b := NewNullBackend(1, 1)
	for b.Pending() < cap(b.events) {
		require.NoError(t, b.PostInterrupt(nil))
	}
	assert.ErrorIs(t, b.PostInterrupt(nil), ErrQueueFull)
}

func TestMouseTracker_PressMoveRelease(t *testing.T) {
	var m mouseTracker
	now := time.Now()

	evs := m.translate(4, 5, tcell.ButtonMiddle, ModNone, now)
	require.Len(t, evs, 1)
	assert.Equal(t, MousePress, evs[0].MouseAction)
	assert.Equal(t, MouseMiddle, evs[0].MouseButton)
	assert.Equal(t, 4, evs[0].MouseX)
	assert.Equal(t, 5, evs[0].MouseY)

	evs = m.translate(6, 5, tcell.ButtonMiddle, ModNone, now)
	require.Len(t, evs, 1)
	assert.Equal(t, MouseDrag, evs[0].MouseAction)
	assert.Equal(t, MouseMiddle, evs[0].MouseButton)

	evs = m.translate(7, 5, tcell.ButtonNone, ModNone, now)
	require.Len(t, evs, 1)
	assert.Equal(t, MouseRelease, evs[0].MouseAction)
	assert.Equal(t, MouseMiddle, evs[0].MouseButton)

	evs = m.translate(8, 6, tcell.ButtonNone, ModNone, now)
	require.Len(t, evs, 1)
	assert.Equal(t, MouseMove, evs[0].MouseAction)
	assert.Equal(t, MouseNone, evs[0].MouseButton)
}

func TestMouseTracker_ButtonMapping(t *testing.T) {
	tests := []struct {
		mask tcell.ButtonMask
		want MouseButton
	}{
		{tcell.ButtonPrimary, MouseLeft},
		{tcell.ButtonSecondary, MouseRight},
		{tcell.ButtonMiddle, MouseMiddle},
		{tcell.Button4, MouseBack},
		{tcell.Button5, MouseForward},
	}
	for _, tt := range tests {
		var m mouseTracker
		evs := m.translate(0, 0, tt.mask, ModNone, time.Now())
		require.Len(t, evs, 1)
		assert.Equal(t, tt.want, evs[0].MouseButton)
	}
}

func TestMouseTracker_ChangeOfButtons(t *testing.T) {
	var m mouseTracker
	now := time.Now()

	m.translate(0, 0, tcell.ButtonPrimary, ModNone, now)

	// Left released and middle pressed in one report.
	evs := m.translate(0, 0, tcell.ButtonMiddle, ModShift, now)
	require.Len(t, evs, 2)
	assert.Equal(t, MouseRelease, evs[0].MouseAction)
	assert.Equal(t, MouseLeft, evs[0].MouseButton)
	assert.Equal(t, MousePress, evs[1].MouseAction)
	assert.Equal(t, MouseMiddle, evs[1].MouseButton)
	assert.True(t, evs[1].Mod.Has(ModShift))
}

func TestMouseTracker_Wheel(t *testing.T) {
	var m mouseTracker
	now := time.Now()

	evs := m.translate(1, 1, tcell.WheelDown, ModNone, now)
	require.Len(t, evs, 1)
	assert.Equal(t, MousePress, evs[0].MouseAction)
	assert.Equal(t, MouseWheelDown, evs[0].MouseButton)

	// Wheel bits are never held.
	evs = m.translate(1, 1, tcell.WheelDown, ModNone, now)
	require.Len(t, evs, 1)
	assert.Equal(t, MousePress, evs[0].MouseAction)

	evs = m.translate(1, 1, tcell.ButtonPrimary|tcell.WheelUp, ModNone, now)
	require.Len(t, evs, 2)
	assert.Equal(t, MouseWheelUp, evs[0].MouseButton)
	assert.Equal(t, MouseLeft, evs[1].MouseButton)
}

func TestMouseTracker_Reset(t *testing.T) {
	var m mouseTracker
	m.translate(0, 0, tcell.ButtonMiddle, ModNone, time.Now())
	m.reset()

	evs := m.translate(0, 0, tcell.ButtonMiddle, ModNone, time.Now())
	require.Len(t, evs, 1)
	assert.Equal(t, MousePress, evs[0].MouseAction)
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	require.NoError(t, term.Init())
	screen.SetSize(20, 5)
	t.Cleanup(term.Shutdown)
	return term, screen
}

// nextEvent skips resize events the screen emits on its own.
func nextEvent(t *testing.T, term *Terminal) Event {
	t.Helper()
	for range 10 {
		ev := term.PollEvent()
		if ev.Type != EventResize {
			return ev
		}
	}
	t.Fatal("no event")
	return Event{}
}

func TestTerminal_Cells(t *testing.T) {
	term, _ := newSimTerminal(t)

	style := core.DefaultStyle().WithForeground(core.ColorFromRGB(10, 20, 30)).Bold()
	term.SetCell(2, 1, core.NewStyledCell('z', style))

	got := term.GetCell(2, 1)
	assert.Equal(t, 'z', got.Rune)
	assert.Equal(t, core.ColorFromRGB(10, 20, 30), got.Style.Foreground)
	assert.True(t, got.Style.Attributes.Has(core.AttrBold))

	term.Fill(core.RectFromSize(0, 0, 1, 3), core.NewStyledCell('-', core.DefaultStyle()))
	assert.Equal(t, '-', term.GetCell(2, 0).Rune)
	assert.Equal(t, ' ', term.GetCell(3, 0).Rune)
}

func TestTerminal_Events(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectMouse(3, 2, tcell.ButtonMiddle, tcell.ModNone)
	ev := nextEvent(t, term)
	assert.Equal(t, EventMouse, ev.Type)
	assert.Equal(t, MousePress, ev.MouseAction)
	assert.Equal(t, MouseMiddle, ev.MouseButton)
	assert.Equal(t, 3, ev.MouseX)
	assert.Equal(t, 2, ev.MouseY)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ev = nextEvent(t, term)
	assert.Equal(t, EventKey, ev.Type)
	assert.Equal(t, KeyRune, ev.Key)
	assert.Equal(t, 'q', ev.Rune)

	require.NoError(t, term.PostInterrupt(42))
	ev = nextEvent(t, term)
	assert.Equal(t, EventInterrupt, ev.Type)
	assert.Equal(t, 42, ev.Data)

	require.NoError(t, screen.PostEvent(tcell.NewEventFocus(false)))
	ev = nextEvent(t, term)
	assert.Equal(t, EventFocus, ev.Type)
	assert.False(t, ev.Focused)
}

func TestConvertEvent_FocusWithoutTimestamp(t *testing.T) {
	term := &Terminal{}
	term.mouse.translate(1, 1, tcell.ButtonMiddle, ModNone, time.Now())

	var evs []Event
	require.NotPanics(t, func() { evs = term.convertEvent(tcell.NewEventFocus(true)) })
	require.Len(t, evs, 1)
	assert.Equal(t, EventFocus, evs[0].Type)
	assert.True(t, evs[0].Focused)
	assert.False(t, evs[0].When.IsZero())

	// The held button was forgotten, so the next report is a fresh press.
	evs = term.convertEvent(tcell.NewEventMouse(1, 1, tcell.ButtonMiddle, tcell.ModNone))
	require.Len(t, evs, 1)
	assert.Equal(t, MousePress, evs[0].MouseAction)
}

func TestConvertKey(t *testing.T) {
	assert.Equal(t, KeyEscape, convertKey(tcell.KeyEscape))
	assert.Equal(t, KeyPageDown, convertKey(tcell.KeyPgDn))
	assert.Equal(t, KeyCtrlC, convertKey(tcell.KeyCtrlC))
	assert.Equal(t, KeyNone, convertKey(tcell.KeyF12))
}

func TestConvertMod(t *testing.T) {
	got := convertMod(tcell.ModShift | tcell.ModAlt)
	assert.True(t, got.Has(ModShift))
	assert.True(t, got.Has(ModAlt))
	assert.False(t, got.Has(ModCtrl))
}
