package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/autoscroll/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	// mouse and pending are only touched by PollEvent.
	mouse   mouseTracker
	pending []Event
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen and turns on reporting of every mouse motion
// and of focus changes: an autoscroll session has to see the pointer move
// whether or not a button is held.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.EnableFocus()
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
	t.screen.DisableFocus()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cell.IsContinuation() {
		return
	}
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, width := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Rune:  mainc,
		Width: width,
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks for the next event. One raw mouse report can turn into
// several events (a release and a press); the extra ones are queued.
func (t *Terminal) PollEvent() Event {
	for len(t.pending) == 0 {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}
		t.pending = t.convertEvent(ev)
	}
	next := t.pending[0]
	t.pending = t.pending[1:]
	return next
}

func (t *Terminal) PostInterrupt(data any) error {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		return ErrQueueFull
	}
	return nil
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= core.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= core.AttrDim
	}
	if attrs&tcell.AttrItalic != 0 {
		s.Attributes |= core.AttrItalic
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= core.AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= core.AttrReverse
	}
	return s
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts a tcell event to zero or more of our events.
func (t *Terminal) convertEvent(ev tcell.Event) []Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return []Event{{
			Type: EventKey,
			When: e.When(),
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}}

	case *tcell.EventMouse:
		x, y := e.Position()
		return t.mouse.translate(x, y, e.Buttons(), convertMod(e.Modifiers()), e.When())

	case *tcell.EventResize:
		w, h := e.Size()
		return []Event{{Type: EventResize, When: e.When(), Width: w, Height: h}}

	case *tcell.EventFocus:
		// Buttons released while unfocused are never reported.
		t.mouse.reset()
		// tcell leaves the timestamp of focus events unset.
		when := time.Now()
		if e.EventTime != nil {
			when = e.When()
		}
		return []Event{{Type: EventFocus, When: when, Focused: e.Focused}}

	case *tcell.EventInterrupt:
		return []Event{{Type: EventInterrupt, When: e.When(), Data: e.Data()}}

	default:
		return nil
	}
}

func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyCtrlL:
		return KeyCtrlL
	default:
		return KeyNone
	}
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

// Button bits in tcell order: primary, secondary, middle, then the two
// navigation buttons.
var trackedButtons = []struct {
	mask   tcell.ButtonMask
	button MouseButton
}{
	{tcell.ButtonPrimary, MouseLeft},
	{tcell.ButtonSecondary, MouseRight},
	{tcell.ButtonMiddle, MouseMiddle},
	{tcell.Button4, MouseBack},
	{tcell.Button5, MouseForward},
}

var wheelButtons = []struct {
	mask   tcell.ButtonMask
	button MouseButton
}{
	{tcell.WheelUp, MouseWheelUp},
	{tcell.WheelDown, MouseWheelDown},
	{tcell.WheelLeft, MouseWheelLeft},
	{tcell.WheelRight, MouseWheelRight},
}

// mouseTracker turns tcell's "buttons currently down" reports into press,
// release and motion events.
type mouseTracker struct {
	held tcell.ButtonMask
}

func (m *mouseTracker) translate(x, y int, buttons tcell.ButtonMask, mod ModMask, when time.Time) []Event {
	base := Event{Type: EventMouse, When: when, MouseX: x, MouseY: y, Mod: mod}
	var out []Event

	for _, w := range wheelButtons {
		if buttons&w.mask != 0 {
			ev := base
			ev.MouseAction = MousePress
			ev.MouseButton = w.button
			out = append(out, ev)
		}
	}

	var down tcell.ButtonMask
	for _, b := range trackedButtons {
		down |= buttons & b.mask
	}
	released := m.held &^ down
	pressed := down &^ m.held

	for _, b := range trackedButtons {
		if released&b.mask != 0 {
			ev := base
			ev.MouseAction = MouseRelease
			ev.MouseButton = b.button
			out = append(out, ev)
		}
	}
	for _, b := range trackedButtons {
		if pressed&b.mask != 0 {
			ev := base
			ev.MouseAction = MousePress
			ev.MouseButton = b.button
			out = append(out, ev)
		}
	}
	m.held = down

	if len(out) == 0 {
		ev := base
		ev.MouseAction = MouseMove
		if held := m.firstHeld(); held != MouseNone {
			ev.MouseAction = MouseDrag
			ev.MouseButton = held
		}
		out = append(out, ev)
	}
	return out
}

func (m *mouseTracker) firstHeld() MouseButton {
	for _, b := range trackedButtons {
		if m.held&b.mask != 0 {
			return b.button
		}
	}
	return MouseNone
}

func (m *mouseTracker) reset() {
	m.held = 0
}
