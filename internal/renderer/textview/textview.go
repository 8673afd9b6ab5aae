package textview

import (
	"context"
	"strings"

	"github.com/dshills/autoscroll/internal/autoscroll"
	"github.com/dshills/autoscroll/internal/event"
	"github.com/dshills/autoscroll/internal/renderer/backend"
	"github.com/dshills/autoscroll/internal/renderer/core"
	"github.com/dshills/autoscroll/internal/renderer/statusline"
	"github.com/dshills/autoscroll/internal/renderer/viewport"
)

// TabWidth is the number of columns a tab expands to.
const TabWidth = 4

// Styles holds the colors the view draws with.
type Styles struct {
	Text      core.Style
	Marked    core.Style
	Filler    core.Style
	Indicator core.Color
	// Backdrop is what a translucent indicator is composited over.
	Backdrop core.Color
}

func defaultStyles() Styles {
	return Styles{
		Text:      core.DefaultStyle(),
		Marked:    core.DefaultStyle().Reverse(),
		Filler:    core.DefaultStyle().WithForeground(core.ColorGray),
		Indicator: core.ColorYellow,
		Backdrop:  core.ColorBlack,
	}
}

// Option configures a TextView.
type Option func(*TextView)

// WithBus publishes visibility and close notifications on bus.
func WithBus(bus *event.Bus) Option {
	return func(t *TextView) {
		t.bus = bus
	}
}

// TextView is a pager view over a list of lines. It is not safe for
// concurrent use; it lives on the event loop goroutine.
type TextView struct {
	id      string
	backend backend.Backend
	bus     *event.Bus
	styles  Styles

	view   *viewport.Viewport
	status *statusline.StatusLine

	name  string
	lines []string

	// area is the whole region, text is area minus the status row.
	area core.ScreenRect
	text core.ScreenRect

	open     bool
	visible  bool
	captured bool
	cursor   autoscroll.Cursor
	pointer  autoscroll.Point

	indicator   *placedIndicator
	marks       markRange
	needsRedraw bool
}

type placedIndicator struct {
	ind   autoscroll.Indicator
	local autoscroll.Point
}

// New creates an open, visible view drawing into b.
func New(id string, b backend.Backend, opts ...Option) *TextView {
	t := &TextView{
		id:          id,
		backend:     b,
		styles:      defaultStyles(),
		view:        viewport.NewViewport(1, 1),
		status:      statusline.New(),
		open:        true,
		visible:     true,
		cursor:      autoscroll.CursorText,
		marks:       noMarks,
		needsRedraw: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetContent replaces the document.
func (t *TextView) SetContent(name string, lines []string) {
	t.name = name
	t.lines = lines
	t.marks = noMarks

	maxWidth := 0
	for _, l := range lines {
		maxWidth = max(maxWidth, core.StringWidth(l))
	}
	t.view.SetContentSize(len(lines), maxWidth)
	t.status.SetFilename(name)
	t.needsRedraw = true
}

// SplitLines splits raw text into display lines, dropping carriage
// returns and expanding tabs.
func SplitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = expandTabs(l)
	}
	return lines
}

func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := TabWidth - col%TabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += core.RuneWidth(r)
	}
	return sb.String()
}

// SetBounds places the view on screen. The last row of area holds the
// status line.
func (t *TextView) SetBounds(area core.ScreenRect) {
	t.area = area
	t.text = area
	if area.Height() > 1 {
		t.text.Bottom--
	}
	t.view.Resize(t.text.Width(), t.text.Height())
	t.status.Place(area.Left, area.Width())
	t.needsRedraw = true
}

// Contains reports whether the screen cell (x, y) is in the text region.
func (t *TextView) Contains(x, y int) bool {
	return t.text.Contains(x, y)
}

// LocalPoint converts a screen cell to a point local to the text region.
func (t *TextView) LocalPoint(x, y int) autoscroll.Point {
	return autoscroll.Pt(float64(x-t.text.Left), float64(y-t.text.Top))
}

// PointerMoved records the pointer's screen cell.
func (t *TextView) PointerMoved(x, y int) {
	t.pointer = autoscroll.Pt(float64(x), float64(y))
}

// Viewport returns the underlying scroll state.
func (t *TextView) Viewport() *viewport.Viewport {
	return t.view
}

// StatusLine returns the view's status line.
func (t *TextView) StatusLine() *statusline.StatusLine {
	return t.status
}

// NeedsRedraw reports whether anything changed since the last Draw.
func (t *TextView) NeedsRedraw() bool {
	return t.needsRedraw
}

// Invalidate forces the next Draw.
func (t *TextView) Invalidate() {
	t.needsRedraw = true
}

// SetVisible shows or hides the view and announces the change.
func (t *TextView) SetVisible(visible bool) error {
	if t.visible == visible {
		return nil
	}
	t.visible = visible
	t.needsRedraw = true
	return t.publish(event.TopicViewportVisibility, event.VisibilityChanged{ViewportID: t.id, Visible: visible})
}

// Close closes the view and announces it. Closing twice does nothing.
func (t *TextView) Close() error {
	if !t.open {
		return nil
	}
	t.open = false
	return t.publish(event.TopicViewportClosed, event.Closed{ViewportID: t.id})
}

func (t *TextView) publish(topic event.Topic, payload any) error {
	if t.bus == nil {
		return nil
	}
	return t.bus.Publish(context.Background(), event.New(topic, payload, "textview:"+t.id))
}

// Draw renders the document, the indicator and the status line.
func (t *TextView) Draw() {
	t.needsRedraw = false
	if t.area.IsEmpty() {
		return
	}

	top, left := t.view.TopLine(), t.view.LeftColumn()
	width := t.text.Width()
	for row := range t.text.Height() {
		y := t.text.Top + row
		line := top + row

		style := t.styles.Text
		if t.marks.contains(line) {
			style = t.styles.Marked
		}
		t.backend.Fill(core.RectFromSize(y, t.text.Left, 1, width), core.Cell{Rune: ' ', Width: 1, Style: style})

		if line >= len(t.lines) {
			t.backend.SetCell(t.text.Left, y, core.NewStyledCell('~', t.styles.Filler))
			continue
		}
		t.drawLine(core.CellsFromString(t.lines[line], style), left, y, width)
	}

	t.drawIndicator()
	t.updateStatus()
	t.status.Render(t.backend, t.area.Bottom-1)
}

func (t *TextView) drawLine(cells []core.Cell, left, y, width int) {
	if left >= len(cells) {
		return
	}
	cells = cells[left:]
	for x := 0; x < width && x < len(cells); x++ {
		c := cells[x]
		if c.IsContinuation() {
			if x > 0 {
				continue
			}
			// The left half of a wide glyph is scrolled out.
			c = core.Cell{Rune: ' ', Width: 1, Style: c.Style}
		}
		if c.Width > 1 && x+c.Width > width {
			c = core.Cell{Rune: ' ', Width: 1, Style: c.Style}
		}
		t.backend.SetCell(t.text.Left+x, y, c)
	}
}

func (t *TextView) drawIndicator() {
	if t.indicator == nil {
		return
	}
	x := t.text.Left + int(t.indicator.local.X)
	y := t.text.Top + int(t.indicator.local.Y)
	if !t.text.Contains(x, y) {
		return
	}
	fg := t.styles.Indicator.WithOpacity(t.styles.Backdrop, t.indicator.ind.Opacity)
	style := t.backend.GetCell(x, y).Style.WithForeground(fg).Bold()
	t.backend.SetCell(x, y, core.NewStyledCell(Glyph(t.indicator.ind.Cursor), style))
}

func (t *TextView) updateStatus() {
	total := len(t.lines)
	first := min(t.view.TopLine()+1, total)
	t.status.SetPosition(first, t.view.BottomLine()+1, total)
	t.status.SetScrollPercent(int(t.view.ScrollPercent() * 100))

	if t.cursor.IsScroll() {
		t.status.SetMode(statusline.ModePan)
		t.status.SetDirection(string(Glyph(t.cursor)))
	} else {
		t.status.SetMode(statusline.ModeView)
		t.status.SetDirection("")
	}
}
