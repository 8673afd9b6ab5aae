package textview

import (
	"strings"

	"github.com/dshills/autoscroll/internal/input"
	"github.com/dshills/autoscroll/internal/input/mouse"
)

// Keyboard-only action names. Mouse actions use the names in package mouse.
const (
	ActionTop          = "scroll.top"
	ActionBottom       = "scroll.bottom"
	ActionHalfPageUp   = "scroll.halfPageUp"
	ActionHalfPageDown = "scroll.halfPageDown"
)

type markRange struct {
	anchor, end int
}

var noMarks = markRange{anchor: -1, end: -1}

func (m markRange) empty() bool { return m.anchor < 0 }

func (m markRange) bounds() (int, int) {
	return min(m.anchor, m.end), max(m.anchor, m.end)
}

func (m markRange) contains(line int) bool {
	if m.empty() {
		return false
	}
	lo, hi := m.bounds()
	return line >= lo && line <= hi
}

// Marks returns the marked line range, inclusive. ok is false when
// nothing is marked.
func (t *TextView) Marks() (first, last int, ok bool) {
	if t.marks.empty() {
		return 0, 0, false
	}
	first, last = t.marks.bounds()
	return first, last, true
}

// Execute performs a pager action. Positions in mouse actions are local to
// the text region. It returns false for names it does not know and for
// positions outside the region.
func (t *TextView) Execute(a input.Action) bool {
	n := a.Times()
	switch a.Name {
	case mouse.ActionScrollUp:
		t.scroll(t.view.ScrollBy(-n))
	case mouse.ActionScrollDown:
		t.scroll(t.view.ScrollBy(n))
	case mouse.ActionScrollLeft:
		t.scroll(t.view.ScrollHorizontalBy(-n))
	case mouse.ActionScrollRight:
		t.scroll(t.view.ScrollHorizontalBy(n))
	case mouse.ActionPageUp:
		for range n {
			t.scroll(t.view.PageUp())
		}
	case mouse.ActionPageDown:
		for range n {
			t.scroll(t.view.PageDown())
		}
	case ActionHalfPageUp:
		t.scroll(t.view.HalfPageUp())
	case ActionHalfPageDown:
		t.scroll(t.view.HalfPageDown())
	case ActionTop:
		t.view.ScrollToTop()
		t.needsRedraw = true
	case ActionBottom:
		t.view.ScrollToBottom()
		t.needsRedraw = true
	case mouse.ActionClearMarks:
		t.marks = noMarks
		t.needsRedraw = true
	case mouse.ActionMarkLine, mouse.ActionMarkExtend, mouse.ActionMarkParagraph, mouse.ActionCenterLine:
		return t.executeAt(a)
	default:
		return false
	}
	return true
}

// executeAt runs an action carrying a cell local to the text region.
func (t *TextView) executeAt(a input.Action) bool {
	x, y := a.Args.GetInt("x"), a.Args.GetInt("y")
	if x < 0 || y < 0 || x >= t.text.Width() || y >= t.text.Height() {
		return false
	}
	line, _ := t.view.ScreenToDocument(y, x)
	if line >= len(t.lines) {
		line = len(t.lines) - 1
	}
	if line < 0 {
		return false
	}

	switch a.Name {
	case mouse.ActionMarkLine:
		t.marks = markRange{anchor: line, end: line}
	case mouse.ActionMarkExtend:
		if t.marks.empty() {
			t.marks = markRange{anchor: line, end: line}
		} else {
			t.marks.end = line
		}
	case mouse.ActionMarkParagraph:
		first, last := t.paragraph(line)
		t.marks = markRange{anchor: first, end: last}
	case mouse.ActionCenterLine:
		t.view.CenterOn(line)
	}
	t.needsRedraw = true
	return true
}

// paragraph returns the run of non-blank lines around line. A blank line
// is its own paragraph.
func (t *TextView) paragraph(line int) (first, last int) {
	blank := func(i int) bool { return strings.TrimSpace(t.lines[i]) == "" }
	if blank(line) {
		return line, line
	}
	first, last = line, line
	for first > 0 && !blank(first-1) {
		first--
	}
	for last < len(t.lines)-1 && !blank(last+1) {
		last++
	}
	return first, last
}

func (t *TextView) scroll(moved int) {
	if moved != 0 {
		t.needsRedraw = true
	}
}
