// Package statusline provides the pager's bottom status bar.
package statusline

import (
	"fmt"

	"github.com/dshills/autoscroll/internal/renderer/backend"
	"github.com/dshills/autoscroll/internal/renderer/core"
)

// Mode names shown at the left of the bar.
const (
	ModeView = "VIEW"
	ModePan  = "PAN"
)

// StatusLine renders the bottom status line: mode, file name, pan
// direction and position.
type StatusLine struct {
	// Display state
	mode       string
	filename   string
	topLine    int // 1-indexed first visible line
	bottomLine int // 1-indexed last visible line
	totalLines int
	percent    int
	direction  string // pan direction glyph, empty outside a session

	// Message display
	message     string
	messageType MessageType

	modeStyles map[string]core.Style

	left  int
	width int
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		mode:       ModeView,
		modeStyles: defaultModeStyles(),
	}
}

func defaultModeStyles() map[string]core.Style {
	return map[string]core.Style{
		ModeView: core.DefaultStyle().Bold().WithBackground(core.ColorFromIndex(4)).WithForeground(core.ColorWhite),
		ModePan:  core.DefaultStyle().Bold().WithBackground(core.ColorYellow).WithForeground(core.ColorBlack),
	}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// Mode returns the displayed mode.
func (s *StatusLine) Mode() string {
	return s.mode
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetPosition updates the visible range (1-indexed) and document length.
func (s *StatusLine) SetPosition(top, bottom, total int) {
	s.topLine = top
	s.bottomLine = bottom
	s.totalLines = total
}

// SetScrollPercent updates the scroll percentage.
func (s *StatusLine) SetScrollPercent(percent int) {
	s.percent = percent
}

// SetDirection shows a pan direction glyph; empty hides it.
func (s *StatusLine) SetDirection(glyph string) {
	s.direction = glyph
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Place sets the first column and the width of the bar.
func (s *StatusLine) Place(left, width int) {
	s.left = left
	s.width = width
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	if s.message != "" {
		s.renderMessage(b, row)
		return
	}
	s.renderStatusBar(b, row)
}

func (s *StatusLine) renderStatusBar(b backend.Backend, row int) {
	modeStyle, ok := s.modeStyles[s.mode]
	if !ok {
		modeStyle = core.DefaultStyle().Bold().WithBackground(core.ColorGray)
	}
	barStyle := core.DefaultStyle().WithBackground(core.ColorGray).WithForeground(core.ColorWhite)

	b.Fill(core.RectFromSize(row, s.left, 1, s.width), core.Cell{Rune: ' ', Width: 1, Style: barStyle})

	col := s.put(b, 0, row, " "+s.mode+" ", modeStyle, s.width)
	col++

	filename := s.filename
	if filename == "" {
		filename = "[stdin]"
	}
	if s.direction != "" {
		filename = s.direction + " " + filename
	}

	posInfo := s.formatPosition()
	posStart := s.width - core.StringWidth(posInfo) - 1
	// Leave room for position info
	col = s.put(b, col, row, filename, barStyle, posStart-1)
	if posStart > col {
		s.put(b, posStart, row, posInfo, barStyle, s.width)
	}
}

func (s *StatusLine) renderMessage(b backend.Backend, row int) {
	var msgStyle core.Style
	switch s.messageType {
	case MessageError:
		msgStyle = core.DefaultStyle().WithForeground(core.ColorFromIndex(1)).Bold()
	case MessageWarning:
		msgStyle = core.DefaultStyle().WithForeground(core.ColorYellow)
	default:
		msgStyle = core.DefaultStyle()
	}

	b.Fill(core.RectFromSize(row, s.left, 1, s.width), core.Cell{Rune: ' ', Width: 1, Style: msgStyle})
	s.put(b, 0, row, s.message, msgStyle, s.width)
}

// put draws text from bar column col, stopping before limit, and returns
// the column after the last cell drawn.
func (s *StatusLine) put(b backend.Backend, col, row int, text string, style core.Style, limit int) int {
	for _, cell := range core.CellsFromString(text, style) {
		if col >= limit {
			break
		}
		b.SetCell(s.left+col, row, cell)
		col++
	}
	return col
}

// formatPosition formats the position info for the right side.
func (s *StatusLine) formatPosition() string {
	if s.totalLines == 0 {
		return "(empty)"
	}
	result := fmt.Sprintf("%d-%d/%d", s.topLine, s.bottomLine, s.totalLines)
	switch {
	case s.topLine <= 1 && s.bottomLine >= s.totalLines:
		result += " All"
	case s.topLine <= 1:
		result += " Top"
	case s.bottomLine >= s.totalLines:
		result += " Bot"
	default:
		result += fmt.Sprintf(" %d%%", s.percent)
	}
	return result
}
