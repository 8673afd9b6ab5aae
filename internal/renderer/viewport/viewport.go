// Package viewport tracks which part of a document is on screen.
package viewport

import "sync"

// Viewport represents the visible portion of a document: a window of
// height lines by width columns, positioned at (topLine, leftColumn).
//
// Scroll positions are always clamped so the window never starts past the
// point where the last line (or the widest column) would leave the screen.
type Viewport struct {
	mu sync.RWMutex

	// Position in document (first visible line and column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	// Document extent
	lineCount int
	maxWidth  int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// BottomLine returns the last visible line. It is -1 for an empty document.
func (v *Viewport) BottomLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.bottomLine()
}

func (v *Viewport) bottomLine() int {
	return min(v.topLine+v.height, v.lineCount) - 1
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftColumn
}

// LineCount returns the number of lines in the document.
func (v *Viewport) LineCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lineCount
}

// Resize updates the viewport size and re-clamps the position.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = max(width, 1)
	v.height = max(height, 1)
	v.clamp()
}

// SetContentSize records the document extent: its number of lines and the
// display width of its widest line.
func (v *Viewport) SetContentSize(lines, maxWidth int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.lineCount = max(lines, 0)
	v.maxWidth = max(maxWidth, 0)
	v.clamp()
}

// MaxTopLine returns the largest valid top line.
func (v *Viewport) MaxTopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.maxTop()
}

// MaxLeftColumn returns the largest valid left column.
func (v *Viewport) MaxLeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.maxLeft()
}

func (v *Viewport) maxTop() int {
	return max(v.lineCount-v.height, 0)
}

func (v *Viewport) maxLeft() int {
	return max(v.maxWidth-v.width, 0)
}

func (v *Viewport) clamp() {
	v.topLine = min(max(v.topLine, 0), v.maxTop())
	v.leftColumn = min(max(v.leftColumn, 0), v.maxLeft())
}

// IsLineVisible returns true if the line is within the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return line >= v.topLine && line <= v.bottomLine()
}

// ScreenToDocument converts viewport-relative screen coordinates to a
// document line and column. The line may lie past the end of the document.
func (v *Viewport) ScreenToDocument(row, col int) (line, column int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine + row, v.leftColumn + col
}

// DocumentToScreen converts a document position to viewport-relative
// screen coordinates. It returns (-1, -1) when the position is off screen.
func (v *Viewport) DocumentToScreen(line, column int) (row, col int) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if line < v.topLine || line > v.bottomLine() {
		return -1, -1
	}
	if column < v.leftColumn || column >= v.leftColumn+v.width {
		return -1, -1
	}
	return line - v.topLine, column - v.leftColumn
}

// ScrollTo shows the given line at the top, as far as the document allows.
func (v *Viewport) ScrollTo(line int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.topLine = line
	v.clamp()
}

// ScrollBy scrolls by delta lines and returns how many lines the view
// actually moved.
func (v *Viewport) ScrollBy(delta int) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	old := v.topLine
	v.topLine += delta
	v.clamp()
	return v.topLine - old
}

// ScrollHorizontalBy scrolls by delta columns and returns how many columns
// the view actually moved.
func (v *Viewport) ScrollHorizontalBy(delta int) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	old := v.leftColumn
	v.leftColumn += delta
	v.clamp()
	return v.leftColumn - old
}

// CenterOn centers the viewport on the given line.
func (v *Viewport) CenterOn(line int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.topLine = line - v.height/2
	v.clamp()
}

// PageUp scrolls up by one page (viewport height minus overlap).
func (v *Viewport) PageUp() int {
	return v.ScrollBy(-v.pageSize())
}

// PageDown scrolls down by one page (viewport height minus overlap).
func (v *Viewport) PageDown() int {
	return v.ScrollBy(v.pageSize())
}

func (v *Viewport) pageSize() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	// Keep 2 lines of overlap
	return max(v.height-2, 1)
}

// HalfPageUp scrolls up by half a page.
func (v *Viewport) HalfPageUp() int {
	return v.ScrollBy(-max(v.Height()/2, 1))
}

// HalfPageDown scrolls down by half a page.
func (v *Viewport) HalfPageDown() int {
	return v.ScrollBy(max(v.Height()/2, 1))
}

// ScrollToTop scrolls to the top of the document.
func (v *Viewport) ScrollToTop() {
	v.ScrollTo(0)
}

// ScrollToBottom scrolls so the last line is at the bottom of the view.
func (v *Viewport) ScrollToBottom() {
	v.ScrollTo(v.MaxTopLine())
}
