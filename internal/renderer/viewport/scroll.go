package viewport

// ScrollState is a snapshot of the scroll position.
type ScrollState struct {
	TopLine    int
	LeftColumn int
}

// GetScrollState returns the current scroll state.
func (v *Viewport) GetScrollState() ScrollState {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return ScrollState{
		TopLine:    v.topLine,
		LeftColumn: v.leftColumn,
	}
}

// SetScrollState restores a scroll state, clamped to the current document.
func (v *Viewport) SetScrollState(state ScrollState) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.topLine = state.TopLine
	v.leftColumn = state.LeftColumn
	v.clamp()
}

// EnsureLineVisible scrolls minimally so line is on screen.
// Returns true if scrolling was needed.
func (v *Viewport) EnsureLineVisible(line int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	old := v.topLine
	switch {
	case line < v.topLine:
		v.topLine = line
	case line >= v.topLine+v.height:
		v.topLine = line - v.height + 1
	}
	v.clamp()
	return v.topLine != old
}

// ScrollPercent returns how far through the document we've scrolled
// (0.0 to 1.0). A document that fits on screen reports 0.
func (v *Viewport) ScrollPercent() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	maxScroll := v.maxTop()
	if maxScroll == 0 {
		return 0.0
	}
	return float64(v.topLine) / float64(maxScroll)
}

// ScrollToPercent scrolls to a fraction of the document.
func (v *Viewport) ScrollToPercent(percent float64) {
	percent = min(max(percent, 0), 1)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.topLine = int(float64(v.maxTop()) * percent)
	v.clamp()
}
