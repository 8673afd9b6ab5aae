package textview

import "github.com/dshills/autoscroll/internal/autoscroll"

var _ autoscroll.Viewport = (*TextView)(nil)

// ID returns the view identifier.
func (t *TextView) ID() string { return t.id }

// IsOpen reports whether the view has not been closed.
func (t *TextView) IsOpen() bool { return t.open }

// IsVisible reports whether the view is shown on screen.
func (t *TextView) IsVisible() bool { return t.visible }

// TryCaptureInput grabs the pointer for the caller. Only one owner may hold
// it at a time.
func (t *TextView) TryCaptureInput() bool {
	if t.captured || !t.open {
		return false
	}
	t.captured = true
	return true
}

// ReleaseInput gives the pointer capture back.
func (t *TextView) ReleaseInput() {
	t.captured = false
}

// Captured reports whether the pointer is captured.
func (t *TextView) Captured() bool {
	return t.captured
}

// Cursor returns the pointer shape requested for the view.
func (t *TextView) Cursor() autoscroll.Cursor {
	return t.cursor
}

// SetCursor changes the pointer shape and schedules a redraw.
func (t *TextView) SetCursor(c autoscroll.Cursor) {
	if c != t.cursor {
		t.cursor = c
		t.needsRedraw = true
	}
}

// ToAbsolute converts a point local to the text region to screen cells.
func (t *TextView) ToAbsolute(local autoscroll.Point) autoscroll.Point {
	return local.Add(autoscroll.Pt(float64(t.text.Left), float64(t.text.Top)))
}

// CurrentLocalPointerPosition returns the last pointer position relative to
// the text region.
func (t *TextView) CurrentLocalPointerPosition() autoscroll.Point {
	return t.pointer.Sub(autoscroll.Pt(float64(t.text.Left), float64(t.text.Top)))
}

// ScrollHorizontallyByPixels scrolls by whole columns; fractions are dropped.
func (t *TextView) ScrollHorizontallyByPixels(pixels float64) {
	if t.view.ScrollHorizontalBy(int(pixels)) != 0 {
		t.needsRedraw = true
	}
}

// ScrollVerticallyByPixels moves the content down by whole lines for
// positive values, which brings earlier lines into view.
func (t *TextView) ScrollVerticallyByPixels(pixels float64) {
	if t.view.ScrollBy(-int(pixels)) != 0 {
		t.needsRedraw = true
	}
}

// ViewportOrigin is the document position (column, line) shown at the
// top-left of the text region.
func (t *TextView) ViewportOrigin() autoscroll.Point {
	return autoscroll.Pt(float64(t.view.LeftColumn()), float64(t.view.TopLine()))
}

// ShowIndicator pins ind to the text region at the cell that currently
// shows the document point centeredAt.
func (t *TextView) ShowIndicator(ind autoscroll.Indicator, centeredAt autoscroll.Point) {
	t.indicator = &placedIndicator{
		ind:   ind,
		local: centeredAt.Sub(t.ViewportOrigin()),
	}
	t.needsRedraw = true
}

// HideIndicator removes the indicator, if shown.
func (t *TextView) HideIndicator() {
	if t.indicator != nil {
		t.indicator = nil
		t.needsRedraw = true
	}
}

// IndicatorAt returns the screen cell of the indicator, if one is shown.
func (t *TextView) IndicatorAt() (x, y int, ok bool) {
	if t.indicator == nil {
		return 0, 0, false
	}
	return t.text.Left + int(t.indicator.local.X), t.text.Top + int(t.indicator.local.Y), true
}
