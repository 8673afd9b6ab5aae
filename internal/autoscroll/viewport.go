package autoscroll

import "time"

// Point is a position in pixels. Local points are relative to the viewport
// surface; absolute points are in screen space.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Indicator describes the marker drawn at the anchor during a session.
type Indicator struct {
	// Cursor is the shape to draw.
	Cursor Cursor

	// Opacity is in [0, 1].
	Opacity float64
}

// DefaultIndicator is a half-transparent omni-directional marker.
func DefaultIndicator() Indicator {
	return Indicator{Cursor: CursorScrollAll, Opacity: 0.5}
}

// Viewport is the scrollable surface a session drives. The session holds a
// reference only; it owns none of the viewport's state.
type Viewport interface {
	// ID returns a stable identity for the viewport.
	ID() string

	// IsOpen reports whether the viewport still exists.
	IsOpen() bool
	// IsVisible reports whether the viewport is on screen.
	IsVisible() bool

	// TryCaptureInput grabs exclusive pointer input. It fails when another
	// owner already holds the capture.
	TryCaptureInput() bool
	// ReleaseInput gives up a capture taken by TryCaptureInput.
	ReleaseInput()

	// Cursor returns the current pointer shape.
	Cursor() Cursor
	// SetCursor changes the pointer shape.
	SetCursor(c Cursor)

	// ToAbsolute converts a local point to screen space.
	ToAbsolute(local Point) Point

	// CurrentLocalPointerPosition returns the pointer relative to the surface.
	CurrentLocalPointerPosition() Point

	// ScrollHorizontallyByPixels moves the view right for positive values.
	ScrollHorizontallyByPixels(pixels float64)

	// ScrollVerticallyByPixels moves the content down (the view up the
	// document) for positive values.
	ScrollVerticallyByPixels(pixels float64)

	// ViewportOrigin is the content-space position of the surface's top-left.
	ViewportOrigin() Point

	// ShowIndicator places ind centered on a content-space point. The
	// indicator stays fixed relative to the surface while the content scrolls.
	ShowIndicator(ind Indicator, centeredAt Point)
	// HideIndicator removes the indicator.
	HideIndicator()
}

// TimerHandle identifies a scheduled periodic callback. Zero means none.
type TimerHandle uint64

// Timer runs periodic callbacks on the viewport's goroutine.
type Timer interface {
	// Schedule calls fn every period until the handle is cancelled.
	Schedule(period time.Duration, fn func()) TimerHandle

	// Cancel stops the callback. No call to fn may start after Cancel
	// returns. Cancelling an unknown or zero handle is a no-op.
	Cancel(h TimerHandle)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
