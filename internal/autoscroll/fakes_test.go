package autoscroll

import (
	"fmt"
	"sort"
	"time"
)

type fakeViewport struct {
	id      string
	open    bool
	visible bool

	captured      bool
	refuseCapture bool

	cursor  Cursor
	origin  Point
	offset  Point
	pointer Point

	hScrolls []float64
	vScrolls []float64

	indicatorShown bool
	indicator      Indicator
	indicatorAt    Point

	// onScroll runs after every recorded scroll call.
	onScroll func()
}

func newFakeViewport(id string) *fakeViewport {
	return &fakeViewport{id: id, open: true, visible: true, cursor: CursorText}
}

func (v *fakeViewport) ID() string      { return v.id }
func (v *fakeViewport) IsOpen() bool    { return v.open }
func (v *fakeViewport) IsVisible() bool { return v.visible }

func (v *fakeViewport) TryCaptureInput() bool {
	if v.refuseCapture || v.captured {
		return false
	}
	v.captured = true
	return true
}

func (v *fakeViewport) ReleaseInput()      { v.captured = false }
func (v *fakeViewport) Cursor() Cursor     { return v.cursor }
func (v *fakeViewport) SetCursor(c Cursor) { v.cursor = c }

func (v *fakeViewport) ToAbsolute(local Point) Point      { return local.Add(v.offset) }
func (v *fakeViewport) CurrentLocalPointerPosition() Point { return v.pointer }

func (v *fakeViewport) ScrollHorizontallyByPixels(px float64) {
	v.hScrolls = append(v.hScrolls, px)
	if v.onScroll != nil {
		v.onScroll()
	}
}

func (v *fakeViewport) ScrollVerticallyByPixels(px float64) {
	v.vScrolls = append(v.vScrolls, px)
	if v.onScroll != nil {
		v.onScroll()
	}
}

func (v *fakeViewport) ViewportOrigin() Point { return v.origin }

func (v *fakeViewport) ShowIndicator(ind Indicator, at Point) {
	v.indicatorShown = true
	v.indicator = ind
	v.indicatorAt = at
}

func (v *fakeViewport) HideIndicator() { v.indicatorShown = false }

// manualTimer fires only when told to.
type manualTimer struct {
	next      TimerHandle
	callbacks map[TimerHandle]func()
	periods   map[TimerHandle]time.Duration
	cancelled []TimerHandle
}

func newManualTimer() *manualTimer {
	return &manualTimer{
		callbacks: make(map[TimerHandle]func()),
		periods:   make(map[TimerHandle]time.Duration),
	}
}

func (t *manualTimer) Schedule(period time.Duration, fn func()) TimerHandle {
	t.next++
	t.callbacks[t.next] = fn
	t.periods[t.next] = period
	return t.next
}

func (t *manualTimer) Cancel(h TimerHandle) {
	if _, ok := t.callbacks[h]; !ok {
		return
	}
	delete(t.callbacks, h)
	t.cancelled = append(t.cancelled, h)
}

// Fire runs every live callback once, in scheduling order. A callback
// cancelled by an earlier one in the same round does not run.
func (t *manualTimer) Fire() {
	handles := make([]TimerHandle, 0, len(t.callbacks))
	for h := range t.callbacks {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		if fn, ok := t.callbacks[h]; ok {
			fn()
		}
	}
}

func (t *manualTimer) Live() int { return len(t.callbacks) }

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	viewport *fakeViewport
	timer    *manualTimer
	clock    *fakeClock
	opts     Options
}

func newTestEnv() *testEnv {
	env := &testEnv{
		viewport: newFakeViewport("view-1"),
		timer:    newManualTimer(),
		clock:    newFakeClock(),
	}
	env.opts = DefaultOptions()
	env.opts.Timer = env.timer
	env.opts.Clock = env.clock
	return env
}

// tick advances the clock by ms milliseconds and fires the timer.
func (e *testEnv) tick(ms int) {
	e.clock.Advance(time.Duration(ms) * time.Millisecond)
	e.timer.Fire()
}

// recordingLogger keeps formatted messages.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) record(msg string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.record(msg, args...) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.record(msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.record(msg, args...) }
