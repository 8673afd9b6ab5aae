package autoscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/autoscroll/internal/input/mouse"
)

func newTestProcessor(env *testEnv) *Processor {
	return NewProcessor(env.viewport, NewSessionFactory(env.opts))
}

func mouseEvent(b mouse.Button, a mouse.Action, x, y int) mouse.Event {
	return mouse.Event{Position: mouse.Position{X: x, Y: y}, Button: b, Action: a}
}

func TestProcessorTriggerStarts(t *testing.T) {
	env := newTestEnv()
	p := newTestProcessor(env)

	assert.True(t, p.ProcessMouse(mouseEvent(mouse.ButtonMiddle, mouse.ActionPress, 40, 12)))
	assert.True(t, p.Factory().HasActiveSession())
	assert.Equal(t, Pt(40, 12), p.Factory().Session().Anchor())
}

func TestProcessorOtherButtonsPass(t *testing.T) {
	env := newTestEnv()
	p := newTestProcessor(env)

	assert.False(t, p.ProcessMouse(mouseEvent(mouse.ButtonLeft, mouse.ActionPress, 1, 1)))
	assert.False(t, p.ProcessMouse(mouseEvent(mouse.ButtonScrollDown, mouse.ActionPress, 1, 1)))
	assert.False(t, p.ProcessMouse(mouseEvent(mouse.ButtonNone, mouse.ActionMove, 1, 1)))
	assert.False(t, p.Factory().HasActiveSession())
}

func TestProcessorCaptureFailureUnhandled(t *testing.T) {
	env := newTestEnv()
	env.viewport.refuseCapture = true
	p := newTestProcessor(env)

	assert.False(t, p.ProcessMouse(mouseEvent(mouse.ButtonMiddle, mouse.ActionPress, 1, 1)))
}

func TestProcessorStationaryClickStaysArmed(t *testing.T) {
	env := newTestEnv()
	p := newTestProcessor(env)

	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(10, 10)))
	env.viewport.pointer = Pt(10, 10)
	env.tick(25)

	assert.False(t, p.ButtonUp(mouse.ButtonMiddle))
	assert.True(t, p.Factory().HasActiveSession(), "released without scrolling")

	// Moving the pointer keeps scrolling and is consumed.
	env.viewport.pointer = Pt(10, 60)
	assert.True(t, p.ProcessMouse(mouseEvent(mouse.ButtonNone, mouse.ActionMove, 10, 60)))
	env.tick(25)
	assert.NotEmpty(t, env.viewport.vScrolls)

	// The next press of any button ends it.
	assert.True(t, p.ButtonDown(mouse.ButtonLeft, Pt(10, 60)))
	assert.False(t, p.Factory().HasActiveSession())
	assert.Equal(t, CursorText, env.viewport.cursor)
}

func TestProcessorDragReleaseEnds(t *testing.T) {
	env := newTestEnv()
	p := newTestProcessor(env)

	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(10, 10)))
	env.viewport.pointer = Pt(10, 50)
	assert.True(t, p.ProcessMouse(mouseEvent(mouse.ButtonMiddle, mouse.ActionDrag, 10, 50)))
	env.tick(25)
	require.True(t, p.Factory().HasSessionScrolled())

	assert.False(t, p.ButtonUp(mouse.ButtonLeft), "only the trigger release counts")
	assert.True(t, p.Factory().HasActiveSession())

	assert.True(t, p.ProcessMouse(mouseEvent(mouse.ButtonMiddle, mouse.ActionRelease, 10, 50)))
	assert.False(t, p.Factory().HasActiveSession())
	assert.False(t, env.viewport.captured)
}

func TestProcessorTriggerPressWhileActiveStops(t *testing.T) {
	env := newTestEnv()
	p := newTestProcessor(env)

	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(10, 10)))
	assert.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(30, 30)))
	assert.False(t, p.Factory().HasActiveSession(), "second press cancels instead of restarting")
}

func TestProcessorCustomTrigger(t *testing.T) {
	env := newTestEnv()
	env.opts.TriggerButton = mouse.ButtonRight
	p := newTestProcessor(env)

	assert.False(t, p.ButtonDown(mouse.ButtonMiddle, Pt(0, 0)))
	assert.True(t, p.ButtonDown(mouse.ButtonRight, Pt(0, 0)))
}

func TestProcessorReleaseUsesRunningTrigger(t *testing.T) {
	env := newTestEnv()
	p := newTestProcessor(env)

	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(10, 10)))
	env.viewport.pointer = Pt(10, 50)
	env.tick(25)
	require.True(t, p.Factory().HasSessionScrolled())

	// A config reload changes the trigger for later sessions only.
	opts := env.opts
	opts.TriggerButton = mouse.ButtonRight
	p.Factory().SetOptions(opts)

	assert.False(t, p.ButtonUp(mouse.ButtonRight))
	assert.True(t, p.Factory().HasActiveSession())

	assert.True(t, p.ButtonUp(mouse.ButtonMiddle))
	assert.False(t, p.Factory().HasActiveSession())
	assert.False(t, env.viewport.captured)
}

func TestProcessorVisibilityAndClose(t *testing.T) {
	env := newTestEnv()
	p := newTestProcessor(env)

	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(0, 0)))
	p.VisibilityChanged(true)
	assert.True(t, p.Factory().HasActiveSession())

	p.VisibilityChanged(false)
	assert.False(t, p.Factory().HasActiveSession())
	assert.False(t, env.viewport.captured)

	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(0, 0)))
	p.Closed()
	assert.False(t, p.Factory().HasActiveSession())
	p.Closed()
}

func TestProcessorInChain(t *testing.T) {
	env := newTestEnv()
	p := newTestProcessor(env)
	fallbackCalls := 0
	chain := mouse.NewChain(p, processorFunc(func(mouse.Event) bool {
		fallbackCalls++
		return true
	}))

	by, ok := chain.Process(mouseEvent(mouse.ButtonMiddle, mouse.ActionPress, 3, 3))
	require.True(t, ok)
	assert.Equal(t, "autoscroll", by)
	assert.Zero(t, fallbackCalls)

	// Stationary release is not consumed by the gesture.
	by, _ = chain.Process(mouseEvent(mouse.ButtonMiddle, mouse.ActionRelease, 3, 3))
	assert.Equal(t, "fallback", by)
	assert.Equal(t, 1, fallbackCalls)
}

type processorFunc func(mouse.Event) bool

func (processorFunc) Name() string                      { return "fallback" }
func (f processorFunc) ProcessMouse(e mouse.Event) bool { return f(e) }
