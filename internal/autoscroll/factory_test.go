package autoscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryTryStartStopsPrevious(t *testing.T) {
	env := newTestEnv()
	f := NewSessionFactory(env.opts)
	v := env.viewport

	require.True(t, f.TryStart(v, Pt(0, 0)))
	first := f.Session()
	v.pointer = Pt(60, 0)
	env.tick(25)
	require.Equal(t, CursorScrollE, v.cursor)

	// The viewport refuses a second capture, so the new session can only
	// start if the first one was torn down and restored the cursor.
	require.True(t, f.TryStart(v, Pt(5, 5)))
	assert.False(t, first.Active())
	assert.NotSame(t, first, f.Session())
	assert.Equal(t, CursorScrollAll, v.cursor)
	assert.Equal(t, 1, env.timer.Live())

	f.Stop()
	assert.Equal(t, CursorText, v.cursor)
}

func TestFactoryRestartAfterAbort(t *testing.T) {
	env := newTestEnv()
	f := NewSessionFactory(env.opts)

	require.True(t, f.TryStart(env.viewport, Pt(0, 0)))
	f.Stop()
	assert.False(t, f.HasActiveSession())
	assert.Nil(t, f.Session())

	require.True(t, f.TryStart(env.viewport, Pt(0, 0)))
	assert.True(t, f.HasActiveSession())
}

func TestFactoryFailedStartLeavesNoSession(t *testing.T) {
	env := newTestEnv()
	env.viewport.refuseCapture = true
	f := NewSessionFactory(env.opts)

	assert.False(t, f.TryStart(env.viewport, Pt(0, 0)))
	assert.False(t, f.HasActiveSession())
	assert.Nil(t, f.Session())
}

func TestFactoryStopIsIdempotent(t *testing.T) {
	env := newTestEnv()
	f := NewSessionFactory(env.opts)
	f.Stop()

	require.True(t, f.TryStart(env.viewport, Pt(0, 0)))
	f.Stop()
	f.Stop()
	assert.Len(t, env.timer.cancelled, 1)
}

func TestFactoryHasSessionScrolled(t *testing.T) {
	env := newTestEnv()
	f := NewSessionFactory(env.opts)
	assert.False(t, f.HasSessionScrolled())

	require.True(t, f.TryStart(env.viewport, Pt(0, 0)))
	assert.False(t, f.HasSessionScrolled())

	env.viewport.pointer = Pt(0, 50)
	env.tick(25)
	assert.True(t, f.HasSessionScrolled())

	f.Stop()
	assert.False(t, f.HasSessionScrolled())
}

func TestFactorySelfTerminatedSessionIsInactive(t *testing.T) {
	env := newTestEnv()
	f := NewSessionFactory(env.opts)
	require.True(t, f.TryStart(env.viewport, Pt(0, 0)))

	env.viewport.open = false
	env.tick(25)
	assert.False(t, f.HasActiveSession())
}

func TestFactorySetOptions(t *testing.T) {
	env := newTestEnv()
	f := NewSessionFactory(env.opts)

	opts := env.opts
	opts.TickPeriod = 0
	opts.TriggerButton = 0
	f.SetOptions(opts)
	assert.Equal(t, DefaultTickPeriod, f.Options().TickPeriod, "zero values normalized")
	assert.Equal(t, DefaultOptions().TriggerButton, f.Options().TriggerButton)
}
