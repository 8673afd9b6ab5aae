package autoscroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/autoscroll/internal/event"
	"github.com/dshills/autoscroll/internal/input/mouse"
)

func publish(t *testing.T, bus *event.Bus, topic event.Topic, payload any) {
	t.Helper()
	require.NoError(t, bus.Publish(context.Background(), event.New(topic, payload, "test")))
}

func TestRegistryOpenClose(t *testing.T) {
	env := newTestEnv()
	bus := event.NewBus()
	r := NewRegistry(bus, env.opts)

	p, err := r.Open(env.viewport)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, bus.Len())

	got, ok := r.Processor("view-1")
	require.True(t, ok)
	assert.Same(t, p, got)

	_, err = r.Open(env.viewport)
	assert.ErrorIs(t, err, ErrViewportOpen)

	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(0, 0)))
	require.NoError(t, r.Close("view-1"))
	assert.False(t, p.Factory().HasActiveSession())
	assert.Zero(t, r.Len())
	assert.Zero(t, bus.Len(), "subscriptions released")

	assert.ErrorIs(t, r.Close("view-1"), ErrViewportNotFound)
	_, ok = r.Processor("view-1")
	assert.False(t, ok)
}

func TestRegistryOpenNil(t *testing.T) {
	r := NewRegistry(nil, newTestEnv().opts)
	_, err := r.Open(nil)
	assert.ErrorIs(t, err, ErrNilViewport)
}

func TestRegistryVisibilityEvent(t *testing.T) {
	env := newTestEnv()
	bus := event.NewBus()
	r := NewRegistry(bus, env.opts)
	other := newFakeViewport("view-2")

	p, err := r.Open(env.viewport)
	require.NoError(t, err)
	p2, err := r.Open(other)
	require.NoError(t, err)

	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(0, 0)))
	require.True(t, p2.ButtonDown(mouse.ButtonMiddle, Pt(0, 0)))

	publish(t, bus, event.TopicViewportVisibility, event.VisibilityChanged{ViewportID: "view-1", Visible: true})
	assert.True(t, p.Factory().HasActiveSession())

	publish(t, bus, event.TopicViewportVisibility, event.VisibilityChanged{ViewportID: "view-1", Visible: false})
	assert.False(t, p.Factory().HasActiveSession())
	assert.True(t, p2.Factory().HasActiveSession(), "other viewports unaffected")
}

func TestRegistryClosedEvent(t *testing.T) {
	env := newTestEnv()
	bus := event.NewBus()
	r := NewRegistry(bus, env.opts)

	p, err := r.Open(env.viewport)
	require.NoError(t, err)
	require.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(0, 0)))

	publish(t, bus, event.TopicViewportClosed, event.Closed{ViewportID: "view-1"})
	assert.False(t, p.Factory().HasActiveSession())
	assert.Zero(t, r.Len())
	assert.Zero(t, bus.Len())

	// A second notification finds nobody listening.
	publish(t, bus, event.TopicViewportClosed, event.Closed{ViewportID: "view-1"})
	assert.ErrorIs(t, r.Close("view-1"), ErrViewportNotFound)
}

func TestRegistryReopenAfterClose(t *testing.T) {
	env := newTestEnv()
	bus := event.NewBus()
	r := NewRegistry(bus, env.opts)

	_, err := r.Open(env.viewport)
	require.NoError(t, err)
	require.NoError(t, r.Close("view-1"))

	p, err := r.Open(env.viewport)
	require.NoError(t, err)
	assert.True(t, p.ButtonDown(mouse.ButtonMiddle, Pt(0, 0)))
	assert.Equal(t, 2, bus.Len())
}

func TestRegistryCloseAll(t *testing.T) {
	env := newTestEnv()
	bus := event.NewBus()
	r := NewRegistry(bus, env.opts)
	for _, id := range []string{"a", "b", "c"} {
		_, err := r.Open(newFakeViewport(id))
		require.NoError(t, err)
	}
	require.Equal(t, 6, bus.Len())

	r.CloseAll()
	assert.Zero(t, r.Len())
	assert.Zero(t, bus.Len())
}

func TestRegistryWithoutBus(t *testing.T) {
	env := newTestEnv()
	r := NewRegistry(nil, env.opts)

	_, err := r.Open(env.viewport)
	require.NoError(t, err)
	require.NoError(t, r.Close("view-1"))
}

func TestRegistrySetOptions(t *testing.T) {
	env := newTestEnv()
	r := NewRegistry(nil, env.opts)
	p, err := r.Open(env.viewport)
	require.NoError(t, err)

	opts := env.opts
	opts.TriggerButton = mouse.ButtonRight
	r.SetOptions(opts)
	assert.Equal(t, mouse.ButtonRight, p.Factory().Options().TriggerButton)

	p2, err := r.Open(newFakeViewport("later"))
	require.NoError(t, err)
	assert.Equal(t, mouse.ButtonRight, p2.Factory().Options().TriggerButton)
}
