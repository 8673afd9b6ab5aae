package app

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanPoster stands in for the backend's interrupt queue.
type chanPoster struct {
	ch   chan any
	fail atomic.Bool
}

func newChanPoster(size int) *chanPoster {
	return &chanPoster{ch: make(chan any, size)}
}

func (p *chanPoster) post(data any) error {
	if p.fail.Load() {
		return errors.New("queue full")
	}
	select {
	case p.ch <- data:
		return nil
	default:
		return errors.New("queue full")
	}
}

func (p *chanPoster) next(t *testing.T) any {
	t.Helper()
	select {
	case data := <-p.ch:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("no tick posted")
		return nil
	}
}

func TestLoopTimerPostsAndDispatches(t *testing.T) {
	p := newChanPoster(8)
	timer := NewLoopTimer(p.post)
	defer timer.CancelAll()

	calls := 0
	h := timer.Schedule(time.Millisecond, func() { calls++ })
	assert.Equal(t, 1, timer.Active())

	data := p.next(t)
	msg, ok := data.(tickMsg)
	require.True(t, ok)
	assert.Equal(t, h, msg.handle)

	assert.True(t, timer.Dispatch(data))
	assert.Equal(t, 1, calls)
}

func TestLoopTimerCoalescesTicks(t *testing.T) {
	p := newChanPoster(8)
	timer := NewLoopTimer(p.post)
	defer timer.CancelAll()

	timer.Schedule(time.Millisecond, func() {})
	first := p.next(t)

	// Nothing else is queued until the pending tick is dispatched.
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, p.ch)

	timer.Dispatch(first)
	p.next(t)
}

func TestLoopTimerCancelDropsQueuedTick(t *testing.T) {
	p := newChanPoster(8)
	timer := NewLoopTimer(p.post)

	calls := 0
	h := timer.Schedule(time.Millisecond, func() { calls++ })
	data := p.next(t)

	timer.Cancel(h)
	timer.Cancel(h)

	assert.True(t, timer.Dispatch(data), "a stale tick is still consumed")
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, timer.Active())
}

func TestLoopTimerDispatchIgnoresOtherData(t *testing.T) {
	timer := NewLoopTimer(newChanPoster(1).post)
	assert.False(t, timer.Dispatch("not a tick"))
	assert.False(t, timer.Dispatch(nil))
}

func TestLoopTimerReportsLostTicks(t *testing.T) {
	p := newChanPoster(1)
	p.fail.Store(true)

	lost := make(chan struct{}, 16)
	timer := NewLoopTimer(p.post)
	timer.OnLost(func() {
		select {
		case lost <- struct{}{}:
		default:
		}
	})
	defer timer.CancelAll()

	timer.Schedule(time.Millisecond, func() {})

	select {
	case <-lost:
	case <-time.After(2 * time.Second):
		t.Fatal("lost tick not reported")
	}

	// A failed post does not leave the handle stuck as pending.
	p.fail.Store(false)
	p.next(t)
}

func TestLoopTimerIndependentHandles(t *testing.T) {
	p := newChanPoster(8)
	timer := NewLoopTimer(p.post)
	defer timer.CancelAll()

	h1 := timer.Schedule(time.Hour, func() {})
	h2 := timer.Schedule(time.Hour, func() {})
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, timer.Active())

	timer.Cancel(h1)
	assert.Equal(t, 1, timer.Active())

	timer.CancelAll()
	assert.Equal(t, 0, timer.Active())
}
