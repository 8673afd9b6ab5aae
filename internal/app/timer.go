package app

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/autoscroll/internal/autoscroll"
)

// tickMsg is the interrupt payload that carries a timer tick to the loop.
type tickMsg struct {
	handle autoscroll.TimerHandle
}

// LoopTimer implements autoscroll.Timer on top of the event loop: each
// schedule runs a ticker goroutine that posts tickMsg interrupts, and the
// loop runs the callback when it dispatches the interrupt. Callbacks
// therefore always run on the loop goroutine.
//
// At most one tick per handle is queued at a time, so a slow loop sees
// fewer ticks rather than a backlog.
type LoopTimer struct {
	post   func(data any) error
	onLost func()

	mu      sync.Mutex
	next    autoscroll.TimerHandle
	entries map[autoscroll.TimerHandle]*timerEntry
}

type timerEntry struct {
	fn      func()
	stop    chan struct{}
	pending atomic.Bool
}

// NewLoopTimer creates a timer that posts ticks with post, normally the
// backend's PostInterrupt.
func NewLoopTimer(post func(data any) error) *LoopTimer {
	return &LoopTimer{
		post:    post,
		entries: make(map[autoscroll.TimerHandle]*timerEntry),
	}
}

// OnLost registers fn to run, on the ticker goroutine, when a tick cannot
// be posted.
func (t *LoopTimer) OnLost(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onLost = fn
}

// Schedule implements autoscroll.Timer.
func (t *LoopTimer) Schedule(period time.Duration, fn func()) autoscroll.TimerHandle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	h := t.next
	e := &timerEntry{fn: fn, stop: make(chan struct{})}
	t.entries[h] = e

	go t.run(h, e, period, t.onLost)
	return h
}

func (t *LoopTimer) run(h autoscroll.TimerHandle, e *timerEntry, period time.Duration, onLost func()) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			if !e.pending.CompareAndSwap(false, true) {
				continue
			}
			if err := t.post(tickMsg{handle: h}); err != nil {
				e.pending.Store(false)
				if onLost != nil {
					onLost()
				}
			}
		}
	}
}

// Cancel implements autoscroll.Timer. Ticks already queued for h are
// dropped by Dispatch.
func (t *LoopTimer) Cancel(h autoscroll.TimerHandle) {
	t.mu.Lock()
	e, ok := t.entries[h]
	delete(t.entries, h)
	t.mu.Unlock()

	if ok {
		close(e.stop)
	}
}

// Dispatch runs the callback for a tick posted by this timer. It reports
// whether data was a tick at all; ticks for cancelled handles are consumed
// and ignored.
func (t *LoopTimer) Dispatch(data any) bool {
	msg, ok := data.(tickMsg)
	if !ok {
		return false
	}

	t.mu.Lock()
	e, live := t.entries[msg.handle]
	t.mu.Unlock()

	if live {
		e.pending.Store(false)
		e.fn()
	}
	return true
}

// Active returns the number of live schedules.
func (t *LoopTimer) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// CancelAll stops every schedule.
func (t *LoopTimer) CancelAll() {
	t.mu.Lock()
	entries := t.entries
	t.entries = make(map[autoscroll.TimerHandle]*timerEntry)
	t.mu.Unlock()

	for _, e := range entries {
		close(e.stop)
	}
}
