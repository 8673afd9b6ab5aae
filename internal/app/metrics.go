package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event loop timing.
type Metrics struct {
	// Event processing
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	eventMaxNs   atomic.Int64

	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	// Autoscroll ticks delivered, and ticks dropped because the queue was full
	tickCount   atomic.Uint64
	ticksLost   atomic.Uint64
	sessionsRun atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordEvent records event processing timing.
func (m *Metrics) RecordEvent(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.eventCount.Add(1)
	m.eventTotalNs.Add(ns)

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.eventMaxNs.Load()
		if ns <= old {
			break
		}
		if m.eventMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordTick records a delivered autoscroll tick.
func (m *Metrics) RecordTick() {
	m.tickCount.Add(1)
}

// RecordTickLost records a tick that could not be queued.
func (m *Metrics) RecordTickLost() {
	m.ticksLost.Add(1)
}

// RecordSession records a started autoscroll session.
func (m *Metrics) RecordSession() {
	m.sessionsRun.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	eventCount := m.eventCount.Load()
	renderCount := m.renderCount.Load()

	var avgEventNs int64
	if eventCount > 0 {
		avgEventNs = m.eventTotalNs.Load() / int64(eventCount)
	}

	var avgRenderNs int64
	if renderCount > 0 {
		avgRenderNs = m.renderTotalNs.Load() / int64(renderCount)
	}

	return MetricsSnapshot{
		Uptime:      time.Since(m.startTime),
		EventCount:  eventCount,
		AvgEventNs:  avgEventNs,
		MaxEventNs:  m.eventMaxNs.Load(),
		RenderCount: renderCount,
		AvgRenderNs: avgRenderNs,
		TickCount:   m.tickCount.Load(),
		TicksLost:   m.ticksLost.Load(),
		Sessions:    m.sessionsRun.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime      time.Duration
	EventCount  uint64
	AvgEventNs  int64
	MaxEventNs  int64
	RenderCount uint64
	AvgRenderNs int64
	TickCount   uint64
	TicksLost   uint64
	Sessions    uint64
}

// TickLossRate returns the percentage of ticks that were dropped.
func (s MetricsSnapshot) TickLossRate() float64 {
	total := s.TickCount + s.TicksLost
	if total == 0 {
		return 0
	}
	return float64(s.TicksLost) / float64(total) * 100
}
