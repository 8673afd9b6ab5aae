package app

import (
	"sync"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	snapshot := NewMetrics().Snapshot()
	if snapshot.EventCount != 0 || snapshot.AvgEventNs != 0 {
		t.Errorf("expected empty snapshot, got %+v", snapshot)
	}
	if snapshot.TickLossRate() != 0 {
		t.Errorf("expected 0 loss rate, got %f", snapshot.TickLossRate())
	}
}

func TestMetrics_RecordEvent(t *testing.T) {
	m := NewMetrics()

	m.RecordEvent(10 * time.Millisecond)
	m.RecordEvent(30 * time.Millisecond)
	m.RecordEvent(20 * time.Millisecond)

	snapshot := m.Snapshot()
	if snapshot.EventCount != 3 {
		t.Errorf("expected 3 events, got %d", snapshot.EventCount)
	}
	if snapshot.AvgEventNs != int64(20*time.Millisecond) {
		t.Errorf("expected avg 20ms, got %d ns", snapshot.AvgEventNs)
	}
	if snapshot.MaxEventNs != int64(30*time.Millisecond) {
		t.Errorf("expected max 30ms, got %d ns", snapshot.MaxEventNs)
	}
}

func TestMetrics_RecordRender(t *testing.T) {
	m := NewMetrics()

	m.RecordRender(2 * time.Millisecond)
	m.RecordRender(4 * time.Millisecond)

	snapshot := m.Snapshot()
	if snapshot.RenderCount != 2 {
		t.Errorf("expected 2 renders, got %d", snapshot.RenderCount)
	}
	if snapshot.AvgRenderNs != int64(3*time.Millisecond) {
		t.Errorf("expected avg 3ms, got %d ns", snapshot.AvgRenderNs)
	}
}

func TestMetrics_Ticks(t *testing.T) {
	m := NewMetrics()

	for range 3 {
		m.RecordTick()
	}
	m.RecordTickLost()
	m.RecordSession()

	snapshot := m.Snapshot()
	if snapshot.TickCount != 3 || snapshot.TicksLost != 1 {
		t.Errorf("unexpected tick counts %+v", snapshot)
	}
	if snapshot.Sessions != 1 {
		t.Errorf("expected 1 session, got %d", snapshot.Sessions)
	}
	if rate := snapshot.TickLossRate(); rate != 25 {
		t.Errorf("expected 25%% loss, got %f", rate)
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 100 {
				m.RecordEvent(time.Duration(i) * time.Microsecond)
				m.RecordTickLost()
			}
		}(i)
	}
	wg.Wait()

	snapshot := m.Snapshot()
	if snapshot.EventCount != 1000 || snapshot.TicksLost != 1000 {
		t.Errorf("lost updates: %+v", snapshot)
	}
	if snapshot.MaxEventNs != int64(9*time.Microsecond) {
		t.Errorf("expected max 9µs, got %d ns", snapshot.MaxEventNs)
	}
}

func TestMetrics_Uptime(t *testing.T) {
	m := NewMetrics()
	time.Sleep(time.Millisecond)
	if m.Snapshot().Uptime <= 0 {
		t.Error("expected positive uptime")
	}
}
