package autoscroll

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/autoscroll/internal/tracing"
)

type sessionState uint8

const (
	stateIdle sessionState = iota
	stateActive
	stateTerminated
)

// String returns a string representation of the state.
func (s sessionState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateActive:
		return "active"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session is one drag-to-pan gesture bound to a viewport.
//
// A Session is started at most once. Abort ends it for good; a new gesture
// needs a new Session (SessionFactory takes care of that).
type Session struct {
	opts Options
	id   string

	state    sessionState
	viewport Viewport

	anchor    Point
	startTime time.Time
	lastTick  time.Time

	horizontal Accumulator
	vertical   Accumulator

	hasScrolled      bool
	preSessionCursor Cursor
	timerHandle      TimerHandle
	ticks            int

	span *tracing.Span
}

// NewSession creates an idle session.
func NewSession(opts Options) *Session {
	return &Session{
		opts: opts.normalized(),
		id:   uuid.NewString(),
	}
}

// ID returns the session identifier used in logs and traces.
func (s *Session) ID() string { return s.id }

// Options returns the options the session was created with.
func (s *Session) Options() Options { return s.opts }

// Active reports whether the session is in progress.
func (s *Session) Active() bool { return s.state == stateActive }

// HasScrolled reports whether the session ever scrolled the viewport.
// Once true it stays true.
func (s *Session) HasScrolled() bool { return s.hasScrolled }

// Anchor returns the absolute anchor point.
func (s *Session) Anchor() Point { return s.anchor }

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() int { return s.ticks }

// Remainders returns the carried fractional pixels per axis.
func (s *Session) Remainders() (horizontal, vertical float64) {
	return s.horizontal.Remainder(), s.vertical.Remainder()
}

// Start begins the gesture with the anchor at a local point of v.
// It returns false, leaving everything untouched, when the session was
// already used, no timer is configured, the viewport is closed or hidden,
// or the input capture is held elsewhere.
func (s *Session) Start(v Viewport, anchorLocal Point) bool {
	if s.state != stateIdle || v == nil {
		return false
	}
	log := s.opts.Logger
	if s.opts.Timer == nil {
		log.Warn("no timer configured, session %s not started", s.id)
		return false
	}
	if !canScroll(v) {
		log.Debug("viewport %s not scrollable", v.ID())
		return false
	}
	if !v.TryCaptureInput() {
		log.Debug("input capture refused for viewport %s", v.ID())
		return false
	}

	s.viewport = v
	s.anchor = v.ToAbsolute(anchorLocal)
	s.preSessionCursor = v.Cursor()
	v.SetCursor(CursorScrollAll)
	if s.opts.ShowIndicator {
		v.ShowIndicator(s.opts.Indicator, v.ViewportOrigin().Add(anchorLocal))
	}

	now := s.opts.Clock.Now()
	s.startTime = now
	s.lastTick = now
	s.hasScrolled = false
	s.horizontal.Reset()
	s.vertical.Reset()
	s.state = stateActive
	s.timerHandle = s.opts.Timer.Schedule(s.opts.TickPeriod, s.tick)

	_, s.span = tracing.StartSpan(context.Background(), "autoscroll.session")
	s.span.SetString("session.id", s.id)
	s.span.SetString("viewport.id", v.ID())

	log.Debug("session %s started on %s at (%.0f, %.0f)", s.id, v.ID(), s.anchor.X, s.anchor.Y)
	return true
}

// Abort ends the session: it restores the cursor, releases the capture,
// cancels the timer and removes the indicator. Calling it on a session that
// is not active does nothing. It is safe to call from inside a tick.
func (s *Session) Abort() {
	if s.state != stateActive {
		return
	}
	s.state = stateTerminated

	v := s.viewport
	v.SetCursor(s.preSessionCursor)
	v.ReleaseInput()
	s.opts.Timer.Cancel(s.timerHandle)
	s.timerHandle = 0
	if s.opts.ShowIndicator {
		v.HideIndicator()
	}

	s.span.SetBool("session.scrolled", s.hasScrolled)
	s.span.SetInt("session.ticks", s.ticks)
	s.span.SetInt64("session.duration_ms", s.lastTick.Sub(s.startTime).Milliseconds())
	tracing.EndSpan(s.span, nil)
	s.span = nil

	s.opts.Logger.Debug("session %s ended after %d ticks (scrolled=%t)", s.id, s.ticks, s.hasScrolled)
}

// tick samples the pointer and scrolls. Called by the Timer.
func (s *Session) tick() {
	if s.state != stateActive {
		return
	}
	v := s.viewport
	if !canScroll(v) {
		s.Abort()
		return
	}

	now := s.opts.Clock.Now()
	elapsedMs := float64(now.Sub(s.lastTick)) / float64(time.Millisecond)

	// Absolute coordinates keep the view's own scrolling out of the delta.
	delta := v.ToAbsolute(v.CurrentLocalPointerPosition()).Sub(s.anchor)

	vel := s.opts.Velocity
	h := s.horizontal.Apply(vel.PixelsToScroll(delta.X, elapsedMs))
	vert := s.vertical.Apply(vel.PixelsToScroll(delta.Y, elapsedMs))

	if (h != 0 || vert != 0) && vel.Outside(math.Max(math.Abs(delta.X), math.Abs(delta.Y))) {
		s.hasScrolled = true
	}

	// Scrolling runs viewport code that may tear the session down.
	if h != 0 {
		v.ScrollHorizontallyByPixels(float64(h))
		if s.state != stateActive {
			return
		}
	}
	if vert != 0 {
		v.ScrollVerticallyByPixels(-float64(vert))
		if s.state != stateActive {
			return
		}
	}
	v.SetCursor(SelectCursor(float64(h), float64(vert)))

	s.lastTick = now
	s.ticks++
}

func canScroll(v Viewport) bool {
	return v.IsOpen() && v.IsVisible()
}
