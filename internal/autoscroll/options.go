package autoscroll

import (
	"time"

	"github.com/dshills/autoscroll/internal/input/mouse"
)

// DefaultTickPeriod is how often an active session samples the pointer.
const DefaultTickPeriod = 25 * time.Millisecond

// Logger is the subset of the application logger used here.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}

// Options configures sessions, factories and processors.
type Options struct {
	// TriggerButton starts a session when pressed.
	TriggerButton mouse.Button

	// TickPeriod is the sampling period of an active session.
	TickPeriod time.Duration

	// Velocity converts displacement into scroll requests.
	Velocity VelocityModel

	// Indicator is drawn at the anchor when ShowIndicator is set.
	Indicator     Indicator
	ShowIndicator bool

	// Timer drives ticks. Required.
	Timer Timer

	// Clock defaults to SystemClock.
	Clock Clock

	// Logger defaults to a no-op logger.
	Logger Logger
}

// DefaultOptions returns options with the standard constants. The caller
// must still supply a Timer.
func DefaultOptions() Options {
	return Options{
		TriggerButton: mouse.ButtonMiddle,
		TickPeriod:    DefaultTickPeriod,
		Velocity:      DefaultVelocityModel(),
		Indicator:     DefaultIndicator(),
		ShowIndicator: true,
		Clock:         SystemClock{},
		Logger:        nopLogger{},
	}
}

// normalized fills zero-valued fields with defaults.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.TriggerButton == mouse.ButtonNone {
		o.TriggerButton = d.TriggerButton
	}
	if o.TickPeriod <= 0 {
		o.TickPeriod = d.TickPeriod
	}
	if o.Velocity.Divisor <= 0 {
		o.Velocity = d.Velocity
	}
	if o.Indicator.Cursor == CursorDefault {
		o.Indicator = d.Indicator
	}
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}
