package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dshills/autoscroll/internal/input/mouse"
)

// EnvPrefix prefixes every environment override, e.g. AUTOSCROLL_LOG_LEVEL.
const EnvPrefix = "AUTOSCROLL_"

// Config is the pager configuration.
type Config struct {
	Logging    LoggingConfig    `toml:"logging" yaml:"logging" envPrefix:"LOG_"`
	Autoscroll AutoscrollConfig `toml:"autoscroll" yaml:"autoscroll" envPrefix:"SCROLL_"`
	Mouse      MouseConfig      `toml:"mouse" yaml:"mouse" envPrefix:"MOUSE_"`
	Trace      TraceConfig      `toml:"trace" yaml:"trace" envPrefix:"TRACE_"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level" env:"LEVEL"`

	// File receives the log. Empty disables logging, since the terminal
	// belongs to the pager.
	File string `toml:"file" yaml:"file" env:"FILE"`
}

// AutoscrollConfig tunes the drag-to-pan gesture.
type AutoscrollConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled" env:"ENABLED"`

	// TriggerButton names the button that starts a session: left, middle
	// or right (back and forward work too).
	TriggerButton string `toml:"trigger_button" yaml:"trigger_button" env:"TRIGGER_BUTTON"`

	// TickPeriod is how often the pointer is sampled.
	TickPeriod Duration `toml:"tick_period" yaml:"tick_period" env:"TICK_PERIOD"`

	// DeadBand is the displacement in cells that does not scroll.
	DeadBand float64 `toml:"dead_band" yaml:"dead_band" env:"DEAD_BAND"`

	// Divisor scales displacement*milliseconds to cells.
	Divisor float64 `toml:"divisor" yaml:"divisor" env:"DIVISOR"`

	// ShowIndicator draws a marker at the anchor.
	ShowIndicator bool `toml:"show_indicator" yaml:"show_indicator" env:"SHOW_INDICATOR"`
}

// MouseConfig configures the click and wheel handling that the gesture
// does not consume.
type MouseConfig struct {
	ScrollLines       int      `toml:"scroll_lines" yaml:"scroll_lines" env:"SCROLL_LINES"`
	DoubleClickTime   Duration `toml:"double_click_time" yaml:"double_click_time" env:"DOUBLE_CLICK_TIME"`
	MiddleClickCenter bool     `toml:"middle_click_center" yaml:"middle_click_center" env:"MIDDLE_CLICK_CENTER"`
}

// TraceConfig enables OpenTelemetry spans for gesture sessions.
type TraceConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled" env:"ENABLED"`
	File    string `toml:"file" yaml:"file" env:"FILE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Autoscroll: AutoscrollConfig{
			Enabled:       true,
			TriggerButton: "middle",
			TickPeriod:    Duration(25 * time.Millisecond),
			DeadBand:      10,
			Divisor:       200,
			ShowIndicator: true,
		},
		Mouse: MouseConfig{
			ScrollLines:       3,
			DoubleClickTime:   Duration(400 * time.Millisecond),
			MiddleClickCenter: true,
		},
	}
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate checks every field and returns the first problem found as a
// *ValidationError.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Message: "unknown level", Value: c.Logging.Level, Code: ErrCodeInvalidEnum}
	}

	a := c.Autoscroll
	if _, ok := a.Button(); !ok {
		return &ValidationError{Path: "autoscroll.trigger_button", Message: "unknown button", Value: a.TriggerButton, Code: ErrCodeInvalidEnum}
	}
	if a.TickPeriod <= 0 {
		return &ValidationError{Path: "autoscroll.tick_period", Message: "must be positive", Value: a.TickPeriod, Code: ErrCodeOutOfRange}
	}
	if !finite(a.DeadBand) || a.DeadBand < 0 {
		return &ValidationError{Path: "autoscroll.dead_band", Message: "must be a finite, non-negative number", Value: a.DeadBand, Code: ErrCodeOutOfRange}
	}
	// A subnormal divisor overflows the velocity even though it is positive.
	if !finite(a.Divisor) || a.Divisor <= 0 || !finite(1/a.Divisor) {
		return &ValidationError{Path: "autoscroll.divisor", Message: "must be a finite, positive number", Value: a.Divisor, Code: ErrCodeOutOfRange}
	}

	if c.Mouse.ScrollLines < 1 {
		return &ValidationError{Path: "mouse.scroll_lines", Message: "must be at least 1", Value: c.Mouse.ScrollLines, Code: ErrCodeOutOfRange}
	}
	if c.Mouse.DoubleClickTime < 0 {
		return &ValidationError{Path: "mouse.double_click_time", Message: "must not be negative", Value: c.Mouse.DoubleClickTime, Code: ErrCodeOutOfRange}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Button returns the parsed trigger button.
func (a AutoscrollConfig) Button() (mouse.Button, bool) {
	return mouse.ParseButton(strings.ToLower(strings.TrimSpace(a.TriggerButton)))
}

// Duration is a time.Duration written as a string such as "25ms" in
// configuration files and environment variables.
type Duration time.Duration

// D returns d as a time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

// String implements fmt.Stringer.
func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}
