// Package app is the pager application: it wires the terminal backend, the
// text view, the mouse processor chain and the autoscroll registry, and
// runs the event loop.
package app

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/dshills/autoscroll/internal/autoscroll"
	"github.com/dshills/autoscroll/internal/config"
	"github.com/dshills/autoscroll/internal/config/loader"
	"github.com/dshills/autoscroll/internal/event"
	"github.com/dshills/autoscroll/internal/input"
	"github.com/dshills/autoscroll/internal/input/mouse"
	"github.com/dshills/autoscroll/internal/renderer/backend"
	"github.com/dshills/autoscroll/internal/renderer/textview"
	"github.com/dshills/autoscroll/internal/tracing"
)

// ViewID identifies the pager's single text view.
const ViewID = "main"

// Options configures the application.
type Options struct {
	// Path is the file to show. "-" reads standard input.
	Path string

	// ConfigPath is the configuration file. Empty uses defaults and
	// environment variables only.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Version is reported in traces.
	Version string

	// Watch reloads the configuration when its file changes.
	Watch bool

	// Document supplies the text instead of reading Path.
	Document io.Reader

	// ConfigFS and Environ replace the file system and the process
	// environment when loading configuration.
	ConfigFS loader.FileSystem
	Environ  map[string]string

	// Clock replaces the wall clock of autoscroll sessions.
	Clock autoscroll.Clock
}

// Application is the central coordinator for the pager.
type Application struct {
	opts Options

	backend backend.Backend
	configs *config.Manager
	cfg     *config.Config

	logger    *Logger
	logCloser io.Closer
	metrics   *Metrics

	traceShutdown func(context.Context) error

	bus       *event.Bus
	timer     *LoopTimer
	registry  *autoscroll.Registry
	view      *textview.TextView
	processor *autoscroll.Processor
	mouse     *mouse.Handler
	chain     *mouse.Chain

	running atomic.Bool
}

// New creates an Application drawing to b.
func New(b backend.Backend, opts Options) (*Application, error) {
	if b == nil {
		return nil, ErrNoBackend
	}
	app := &Application{
		opts:    opts,
		backend: b,
		metrics: NewMetrics(),
	}
	if err := app.bootstrap(); err != nil {
		app.closeResources()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration
	configs, err := config.NewManager(config.Source{
		Path:    app.opts.ConfigPath,
		FS:      app.opts.ConfigFS,
		Environ: app.opts.Environ,
	})
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.configs = configs
	app.cfg = configs.Current()
	if app.opts.LogLevel != "" {
		app.cfg.Logging.Level = app.opts.LogLevel
	}

	// 2. Logging
	app.logger, app.logCloser, err = OpenLogger(app.cfg.Logging)
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	// 3. Tracing
	if app.cfg.Trace.Enabled {
		app.traceShutdown, err = tracing.Init("autoscroll", app.opts.Version, app.cfg.Trace.File)
		if err != nil {
			return &InitError{Component: "tracing", Err: err}
		}
	}

	// 4. Event bus and timer
	app.bus = event.NewBus()
	app.timer = NewLoopTimer(app.backend.PostInterrupt)
	app.timer.OnLost(app.metrics.RecordTickLost)

	// 5. Text view
	lines, err := app.readDocument()
	if err != nil {
		return err
	}
	app.view = textview.New(ViewID, app.backend, textview.WithBus(app.bus))
	app.view.SetContent(app.documentName(), lines)

	// 6. Autoscroll
	app.registry = autoscroll.NewRegistry(app.bus, app.autoscrollOptions(app.cfg))
	app.processor, err = app.registry.Open(app.view)
	if err != nil {
		return &InitError{Component: "autoscroll", Err: err}
	}

	// 7. Mouse chain: the gesture first, clicks and wheel after it
	app.chain = mouse.NewChain()
	app.applyMouseConfig(app.cfg)
	app.applyAutoscrollEnabled(app.cfg.Autoscroll.Enabled)

	// 8. Configuration reload, delivered on the loop goroutine
	app.configs.OnChange(func(cfg *config.Config) {
		if err := app.backend.PostInterrupt(configMsg{cfg: cfg}); err != nil {
			app.logger.Warn("config change dropped: %v", err)
		}
	})
	app.configs.OnError(func(err error) {
		app.logger.Warn("%v", err)
	})
	if app.opts.Watch && app.opts.ConfigPath != "" {
		if err := app.configs.Watch(); err != nil {
			app.logger.Warn("config watch disabled: %v", err)
		}
	}

	app.logger.Info("showing %s (%d lines)", app.documentName(), len(lines))
	return nil
}

func (app *Application) readDocument() ([]string, error) {
	r := app.opts.Document
	if r == nil {
		switch app.opts.Path {
		case "":
			return nil, nil
		case "-":
			r = os.Stdin
		default:
			f, err := os.Open(app.opts.Path)
			if err != nil {
				return nil, NewOperationError("open", app.opts.Path, err)
			}
			defer f.Close()
			r = f
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewOperationError("read", app.documentName(), err)
	}
	return textview.SplitLines(data), nil
}

func (app *Application) documentName() string {
	if app.opts.Path == "" || app.opts.Path == "-" {
		return ""
	}
	return app.opts.Path
}

// autoscrollOptions maps the configuration to session options.
func (app *Application) autoscrollOptions(cfg *config.Config) autoscroll.Options {
	opts := autoscroll.DefaultOptions()
	if b, ok := cfg.Autoscroll.Button(); ok {
		opts.TriggerButton = b
	}
	opts.TickPeriod = cfg.Autoscroll.TickPeriod.D()
	opts.Velocity = autoscroll.VelocityModel{
		DeadBand: cfg.Autoscroll.DeadBand,
		Divisor:  cfg.Autoscroll.Divisor,
	}
	opts.ShowIndicator = cfg.Autoscroll.ShowIndicator
	opts.Timer = app.timer
	opts.Logger = app.logger.WithComponent("autoscroll")
	if app.opts.Clock != nil {
		opts.Clock = app.opts.Clock
	}
	return opts
}

// mouseConfig maps the configuration to the click and wheel handler.
func mouseConfig(cfg *config.Config) mouse.Config {
	mc := mouse.DefaultConfig()
	mc.ScrollLines = cfg.Mouse.ScrollLines
	mc.DoubleClickTime = cfg.Mouse.DoubleClickTime.D()
	mc.EnableMiddleClickCenter = cfg.Mouse.MiddleClickCenter
	return mc
}

func (app *Application) applyMouseConfig(cfg *config.Config) {
	app.mouse = mouse.NewHandler(mouseConfig(cfg))
	app.chain.Remove(mouseProcessorName)
	app.chain.Add(app.mouse.Processor(app.dispatch))
}

const mouseProcessorName = "mouse"

func (app *Application) applyAutoscrollEnabled(enabled bool) {
	has := false
	for _, name := range app.chain.Names() {
		if name == app.processor.Name() {
			has = true
		}
	}
	switch {
	case enabled && !has:
		app.chain.Insert(app.processor)
	case !enabled && has:
		app.processor.Factory().Stop()
		app.chain.Remove(app.processor.Name())
	}
}

// applyConfig installs a reloaded configuration. Running sessions keep the
// options they started with.
func (app *Application) applyConfig(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	app.cfg = cfg
	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	app.registry.SetOptions(app.autoscrollOptions(cfg))
	app.applyMouseConfig(cfg)
	app.applyAutoscrollEnabled(cfg.Autoscroll.Enabled)
	app.logger.Info("configuration reloaded")
}

// dispatch runs an action produced by the mouse handler.
func (app *Application) dispatch(a input.Action) {
	if !app.view.Execute(a) {
		app.logger.Debug("action %s not handled", a.Name)
	}
}

// Close releases everything New acquired. Call it after Run returns.
func (app *Application) Close() error {
	return app.closeResources()
}

func (app *Application) closeResources() error {
	errs := NewErrorList()
	if app.registry != nil {
		app.registry.CloseAll()
	}
	if app.timer != nil {
		app.timer.CancelAll()
	}
	if app.configs != nil {
		errs.Add(app.configs.Close())
	}
	if app.traceShutdown != nil {
		errs.Add(app.traceShutdown(context.Background()))
		app.traceShutdown = nil
	}
	if app.logger != nil {
		snap := app.metrics.Snapshot()
		app.logger.Debug("events=%d renders=%d ticks=%d lost=%d sessions=%d",
			snap.EventCount, snap.RenderCount, snap.TickCount, snap.TicksLost, snap.Sessions)
	}
	if app.logCloser != nil {
		errs.Add(app.logCloser.Close())
		app.logCloser = nil
	}
	return errs.AsError()
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// EventBus returns the event bus.
func (app *Application) EventBus() *event.Bus {
	return app.bus
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// View returns the text view.
func (app *Application) View() *textview.TextView {
	return app.view
}

// Registry returns the autoscroll registry.
func (app *Application) Registry() *autoscroll.Registry {
	return app.registry
}

// Chain returns the mouse processor chain.
func (app *Application) Chain() *mouse.Chain {
	return app.chain
}
