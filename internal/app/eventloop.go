package app

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/dshills/autoscroll/internal/config"
	"github.com/dshills/autoscroll/internal/input"
	"github.com/dshills/autoscroll/internal/input/mouse"
	"github.com/dshills/autoscroll/internal/renderer/backend"
	"github.com/dshills/autoscroll/internal/renderer/core"
	"github.com/dshills/autoscroll/internal/renderer/statusline"
)

// Interrupt payloads handled by the event loop. Timer ticks arrive as
// tickMsg (see timer.go).
type (
	configMsg struct{ cfg *config.Config }
	quitMsg   struct{}
)

// Run initializes the backend and processes events until the user quits,
// ctx is cancelled or the backend stops delivering events. Everything the
// pager does happens on the goroutine that calls Run.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	stop := context.AfterFunc(ctx, app.Quit)
	defer stop()

	app.layout(app.backend.Size())
	app.render()

	err := app.eventLoop()

	// Closing the view ends any session through the closed notification.
	if cerr := app.view.Close(); cerr != nil {
		app.logger.Warn("close view: %v", cerr)
	}
	return err
}

// Quit asks the event loop to return. It may be called from any goroutine.
func (app *Application) Quit() {
	if err := app.backend.PostInterrupt(quitMsg{}); err != nil {
		app.logger.Warn("quit request dropped: %v", err)
	}
}

func (app *Application) eventLoop() error {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventNone {
			return nil
		}

		start := time.Now()
		err := app.safeHandle(ev)
		app.metrics.RecordEvent(time.Since(start))

		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			app.logger.Error("%v", err)
			app.view.StatusLine().SetMessage(err.Error(), statusline.MessageError)
			app.view.Invalidate()
		}

		if app.view.NeedsRedraw() {
			app.render()
		}
	}
}

// safeHandle runs handleEvent, turning a panic into an error so a bug in one
// handler does not leave the terminal in raw mode.
func (app *Application) safeHandle(ev backend.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()
	return app.handleEvent(ev)
}

func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.layout(ev.Width, ev.Height)
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventFocus:
		return app.view.SetVisible(ev.Focused)
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	}
	return nil
}

func (app *Application) handleInterrupt(data any) error {
	switch msg := data.(type) {
	case tickMsg:
		if app.timer.Dispatch(msg) {
			app.metrics.RecordTick()
		}
	case configMsg:
		app.applyConfig(msg.cfg)
		app.view.StatusLine().SetMessage("configuration reloaded", statusline.MessageInfo)
		app.view.Invalidate()
	case quitMsg:
		return ErrQuit
	default:
		return fmt.Errorf("unexpected interrupt %T", data)
	}
	return nil
}

// layout gives the whole screen to the view.
func (app *Application) layout(width, height int) {
	app.view.SetBounds(core.RectFromSize(0, 0, height, width))
	app.backend.Clear()
}

func (app *Application) render() {
	start := time.Now()
	app.view.Draw()
	app.backend.Show()
	app.metrics.RecordRender(time.Since(start))
}

// handleMouse offers a pointer event to the chain with its position made
// local to the text region.
func (app *Application) handleMouse(ev backend.Event) {
	app.view.PointerMoved(ev.MouseX, ev.MouseY)

	me, ok := convertMouse(ev)
	if !ok {
		return
	}

	factory := app.processor.Factory()
	wasActive := factory.HasActiveSession()
	if me.Action == mouse.ActionPress && !wasActive && !app.view.Contains(ev.MouseX, ev.MouseY) {
		return
	}

	local := app.view.LocalPoint(ev.MouseX, ev.MouseY)
	me.Position = mouse.Position{X: int(local.X), Y: int(local.Y)}

	name, handled := app.chain.Process(me)
	if !handled {
		return
	}
	if name == app.processor.Name() && !wasActive && factory.HasActiveSession() {
		app.metrics.RecordSession()
	}
	app.logger.Debug("mouse %s %s handled by %s", me.Button, me.Action, name)
}

var mouseButtons = map[backend.MouseButton]mouse.Button{
	backend.MouseLeft:       mouse.ButtonLeft,
	backend.MouseMiddle:     mouse.ButtonMiddle,
	backend.MouseRight:      mouse.ButtonRight,
	backend.MouseBack:       mouse.ButtonBack,
	backend.MouseForward:    mouse.ButtonForward,
	backend.MouseWheelUp:    mouse.ButtonScrollUp,
	backend.MouseWheelDown:  mouse.ButtonScrollDown,
	backend.MouseWheelLeft:  mouse.ButtonScrollLeft,
	backend.MouseWheelRight: mouse.ButtonScrollRight,
}

var mouseActions = map[backend.MouseAction]mouse.Action{
	backend.MousePress:   mouse.ActionPress,
	backend.MouseRelease: mouse.ActionRelease,
	backend.MouseMove:    mouse.ActionMove,
	backend.MouseDrag:    mouse.ActionDrag,
}

// convertMouse maps a backend mouse event. The position is left in screen
// cells.
func convertMouse(ev backend.Event) (mouse.Event, bool) {
	action, ok := mouseActions[ev.MouseAction]
	if !ok {
		return mouse.Event{}, false
	}
	when := ev.When
	if when.IsZero() {
		when = time.Now()
	}
	return mouse.Event{
		Position:  mouse.Position{X: ev.MouseX, Y: ev.MouseY},
		Button:    mouseButtons[ev.MouseButton],
		Modifiers: convertMod(ev.Mod),
		Action:    action,
		Timestamp: when,
	}, true
}

func convertMod(m backend.ModMask) input.Modifier {
	var mod input.Modifier
	if m.Has(backend.ModShift) {
		mod |= input.ModShift
	}
	if m.Has(backend.ModCtrl) {
		mod |= input.ModCtrl
	}
	if m.Has(backend.ModAlt) {
		mod |= input.ModAlt
	}
	if m.Has(backend.ModMeta) {
		mod |= input.ModMeta
	}
	return mod
}
