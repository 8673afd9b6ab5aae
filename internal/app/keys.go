package app

import (
	"github.com/dshills/autoscroll/internal/input"
	"github.com/dshills/autoscroll/internal/input/mouse"
	"github.com/dshills/autoscroll/internal/renderer/backend"
	"github.com/dshills/autoscroll/internal/renderer/textview"
)

const (
	actionQuit   = "app.quit"
	actionCancel = "app.cancel"
	actionRedraw = "app.redraw"
)

var keyActions = map[backend.Key]string{
	backend.KeyCtrlC:    actionQuit,
	backend.KeyEscape:   actionCancel,
	backend.KeyCtrlL:    actionRedraw,
	backend.KeyUp:       mouse.ActionScrollUp,
	backend.KeyDown:     mouse.ActionScrollDown,
	backend.KeyEnter:    mouse.ActionScrollDown,
	backend.KeyLeft:     mouse.ActionScrollLeft,
	backend.KeyRight:    mouse.ActionScrollRight,
	backend.KeyPageUp:   mouse.ActionPageUp,
	backend.KeyPageDown: mouse.ActionPageDown,
	backend.KeyHome:     textview.ActionTop,
	backend.KeyEnd:      textview.ActionBottom,
}

// runeActions follows less(1).
var runeActions = map[rune]string{
	'q': actionQuit,
	'Q': actionQuit,
	'j': mouse.ActionScrollDown,
	'k': mouse.ActionScrollUp,
	'h': mouse.ActionScrollLeft,
	'l': mouse.ActionScrollRight,
	' ': mouse.ActionPageDown,
	'f': mouse.ActionPageDown,
	'b': mouse.ActionPageUp,
	'd': textview.ActionHalfPageDown,
	'u': textview.ActionHalfPageUp,
	'g': textview.ActionTop,
	'G': textview.ActionBottom,
}

// keyAction maps a key event to an action name.
func keyAction(ev backend.Event) (string, bool) {
	if ev.Key == backend.KeyRune {
		name, ok := runeActions[ev.Rune]
		return name, ok
	}
	name, ok := keyActions[ev.Key]
	return name, ok
}

func (app *Application) handleKey(ev backend.Event) error {
	// Any key dismisses a message.
	app.view.StatusLine().ClearMessage()
	app.view.Invalidate()

	name, ok := keyAction(ev)
	if !ok {
		return nil
	}

	switch name {
	case actionQuit:
		return ErrQuit
	case actionCancel:
		app.processor.Factory().Stop()
		app.view.Execute(input.Action{Name: mouse.ActionClearMarks, Source: input.SourceKeyboard})
	case actionRedraw:
		app.backend.Clear()
		app.view.Invalidate()
	default:
		app.view.Execute(input.Action{Name: name, Source: input.SourceKeyboard})
	}
	return nil
}
