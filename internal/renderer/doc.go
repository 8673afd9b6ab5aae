// Package renderer groups the display layer of the pager.
//
// The layers, bottom up:
//
//	┌─────────────────────────────────────────┐
//	│   textview: document, marks, indicator  │
//	├───────────────────┬─────────────────────┤
//	│ viewport: scroll  │ statusline          │
//	├───────────────────┴─────────────────────┤
//	│   core: Cell, Style, Color, ScreenRect  │
//	├─────────────────────────────────────────┤
//	│   backend: Terminal (tcell) │ Null      │
//	└─────────────────────────────────────────┘
//
// Everything above backend runs on the event loop goroutine and needs no
// locking of its own. The backend is safe for PostInterrupt from any
// goroutine.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	view := textview.New("main", term)
//	view.SetContent("README.md", textview.SplitLines(data))
//	view.SetBounds(core.RectFromSize(0, 0, height, width))
//	view.Draw()
//	term.Show()
package renderer
