// Package mouse provides mouse input handling for the pager.
//
// Raw terminal mouse reports are normalized into Events by the renderer
// backend: a press, a release naming the button that was let go, or
// pointer motion with or without a held button.
//
// # Chain
//
// Events are routed through an ordered Chain of Processors. Each processor
// either handles an event, which stops the routing, or passes:
//
//	chain := mouse.NewChain(autoscrollProcessor)
//	chain.Add(mouse.NewHandler(mouse.DefaultConfig()).Processor(dispatch))
//	if by, ok := chain.Process(event); ok {
//	    log.Debug("mouse event handled by %s", by)
//	}
//
// # Handler
//
// Handler is the fallback processor. It turns what nobody else consumed
// into pager actions:
//
//   - Wheel: scroll by the configured line count (Shift: fewer lines)
//   - Left click: mark a line; Shift+click or drag extends the mark
//   - Double click: mark the paragraph
//   - Middle click: center the clicked line
//   - Right click: clear marks
//   - Back/forward buttons: page up/down
//
// Handler is safe for concurrent use. The Chain is not; it belongs to the
// event loop.
package mouse
