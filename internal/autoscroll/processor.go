package autoscroll

import "github.com/dshills/autoscroll/internal/input/mouse"

// Processor applies the input policy of the gesture for one viewport:
//
//   - any button press while a session is active cancels it and is consumed;
//   - a trigger press otherwise starts a session, consumed only on success;
//   - a trigger release ends the session only if it scrolled, so a
//     stationary click leaves the session armed until the next press;
//   - losing visibility or closing always stops the session.
//
// Processor implements mouse.Processor.
type Processor struct {
	viewport Viewport
	factory  *SessionFactory
}

// NewProcessor creates a processor for v.
func NewProcessor(v Viewport, factory *SessionFactory) *Processor {
	return &Processor{
		viewport: v,
		factory:  factory,
	}
}

// Name implements mouse.Processor.
func (p *Processor) Name() string {
	return "autoscroll"
}

// Factory returns the processor's session factory.
func (p *Processor) Factory() *SessionFactory {
	return p.factory
}

// ProcessMouse implements mouse.Processor. Event positions are local to the
// viewport surface.
func (p *Processor) ProcessMouse(ev mouse.Event) bool {
	if ev.Button.IsScroll() {
		return false
	}

	switch ev.Action {
	case mouse.ActionPress:
		return p.ButtonDown(ev.Button, Pt(float64(ev.Position.X), float64(ev.Position.Y)))
	case mouse.ActionRelease:
		return p.ButtonUp(ev.Button)
	case mouse.ActionMove, mouse.ActionDrag:
		// The pointer is captured while a session runs.
		return p.factory.HasActiveSession()
	}
	return false
}

// ButtonDown handles a button press at a local position.
func (p *Processor) ButtonDown(b mouse.Button, local Point) bool {
	if p.factory.HasActiveSession() {
		p.factory.Stop()
		return true
	}
	if b != p.factory.Options().TriggerButton {
		return false
	}
	return p.factory.TryStart(p.viewport, local)
}

// ButtonUp handles a button release. Only the button that started the
// running session ends it.
func (p *Processor) ButtonUp(b mouse.Button) bool {
	if !p.factory.HasSessionScrolled() || b != p.factory.Session().Options().TriggerButton {
		return false
	}
	p.factory.Stop()
	return true
}

// VisibilityChanged stops the session when the viewport is hidden.
func (p *Processor) VisibilityChanged(visible bool) {
	if !visible {
		p.factory.Stop()
	}
}

// Closed stops the session.
func (p *Processor) Closed() {
	p.factory.Stop()
}
