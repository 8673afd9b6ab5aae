package autoscroll

import (
	"context"
	"fmt"

	"github.com/dshills/autoscroll/internal/event"
)

// Registry maps viewport identities to their Processor. A viewport is
// registered explicitly with Open and torn down with Close, which also
// happens automatically when the viewport publishes event.TopicViewportClosed.
type Registry struct {
	bus     *event.Bus
	opts    Options
	entries map[string]*registryEntry
}

type registryEntry struct {
	viewport  Viewport
	processor *Processor
	subs      []event.Subscription
}

// NewRegistry creates a registry that listens for viewport lifecycle events
// on bus. A nil bus disables the automatic notifications.
func NewRegistry(bus *event.Bus, opts Options) *Registry {
	return &Registry{
		bus:     bus,
		opts:    opts.normalized(),
		entries: make(map[string]*registryEntry),
	}
}

// Open registers v and returns its processor.
func (r *Registry) Open(v Viewport) (*Processor, error) {
	if v == nil {
		return nil, ErrNilViewport
	}
	id := v.ID()
	if _, ok := r.entries[id]; ok {
		return nil, fmt.Errorf("open %s: %w", id, ErrViewportOpen)
	}

	entry := &registryEntry{
		viewport:  v,
		processor: NewProcessor(v, NewSessionFactory(r.opts)),
	}
	if r.bus != nil {
		if err := r.subscribe(id, entry); err != nil {
			entry.release()
			return nil, fmt.Errorf("open %s: %w", id, err)
		}
	}
	r.entries[id] = entry

	r.opts.Logger.Debug("viewport %s opened", id)
	return entry.processor, nil
}

// Close stops the viewport's session, releases its subscriptions and
// forgets it.
func (r *Registry) Close(id string) error {
	entry, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("close %s: %w", id, ErrViewportNotFound)
	}
	delete(r.entries, id)

	entry.processor.Closed()
	entry.release()

	r.opts.Logger.Debug("viewport %s closed", id)
	return nil
}

// CloseAll closes every registered viewport.
func (r *Registry) CloseAll() {
	for id := range r.entries {
		_ = r.Close(id)
	}
}

// Processor returns the processor for id.
func (r *Registry) Processor(id string) (*Processor, bool) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return entry.processor, true
}

// Len returns the number of open viewports.
func (r *Registry) Len() int {
	return len(r.entries)
}

// SetOptions updates the options of every factory, and of viewports opened
// later. Running sessions are not affected.
func (r *Registry) SetOptions(opts Options) {
	r.opts = opts.normalized()
	for _, entry := range r.entries {
		entry.processor.factory.SetOptions(r.opts)
	}
}

func (r *Registry) subscribe(id string, entry *registryEntry) error {
	visSub, err := r.bus.SubscribeFunc(event.TopicViewportVisibility, func(_ context.Context, ev event.Event) error {
		payload, ok := ev.Payload.(event.VisibilityChanged)
		if !ok || payload.ViewportID != id {
			return nil
		}
		entry.processor.VisibilityChanged(payload.Visible)
		return nil
	})
	if err != nil {
		return err
	}
	entry.subs = append(entry.subs, visSub)

	closedSub, err := r.bus.SubscribeFunc(event.TopicViewportClosed, func(_ context.Context, ev event.Event) error {
		payload, ok := ev.Payload.(event.Closed)
		if !ok || payload.ViewportID != id {
			return nil
		}
		if _, open := r.entries[id]; !open {
			return nil
		}
		return r.Close(id)
	})
	if err != nil {
		return err
	}
	entry.subs = append(entry.subs, closedSub)
	return nil
}

// release cancels every subscription token. Tokens tolerate repeated
// cancellation, so release may run more than once.
func (e *registryEntry) release() {
	for _, sub := range e.subs {
		sub.Cancel()
	}
}
