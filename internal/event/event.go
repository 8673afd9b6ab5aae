package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is a published notification.
type Event struct {
	// Topic is the event type.
	Topic Topic

	// Payload contains the event-specific data.
	Payload any

	// ID uniquely identifies this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the publisher.
	Source string
}

// New creates an event with a fresh ID and the current time.
func New(t Topic, payload any, source string) Event {
	return Event{
		Topic:     t,
		Payload:   payload,
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Source:    source,
	}
}

// Handler receives events.
type Handler interface {
	Handle(ctx context.Context, ev Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, ev Event) error

// Handle calls f(ctx, ev).
func (f HandlerFunc) Handle(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// VisibilityChanged is the payload of TopicViewportVisibility.
type VisibilityChanged struct {
	ViewportID string
	Visible    bool
}

// Closed is the payload of TopicViewportClosed.
type Closed struct {
	ViewportID string
}
