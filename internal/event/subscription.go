package event

import "sync/atomic"

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive means the subscription is receiving events.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStateCancelled means the subscription has been permanently cancelled.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Priority determines handler execution order (lower values first).
type Priority int

const (
	PriorityHigh   Priority = 0
	PriorityNormal Priority = 50
	PriorityLow    Priority = 100
)

// Subscription is a registration token returned by Subscribe.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Topic returns the subscribed topic pattern.
	Topic() Topic

	// State returns the current subscription state.
	State() SubscriptionState

	// IsActive returns true if the subscription can receive events.
	IsActive() bool

	// Cancel permanently cancels the subscription and detaches it from the
	// bus. It reports whether this call performed the cancellation; later
	// calls return false and do nothing.
	Cancel() bool
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*subscription)

// WithPriority sets the subscription priority.
func WithPriority(p Priority) SubscriptionOption {
	return func(s *subscription) {
		s.priority = p
	}
}

// WithOnce cancels the subscription after its first delivery.
func WithOnce() SubscriptionOption {
	return func(s *subscription) {
		s.once = true
	}
}

type subscription struct {
	id       string
	topic    Topic
	handler  Handler
	priority Priority
	once     bool
	state    atomic.Int32
	bus      *Bus
}

func newSubscription(id string, t Topic, h Handler, b *Bus, opts ...SubscriptionOption) *subscription {
	s := &subscription{
		id:       id,
		topic:    t,
		handler:  h,
		priority: PriorityNormal,
		bus:      b,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(int32(SubscriptionStateActive))
	return s
}

func (s *subscription) ID() string { return s.id }

func (s *subscription) Topic() Topic { return s.topic }

func (s *subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

func (s *subscription) IsActive() bool {
	return s.State() == SubscriptionStateActive
}

func (s *subscription) Cancel() bool {
	if !s.state.CompareAndSwap(int32(SubscriptionStateActive), int32(SubscriptionStateCancelled)) {
		return false
	}
	if s.bus != nil {
		s.bus.remove(s.id)
	}
	return true
}
