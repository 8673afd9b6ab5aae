package event

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Bus is a synchronous topic-based event bus.
// It is safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs []*subscription
	byID map[string]*subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		byID: make(map[string]*subscription),
	}
}

// Subscribe registers handler for events whose topic matches pattern.
func (b *Bus) Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if !pattern.IsValid() {
		return nil, ErrInvalidTopic
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	sub := newSubscription(uuid.NewString(), pattern, handler, b, opts...)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = append(b.subs, sub)
	sort.SliceStable(b.subs, func(i, j int) bool {
		return b.subs[i].priority < b.subs[j].priority
	})
	b.byID[sub.id] = sub
	return sub, nil
}

// SubscribeFunc registers a function handler.
func (b *Bus) SubscribeFunc(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, fn, opts...)
}

// Unsubscribe cancels sub. Unsubscribing a cancelled or foreign
// subscription returns ErrSubscriptionNotFound.
func (b *Bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	b.mu.RLock()
	_, ok := b.byID[sub.ID()]
	b.mu.RUnlock()
	if !ok {
		return ErrSubscriptionNotFound
	}
	sub.Cancel()
	return nil
}

// Publish delivers an event to every matching subscription, in priority
// order, on the calling goroutine. Handler errors are joined and returned
// after all handlers ran.
func (b *Bus) Publish(ctx context.Context, ev Event) error {
	if !ev.Topic.IsValid() {
		return ErrInvalidTopic
	}

	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.topic.Matches(ev.Topic) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, s := range matched {
		// A handler earlier in this loop may have cancelled s.
		if !s.IsActive() {
			continue
		}
		if s.once {
			s.Cancel()
		}
		if err := b.deliver(ctx, s, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byID)
}

func (b *Bus) deliver(ctx context.Context, s *subscription, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &HandlerError{
				SubscriptionID: s.id,
				Topic:          ev.Topic,
				Err:            fmt.Errorf("%w: %v", ErrHandlerPanic, r),
			}
		}
	}()

	if herr := s.handler.Handle(ctx, ev); herr != nil {
		return &HandlerError{SubscriptionID: s.id, Topic: ev.Topic, Err: herr}
	}
	return nil
}

func (b *Bus) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.byID[id]; !ok {
		return
	}
	delete(b.byID, id)
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			break
		}
	}
}
