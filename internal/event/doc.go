// Package event provides a small synchronous event bus for viewport
// lifecycle notifications.
//
// Publishers emit an Event on a dot-separated Topic. Subscribers register a
// Handler for a topic and receive a Subscription token. The token is the only
// way to stop delivery; cancelling it more than once is a no-op, which lets
// owners release every token from a single teardown path without tracking
// whether an earlier path already did.
//
// # Topics
//
//	viewport.visibility   - a viewport became visible or hidden
//	viewport.closed       - a viewport was closed
//
// A pattern ending in ".**" matches the prefix and every descendant topic:
//
//	bus.SubscribeFunc("viewport.**", fn)
//
// # Delivery
//
// Delivery is synchronous on the publishing goroutine, in priority order.
// Handler panics are recovered and reported as ErrHandlerPanic.
package event
