// Package autoscroll implements middle-click drag-to-pan for a scrollable
// viewport.
//
// Pressing the trigger button anchors a reference point. While the session
// is active a periodic timer samples the pointer, and the distance from the
// anchor is turned into a scroll velocity:
//
//	pixels = sign(delta) * (|delta| - DeadBand) * elapsedMs / Divisor
//
// Movement inside the dead-band does not scroll. Fractional pixels are
// carried between ticks by an Accumulator so slow drags still move the view
// without the jitter of per-tick rounding.
//
// # Components
//
//   - VelocityModel converts an axis delta and elapsed time to pixels.
//   - Accumulator turns a stream of fractional requests into whole pixels.
//   - SelectCursor picks one of nine directional cursors.
//   - Session is the gesture state machine bound to one Viewport.
//   - SessionFactory keeps at most one Session per viewport.
//   - Processor applies the button/visibility policy and plugs into a
//     mouse.Chain.
//   - Registry maps viewport IDs to their Processor and owns the viewport's
//     lifecycle subscriptions.
//
// # Threading
//
// Nothing in this package locks. Every call, including Timer callbacks and
// event bus notifications, must arrive on the goroutine that owns the
// viewport. Timer implementations must not re-enter a callback and must not
// deliver a callback after Cancel returns.
package autoscroll
