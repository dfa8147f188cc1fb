// Package stream provides the observable-stream runtime used by the bloc
// binding layer.
//
// Streams follow the host toolkit's single-threaded cooperative model:
// emissions are delivered synchronously, in order, on the goroutine that
// added them, and each callback runs to completion before the next one
// starts. Controllers and subscriptions are not safe for concurrent use
// from multiple goroutines; hand values to the UI loop before adding them.
package stream

// Stream is an ordered source of emissions of T.
//
// Listen registers onData for every subsequent emission and returns a
// Subscription that stops delivery when canceled. Implementations that
// retain a current value (see [ValueController]) replay it synchronously
// during Listen before the call returns.
type Stream[T any] interface {
	Listen(onData func(T)) *Subscription
}

// Subscription is a handle on one active listen.
//
// Cancel is idempotent: the first call releases the underlying listener,
// later calls are no-ops. After Cancel returns no further emission is
// delivered to the listener.
type Subscription struct {
	onCancel func()
	canceled bool
}

// NewSubscription creates a subscription that runs onCancel on the first
// Cancel call. onCancel may be nil.
func NewSubscription(onCancel func()) *Subscription {
	return &Subscription{onCancel: onCancel}
}

// Cancel releases the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.canceled {
		return
	}
	s.canceled = true
	if s.onCancel != nil {
		s.onCancel()
	}
}

// Canceled reports whether Cancel has been called.
func (s *Subscription) Canceled() bool {
	return s.canceled
}
