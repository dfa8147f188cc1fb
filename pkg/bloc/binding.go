package bloc

import (
	"github.com/go-drift/bloc/pkg/errors"
	"github.com/go-drift/bloc/pkg/stream"
)

// bindingPhase is the lifecycle of one binding:
// unbound -> subscribed -> unsubscribed (terminal).
type bindingPhase uint8

const (
	bindingUnbound bindingPhase = iota
	bindingSubscribed
	bindingUnsubscribed
)

// binding manages the single live subscription a mounted Builder or
// Listener holds on its selected stream. It is the shared subscription
// lifecycle manager: subscribe at mount, swap when the selected stream's
// identity changes, release exactly once at unmount.
type binding[S any] struct {
	phase bindingPhase
	src   stream.Stream[S]
	sub   *stream.Subscription
}

// boundTo reports whether the binding already holds a live subscription to
// src. Stream implementations in this module are pointer-backed, so
// identity comparison is cheap and reliable as long as selectors return a
// stable stream for an unchanged bloc.
func (b *binding[S]) boundTo(src stream.Stream[S]) bool {
	return b.phase == bindingSubscribed && b.src == src
}

// bind subscribes onData to src, releasing any previous subscription
// first. The swap is atomic with respect to the caller: the old
// subscription is canceled before the new Listen, so no emission reaches a
// stale callback. A nil src is a configuration error and panics with
// BindingError; op names the binding widget for the error.
//
// bind is a no-op after release: the terminal phase is never left.
func (b *binding[S]) bind(op string, src stream.Stream[S], onData func(S)) {
	if b.phase == bindingUnsubscribed {
		return
	}
	if src == nil {
		panic(&errors.BindingError{Op: op, Reason: "selector returned a nil stream"})
	}
	if b.sub != nil {
		b.sub.Cancel()
	}
	b.src = src
	b.sub = src.Listen(onData)
	b.phase = bindingSubscribed
}

// release cancels the subscription exactly once and makes the binding
// terminal. Safe to call repeatedly.
func (b *binding[S]) release() {
	if b.phase == bindingUnsubscribed {
		return
	}
	b.phase = bindingUnsubscribed
	if b.sub != nil {
		b.sub.Cancel()
		b.sub = nil
	}
	b.src = nil
}
