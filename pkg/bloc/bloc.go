package bloc

import (
	"reflect"

	"github.com/go-drift/bloc/pkg/stream"
)

// Bloc is a unit owning output state streams and input event sinks.
// Dispose releases every internal subscription and closes the bloc's
// controllers. It must be idempotent; embedding [Base] guarantees that.
type Bloc interface {
	Dispose()
}

// Base provides subscription tracking and idempotent disposal for bloc
// implementations. Embed it and register internal subscriptions with Track:
//
//	type NewsBloc struct {
//	    bloc.Base
//	    headlines *stream.Controller[string]
//	}
//
//	func NewNewsBloc(src stream.Stream[string]) *NewsBloc {
//	    b := &NewsBloc{headlines: stream.NewController[string]()}
//	    b.Track(src.Listen(b.headlines.Add))
//	    return b
//	}
type Base struct {
	subs     *stream.CompositeSubscription
	disposed bool
}

// Track registers sub for cancellation when the bloc is disposed.
// If the bloc is already disposed, sub is canceled immediately.
func (b *Base) Track(sub *stream.Subscription) {
	if sub == nil {
		return
	}
	if b.disposed {
		sub.Cancel()
		return
	}
	if b.subs == nil {
		b.subs = stream.NewCompositeSubscription()
	}
	b.subs.Add(sub)
}

// Dispose cancels every tracked subscription. Idempotent.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	if b.subs != nil {
		b.subs.Cancel()
	}
}

// IsDisposed reports whether Dispose has been called.
func (b *Base) IsDisposed() bool {
	return b.disposed
}

// isNilBloc reports whether b carries no instance: a nil interface or a
// typed nil pointer.
func isNilBloc[B Bloc](b B) bool {
	v := reflect.ValueOf(any(b))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
