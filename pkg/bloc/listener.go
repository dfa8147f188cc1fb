package bloc

import (
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
	"github.com/go-drift/bloc/pkg/stream"
)

// Listener runs a side-effect callback on qualifying emissions of one bloc
// stream, wrapping Child without affecting its layout or build.
//
// OnData fires only for emissions that occur strictly after the listener
// subscribes: a value replayed synchronously while subscribing (see
// stream.ValueController) seeds the previous-emission history but does not
// invoke the callback. Calls are strictly ordered and non-overlapping,
// matching the stream's cooperative delivery order.
type Listener[B Bloc, S any] struct {
	core.StatefulBase

	// Bloc optionally supplies the bloc directly. When nil, the nearest
	// ancestor [Provider] of B is resolved.
	Bloc B
	// Selector chooses which output stream of the bloc to observe. Same
	// purity and stability requirements as [Builder].
	Selector func(b B) stream.Stream[S]
	// OnData is the side-effect callback, invoked once per qualifying
	// emission.
	OnData func(ctx core.BuildContext, value S)
	// Condition gates emissions. It is evaluated in emission order with
	// the immediately preceding emission (absent before the first) and the
	// current one; OnData runs only when it returns true. Nil means every
	// post-subscription emission qualifies.
	Condition func(prev Snapshot[S], current S) bool
	// Child is the wrapped subtree.
	Child core.Widget
}

// CreateState implements core.StatefulWidget.
func (w Listener[B, S]) CreateState() core.State {
	return &listenerState[B, S]{}
}

type listenerState[B Bloc, S any] struct {
	core.StateBase
	bloc      B
	binding   binding[S]
	prev      Snapshot[S]
	attaching bool
}

func (s *listenerState[B, S]) widget() Listener[B, S] {
	return s.Element().Widget().(Listener[B, S])
}

func (s *listenerState[B, S]) InitState() {
	s.attach()
}

func (s *listenerState[B, S]) attach() {
	w := s.widget()
	if w.Selector == nil {
		panic(&errors.BindingError{Op: "bloc.Listener", Reason: "Selector is required"})
	}
	if w.OnData == nil {
		panic(&errors.BindingError{Op: "bloc.Listener", Reason: "OnData is required"})
	}

	resolved := w.Bloc
	if isNilBloc(resolved) {
		resolved = Of[B](s.Element())
	}
	s.bloc = resolved

	src := w.Selector(resolved)
	if s.binding.boundTo(src) {
		return
	}
	s.prev = Snapshot[S]{}
	s.attaching = true
	s.binding.bind("bloc.Listener", src, s.onData)
	s.attaching = false
}

func (s *listenerState[B, S]) onData(value S) {
	if s.attaching {
		// Synchronous replay delivered inside Listen: this is the state at
		// subscription, not an emission. Record it as history only.
		s.prev = SnapshotOf(value)
		return
	}
	w := s.widget()
	qualifies := w.Condition == nil || w.Condition(s.prev, value)
	s.prev = SnapshotOf(value)
	if qualifies {
		w.OnData(s.Element(), value)
	}
}

func (s *listenerState[B, S]) DidUpdateWidget(old core.StatefulWidget) {
	s.attach()
}

func (s *listenerState[B, S]) DidChangeDependencies() {
	if s.IsDisposed() {
		return
	}
	s.attach()
}

func (s *listenerState[B, S]) Build(ctx core.BuildContext) core.Widget {
	return s.widget().Child
}

func (s *listenerState[B, S]) Dispose() {
	if s.IsDisposed() {
		return
	}
	s.binding.release()
	s.StateBase.Dispose()
}
