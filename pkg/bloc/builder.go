package bloc

import (
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
	"github.com/go-drift/bloc/pkg/stream"
)

// Builder rebuilds its subtree from the latest emission of one bloc
// stream.
//
// At mount the subtree is built synchronously with an absent snapshot (or
// with the replayed value when the selected stream retains one). Every
// later emission updates the snapshot and schedules a rebuild; emissions
// arriving faster than builds coalesce, and the next build always reflects
// the most recent value.
type Builder[B Bloc, S any] struct {
	core.StatefulBase

	// Bloc optionally supplies the bloc directly. When nil, the nearest
	// ancestor [Provider] of B is resolved; if that fails too, mounting
	// panics with [errors.ResolutionError].
	Bloc B
	// Selector chooses which output stream of the bloc to observe. It must
	// be free of side effects and return a stable stream identity for an
	// unchanged bloc; it is re-evaluated on every rebind.
	Selector func(b B) stream.Stream[S]
	// Build renders the subtree from the latest snapshot. It must not
	// mutate the bloc.
	Build func(ctx core.BuildContext, snap Snapshot[S], b B) core.Widget
}

// CreateState implements core.StatefulWidget.
func (w Builder[B, S]) CreateState() core.State {
	return &builderState[B, S]{}
}

type builderState[B Bloc, S any] struct {
	core.StateBase
	bloc    B
	binding binding[S]
	latest  Snapshot[S]
}

func (s *builderState[B, S]) widget() Builder[B, S] {
	return s.Element().Widget().(Builder[B, S])
}

func (s *builderState[B, S]) InitState() {
	s.attach()
}

// attach resolves the bloc, evaluates the selector, and (re)binds the
// subscription. Called at mount and whenever the widget configuration or a
// provider scope above changes.
func (s *builderState[B, S]) attach() {
	w := s.widget()
	if w.Selector == nil {
		panic(&errors.BindingError{Op: "bloc.Builder", Reason: "Selector is required"})
	}
	if w.Build == nil {
		panic(&errors.BindingError{Op: "bloc.Builder", Reason: "Build is required"})
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
	// New stream, new binding: the previous stream's last emission must
	// not survive the swap.
	s.latest = Snapshot[S]{}
	s.binding.bind("bloc.Builder", src, s.onData)
}

func (s *builderState[B, S]) onData(value S) {
	s.latest = SnapshotOf(value)
	s.SetState(nil)
}

func (s *builderState[B, S]) DidUpdateWidget(old core.StatefulWidget) {
	s.attach()
}

func (s *builderState[B, S]) DidChangeDependencies() {
	if s.IsDisposed() {
		return
	}
	s.attach()
}

func (s *builderState[B, S]) Build(ctx core.BuildContext) core.Widget {
	return s.widget().Build(ctx, s.latest, s.bloc)
}

func (s *builderState[B, S]) Dispose() {
	if s.IsDisposed() {
		return
	}
	s.binding.release()
	s.StateBase.Dispose()
}
