package bloc

import (
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// Provider supplies a bloc instance to its descendants.
//
// Exactly one construction mode must be set:
//
//   - Create: the provider calls the factory once at mount, owns the
//     result, and disposes it exactly once when the provider unmounts.
//   - Value: the provider injects an existing bloc and never disposes it;
//     whoever created the instance remains responsible for its disposal.
//
// Descendants look the bloc up with [Of] or bind to it through [Builder]
// and [Listener].
type Provider[B Bloc] struct {
	core.StatefulBase

	// Create builds the bloc at mount. The provider owns the result.
	Create func() B
	// Value supplies an existing, borrowed bloc.
	Value B
	// Child is the subtree the bloc is exposed to.
	Child core.Widget
}

// CreateState implements core.StatefulWidget.
func (p Provider[B]) CreateState() core.State {
	return &providerState[B]{}
}

// WrapChild returns a copy of the provider with child as its subtree.
// MultiProvider uses it to compose the nested chain.
func (p Provider[B]) WrapChild(child core.Widget) core.Widget {
	p.Child = child
	return p
}

type providerState[B Bloc] struct {
	core.StateBase
	bloc  B
	owned bool
}

func (s *providerState[B]) widget() Provider[B] {
	return s.Element().Widget().(Provider[B])
}

func (s *providerState[B]) InitState() {
	w := s.widget()
	hasCreate := w.Create != nil
	hasValue := !isNilBloc(w.Value)
	switch {
	case hasCreate && hasValue:
		panic(&errors.BindingError{Op: "bloc.Provider", Reason: "both Create and Value supplied; exactly one construction mode is required"})
	case hasCreate:
		s.bloc = w.Create()
		if isNilBloc(s.bloc) {
			panic(&errors.BindingError{Op: "bloc.Provider", Reason: "Create returned a nil bloc"})
		}
		s.owned = true
	case hasValue:
		s.bloc = w.Value
	default:
		panic(&errors.BindingError{Op: "bloc.Provider", Reason: "neither Create nor Value supplied"})
	}
}

func (s *providerState[B]) DidUpdateWidget(old core.StatefulWidget) {
	// Value mode adopts a replacement instance from the new configuration.
	// Create mode keeps the bloc made at mount; the factory never reruns.
	if s.owned {
		return
	}
	w := s.widget()
	if !isNilBloc(w.Value) {
		s.bloc = w.Value
	}
}

func (s *providerState[B]) Build(ctx core.BuildContext) core.Widget {
	return providerScope[B]{bloc: s.bloc, child: s.widget().Child}
}

func (s *providerState[B]) Dispose() {
	if s.IsDisposed() {
		return
	}
	if s.owned {
		s.bloc.Dispose()
	}
	s.StateBase.Dispose()
}

// ProviderSpec is a provider widget that can be re-parented over a child.
// Provider implements it; MultiProvider consumes it.
type ProviderSpec interface {
	core.Widget
	WrapChild(child core.Widget) core.Widget
}

// MultiProvider composes an ordered list of providers into one nested
// chain: Providers[0] becomes the outermost scope. The result is
// equivalent to manually nesting each provider in the given order, with
// unchanged disposal semantics per element.
type MultiProvider struct {
	core.StatelessBase

	Providers []ProviderSpec
	Child     core.Widget
}

// Build implements core.StatelessWidget.
func (m MultiProvider) Build(ctx core.BuildContext) core.Widget {
	tree := m.Child
	for i := len(m.Providers) - 1; i >= 0; i-- {
		tree = m.Providers[i].WrapChild(tree)
	}
	return tree
}
