package bloc

import (
	"reflect"

	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// providerScope is the inherited widget a Provider mounts to expose one
// bloc instance to its descendants. One scope per (bloc type, position);
// nested scopes of the same type shadow ancestors because lookup walks
// outward and stops at the nearest match.
type providerScope[B Bloc] struct {
	core.InheritedBase
	bloc  B
	child core.Widget
}

func (s providerScope[B]) ChildWidget() core.Widget {
	return s.child
}

func (s providerScope[B]) UpdateShouldNotify(old core.InheritedWidget) bool {
	prev, ok := old.(providerScope[B])
	if !ok {
		return true
	}
	return any(prev.bloc) != any(s.bloc)
}

// Of returns the nearest ancestor-provided bloc of type B, searching
// outward from ctx toward the root. It panics with
// [errors.ResolutionError] if no ancestor Provider of B exists; an
// unresolved bloc is a construction error, never an inert widget.
//
// The calling position is registered as a dependent: if the provider later
// swaps in a different instance, the position rebuilds.
func Of[B Bloc](ctx core.BuildContext) B {
	found, err := TryOf[B](ctx)
	if err != nil {
		panic(err)
	}
	return found
}

// TryOf is [Of] returning an error instead of panicking.
func TryOf[B Bloc](ctx core.BuildContext) (B, error) {
	scopeType := reflect.TypeOf((*providerScope[B])(nil)).Elem()
	found := ctx.DependOnInherited(scopeType)
	if found == nil {
		var zero B
		return zero, &errors.ResolutionError{
			BlocType: reflect.TypeOf((*B)(nil)).Elem().String(),
			Op:       "bloc.Of",
		}
	}
	return found.(providerScope[B]).bloc, nil
}
