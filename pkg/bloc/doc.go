// Package bloc binds widget subtrees to streams of state emitted by bloc
// controllers.
//
// A bloc owns output state streams and input event sinks, and is disposed
// when its owning scope unmounts. Four widgets connect blocs to the tree:
//
//   - [Provider] creates or injects a bloc instance for its descendants.
//   - [MultiProvider] flattens an ordered list of providers into one chain.
//   - [Builder] rebuilds its subtree from the latest emission of one of the
//     bloc's streams.
//   - [Listener] runs a side-effect callback on qualifying emissions.
//
// Descendants resolve the nearest provided bloc of a type with [Of] (or
// [TryOf] for a non-panicking lookup):
//
//	bloc.Provider[*CounterBloc]{
//	    Create: NewCounterBloc,
//	    Child: bloc.Builder[*CounterBloc, int]{
//	        Selector: func(b *CounterBloc) stream.Stream[int] { return b.Count() },
//	        Build: func(ctx core.BuildContext, snap bloc.Snapshot[int], b *CounterBloc) core.Widget {
//	            if !snap.HasValue() {
//	                return label{text: "..."}
//	            }
//	            return label{text: strconv.Itoa(snap.Value())}
//	        },
//	    },
//	}
//
// Bloc type parameters should be pointer types: providers compare instances
// by identity and dispose owned blocs through the shared pointer.
//
// Lookup and binding failures are loud: a missing ancestor provider panics
// with [errors.ResolutionError], a selector returning a nil stream panics
// with [errors.BindingError], both at (re)bind time, never deferred to a
// later emission.
package bloc
