// Package core provides the widget and element framework the bloc binding
// layer mounts into.
//
// This package defines the foundational types for a declarative build tree:
// Widget, Element, State, and BuildContext. Widgets are immutable
// descriptions of part of the UI; elements are their instantiations at a
// particular position in the tree and manage lifecycle and identity. There
// is no layout or painting here: the tree exists to be built, rebuilt, and
// walked for ancestor lookup, which is all the binding layer needs.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    return labelWidget{text: fmt.Sprintf("Count: %d", s.count)}
//	}
//
// # Inherited Widgets
//
// InheritedWidget exposes a value to all descendants. Descendants call
// BuildContext.DependOnInherited with the widget's type to read the nearest
// ancestor's value and register for rebuilds when it changes. The bloc
// package builds its provider scopes on this mechanism.
package core
