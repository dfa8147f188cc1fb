package core

import "reflect"

// Widget is an immutable description of part of the UI tree.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element
	// Key distinguishes widgets of the same type during tree updates.
	// Return nil for no key.
	Key() any
}

// StatelessWidget builds a child widget purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates a State object that holds mutable state across
// rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// InheritedWidget exposes a value to descendant widgets, found via
// [BuildContext.DependOnInherited].
type InheritedWidget interface {
	Widget
	// ChildWidget returns the subtree below this widget.
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must be notified after
	// the widget at this position was replaced by this one.
	UpdateShouldNotify(old InheritedWidget) bool
}

// State holds mutable state for a StatefulWidget and builds its subtree.
type State interface {
	// InitState is called exactly once, after the state is attached to its
	// element and before the first build.
	InitState()
	// Build returns the subtree for the current state.
	Build(ctx BuildContext) Widget
	// DidChangeDependencies is called when an inherited widget this state's
	// element depends on changes.
	DidChangeDependencies()
	// DidUpdateWidget is called when the element's widget is replaced by a
	// new configuration of the same type.
	DidUpdateWidget(old StatefulWidget)
	// Dispose releases resources. Called exactly once, on unmount.
	Dispose()
}

// BuildContext is the interface widgets use to interact with their position
// in the tree during build.
type BuildContext interface {
	// Widget returns the widget hosted at this position.
	Widget() Widget
	// DependOnInherited returns the nearest ancestor InheritedWidget whose
	// concrete type matches inheritedType, registering this position as a
	// dependent. Returns nil if no such ancestor exists.
	DependOnInherited(inheritedType reflect.Type) any
	// FindAncestor returns the nearest ancestor element matching predicate,
	// or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular tree position.
type Element interface {
	BuildContext
	// Mount attaches the element below parent and performs the first build.
	Mount(parent Element, slot any)
	// Update replaces the element's widget with a new configuration.
	Update(newWidget Widget)
	// Unmount tears the element and its subtree down.
	Unmount()
	// RebuildIfNeeded rebuilds the subtree if the element is dirty.
	RebuildIfNeeded()
	// MarkNeedsBuild schedules the element for rebuild.
	MarkNeedsBuild()
	// Depth returns the element's distance from the root.
	Depth() int
	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Element) bool)
}

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget { ... }
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets. Embed it in your widget struct and implement
// CreateState.
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// InheritedBase provides default CreateElement and Key implementations for
// inherited widgets. Embed it in your widget struct along with a Child
// field and implement [InheritedWidget.ChildWidget] and
// [InheritedWidget.UpdateShouldNotify].
type InheritedBase struct{}

// CreateElement returns a new InheritedElement.
func (InheritedBase) CreateElement() Element { return NewInheritedElement() }

// Key returns nil (no key).
func (InheritedBase) Key() any { return nil }
