package core

// StateBase provides common functionality for stateful widget states.
// Embed this struct in your state to eliminate boilerplate.
//
// Example:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	disposed  bool
}

// SetElement stores the element reference for triggering rebuilds.
// This method is called automatically by the framework.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element associated with this state.
// Returns nil before mount.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState executes the given function and schedules a rebuild.
// Safe to call after disposal (becomes a no-op).
//
// SetState is not thread-safe; call it from the UI loop only.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup function to be called when the state is
// disposed. Disposers run in reverse registration order. If the state is
// already disposed, cleanup runs immediately.
func (s *StateBase) OnDispose(cleanup func()) {
	if cleanup == nil {
		return
	}
	if s.disposed {
		cleanup()
		return
	}
	s.disposers = append(s.disposers, cleanup)
}

// Dispose runs all registered disposers in reverse order, exactly once.
// Override this method for custom cleanup, but call s.StateBase.Dispose()
// in your override.
func (s *StateBase) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.disposers) - 1; i >= 0; i-- {
		s.disposers[i]()
	}
	s.disposers = nil
}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	return s.disposed
}

// InitState is a no-op default implementation.
func (s *StateBase) InitState() {}

// Build is a no-op default implementation that returns nil.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidChangeDependencies is a no-op default implementation.
func (s *StateBase) DidChangeDependencies() {}

// DidUpdateWidget is a no-op default implementation.
func (s *StateBase) DidUpdateWidget(old StatefulWidget) {}
