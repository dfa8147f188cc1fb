package stream

// Controller is a broadcast stream controller: values added to it are
// delivered to every active listener, in subscription order.
//
// New listeners receive only emissions that occur after they subscribe.
// Use [ValueController] when late subscribers should see the latest value.
type Controller[T any] struct {
	listeners []*listenerEntry[T]
	view      *controllerStream[T]
	closed    bool
}

type listenerEntry[T any] struct {
	onData func(T)
	active bool
}

// NewController creates an empty broadcast controller.
func NewController[T any]() *Controller[T] {
	c := &Controller[T]{}
	c.view = &controllerStream[T]{controller: c}
	return c
}

// Stream returns the controller's output stream. The returned value is
// stable across calls, so selectors that return it keep a stable stream
// identity across rebuilds.
func (c *Controller[T]) Stream() Stream[T] {
	return c.view
}

// Add delivers value to every active listener, in subscription order.
// Panics if the controller is closed.
func (c *Controller[T]) Add(value T) {
	if c.closed {
		panic("stream: Add called on closed controller")
	}
	// Snapshot so listeners added or removed during delivery don't
	// perturb this emission's fan-out.
	current := make([]*listenerEntry[T], len(c.listeners))
	copy(current, c.listeners)
	for _, entry := range current {
		if entry.active {
			entry.onData(value)
		}
	}
}

// Close releases all listeners and rejects further Adds. Idempotent.
func (c *Controller[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, entry := range c.listeners {
		entry.active = false
	}
	c.listeners = nil
}

// Closed reports whether Close has been called.
func (c *Controller[T]) Closed() bool {
	return c.closed
}

// ListenerCount returns the number of active listeners.
func (c *Controller[T]) ListenerCount() int {
	return len(c.listeners)
}

func (c *Controller[T]) listen(onData func(T)) *Subscription {
	if c.closed {
		// Listening to a closed controller yields no emissions.
		sub := NewSubscription(nil)
		sub.Cancel()
		return sub
	}
	entry := &listenerEntry[T]{onData: onData, active: true}
	c.listeners = append(c.listeners, entry)
	return NewSubscription(func() {
		entry.active = false
		for i, e := range c.listeners {
			if e == entry {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				break
			}
		}
	})
}

// controllerStream is the stable Stream view over a Controller.
type controllerStream[T any] struct {
	controller *Controller[T]
}

func (s *controllerStream[T]) Listen(onData func(T)) *Subscription {
	return s.controller.listen(onData)
}

// ValueController is a broadcast controller that retains its latest value
// and replays it synchronously to each new listener during Listen.
type ValueController[T any] struct {
	controller *Controller[T]
	value      T
	view       *valueStream[T]
}

// NewValueController creates a value controller seeded with initial.
func NewValueController[T any](initial T) *ValueController[T] {
	v := &ValueController[T]{
		controller: NewController[T](),
		value:      initial,
	}
	v.view = &valueStream[T]{controller: v}
	return v
}

// Value returns the latest value added, or the seed if none has been.
func (v *ValueController[T]) Value() T {
	return v.value
}

// Add stores value as the latest and delivers it to active listeners.
func (v *ValueController[T]) Add(value T) {
	v.value = value
	v.controller.Add(value)
}

// Stream returns the controller's output stream. The returned value is
// stable across calls. Each Listen replays the latest value synchronously
// before the call returns.
func (v *ValueController[T]) Stream() Stream[T] {
	return v.view
}

// Close releases all listeners and rejects further Adds. Idempotent.
func (v *ValueController[T]) Close() {
	v.controller.Close()
}

// Closed reports whether Close has been called.
func (v *ValueController[T]) Closed() bool {
	return v.controller.Closed()
}

// ListenerCount returns the number of active listeners.
func (v *ValueController[T]) ListenerCount() int {
	return v.controller.ListenerCount()
}

// valueStream is the stable Stream view over a ValueController.
type valueStream[T any] struct {
	controller *ValueController[T]
}

func (s *valueStream[T]) Listen(onData func(T)) *Subscription {
	sub := s.controller.controller.listen(onData)
	if !sub.Canceled() {
		onData(s.controller.value)
	}
	return sub
}
