package stream

// Map returns a stream that applies transform to each emission of src.
//
// The returned stream is lazy: it subscribes to src only when listened to.
// Each call builds a new stream value, so derive streams once (typically in
// a bloc's constructor) rather than inside a selector, or the binding layer
// will see a different stream identity on every rebuild.
func Map[T, U any](src Stream[T], transform func(T) U) Stream[U] {
	return &mapStream[T, U]{src: src, transform: transform}
}

type mapStream[T, U any] struct {
	src       Stream[T]
	transform func(T) U
}

func (s *mapStream[T, U]) Listen(onData func(U)) *Subscription {
	return s.src.Listen(func(value T) {
		onData(s.transform(value))
	})
}

// Where returns a stream that relays only the emissions of src for which
// test returns true.
func Where[T any](src Stream[T], test func(T) bool) Stream[T] {
	return &whereStream[T]{src: src, test: test}
}

type whereStream[T any] struct {
	src  Stream[T]
	test func(T) bool
}

func (s *whereStream[T]) Listen(onData func(T)) *Subscription {
	return s.src.Listen(func(value T) {
		if s.test(value) {
			onData(value)
		}
	})
}

// DistinctUntilChanged returns a stream that drops emissions equal to the
// immediately preceding one. The first emission always passes.
func DistinctUntilChanged[T comparable](src Stream[T]) Stream[T] {
	return DistinctUntilChangedFunc(src, func(a, b T) bool { return a == b })
}

// DistinctUntilChangedFunc is DistinctUntilChanged with a custom equality
// function, for element types that are not comparable.
func DistinctUntilChangedFunc[T any](src Stream[T], equals func(a, b T) bool) Stream[T] {
	return &distinctStream[T]{src: src, equals: equals}
}

type distinctStream[T any] struct {
	src    Stream[T]
	equals func(a, b T) bool
}

func (s *distinctStream[T]) Listen(onData func(T)) *Subscription {
	// Previous-value state is per subscription, not per stream.
	var prev T
	seen := false
	return s.src.Listen(func(value T) {
		if seen && s.equals(prev, value) {
			return
		}
		prev = value
		seen = true
		onData(value)
	})
}

// Merge returns a stream that relays emissions from every source as they
// occur. Canceling the merged subscription cancels all source listens.
func Merge[T any](sources ...Stream[T]) Stream[T] {
	return &mergeStream[T]{sources: sources}
}

type mergeStream[T any] struct {
	sources []Stream[T]
}

func (s *mergeStream[T]) Listen(onData func(T)) *Subscription {
	composite := NewCompositeSubscription()
	for _, source := range s.sources {
		composite.Add(source.Listen(onData))
	}
	return NewSubscription(composite.Cancel)
}
