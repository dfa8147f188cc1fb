package bloc

// Snapshot is the latest-emission view a binding renders or gates from:
// either absent (no emission yet) or the most recent value.
// The zero Snapshot is absent.
type Snapshot[S any] struct {
	value    S
	hasValue bool
}

// SnapshotOf returns a snapshot holding value.
func SnapshotOf[S any](value S) Snapshot[S] {
	return Snapshot[S]{value: value, hasValue: true}
}

// HasValue reports whether an emission has been observed.
func (s Snapshot[S]) HasValue() bool {
	return s.hasValue
}

// Value returns the latest emission, or the zero value when absent.
func (s Snapshot[S]) Value() S {
	return s.value
}

// ValueOr returns the latest emission, or fallback when absent.
func (s Snapshot[S]) ValueOr(fallback S) S {
	if s.hasValue {
		return s.value
	}
	return fallback
}
