package stream

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// CompositeSubscription collects subscriptions so they can be canceled as
// a group. Blocs use one to release every internal subscription from their
// Dispose method.
type CompositeSubscription struct {
	subs     mapset.Set[*Subscription]
	canceled bool
}

// NewCompositeSubscription creates an empty composite.
func NewCompositeSubscription() *CompositeSubscription {
	return &CompositeSubscription{
		subs: mapset.NewThreadUnsafeSet[*Subscription](),
	}
}

// Add tracks sub for group cancellation. If the composite is already
// canceled, sub is canceled immediately.
func (c *CompositeSubscription) Add(sub *Subscription) {
	if sub == nil {
		return
	}
	if c.canceled {
		sub.Cancel()
		return
	}
	c.subs.Add(sub)
}

// Remove stops tracking sub without canceling it.
func (c *CompositeSubscription) Remove(sub *Subscription) {
	c.subs.Remove(sub)
}

// Cancel cancels every tracked subscription. Idempotent; subscriptions
// added afterward are canceled on Add.
func (c *CompositeSubscription) Cancel() {
	if c.canceled {
		return
	}
	c.canceled = true
	c.subs.Each(func(sub *Subscription) bool {
		sub.Cancel()
		return false
	})
	c.subs.Clear()
}

// Canceled reports whether Cancel has been called.
func (c *CompositeSubscription) Canceled() bool {
	return c.canceled
}

// Size returns the number of tracked subscriptions.
func (c *CompositeSubscription) Size() int {
	return c.subs.Cardinality()
}
