package bloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/bloc/pkg/bloc"
	"github.com/go-drift/bloc/pkg/stream"
)

func TestSnapshotZeroValueIsAbsent(t *testing.T) {
	var snap bloc.Snapshot[int]

	assert.False(t, snap.HasValue())
	assert.Equal(t, 0, snap.Value())
	assert.Equal(t, -1, snap.ValueOr(-1))
}

func TestSnapshotOfHoldsValue(t *testing.T) {
	snap := bloc.SnapshotOf("ready")

	assert.True(t, snap.HasValue())
	assert.Equal(t, "ready", snap.Value())
	assert.Equal(t, "ready", snap.ValueOr("fallback"))
}

func TestBaseDisposeCancelsTrackedSubscriptions(t *testing.T) {
	ctrl := stream.NewController[int]()
	defer ctrl.Close()

	var base bloc.Base
	sub1 := ctrl.Stream().Listen(func(int) {})
	sub2 := ctrl.Stream().Listen(func(int) {})
	base.Track(sub1)
	base.Track(sub2)

	base.Dispose()

	assert.True(t, sub1.Canceled())
	assert.True(t, sub2.Canceled())
	assert.True(t, base.IsDisposed())
	assert.Equal(t, 0, ctrl.ListenerCount())
}

func TestBaseDisposeIdempotent(t *testing.T) {
	var base bloc.Base
	base.Dispose()
	assert.NotPanics(t, base.Dispose)
	assert.True(t, base.IsDisposed())
}

func TestBaseTrackAfterDisposeCancelsImmediately(t *testing.T) {
	ctrl := stream.NewController[int]()
	defer ctrl.Close()

	var base bloc.Base
	base.Dispose()

	sub := ctrl.Stream().Listen(func(int) {})
	base.Track(sub)

	assert.True(t, sub.Canceled())
	assert.Equal(t, 0, ctrl.ListenerCount())
}

func TestBaseTrackNilIsNoop(t *testing.T) {
	var base bloc.Base
	assert.NotPanics(t, func() { base.Track(nil) })
	base.Dispose()
}
