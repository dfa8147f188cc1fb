package bloc_test

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/bloc/pkg/bloc"
	"github.com/go-drift/bloc/pkg/core"
	blocerrors "github.com/go-drift/bloc/pkg/errors"
	"github.com/go-drift/bloc/pkg/stream"
	dtesting "github.com/go-drift/bloc/pkg/testing"
)

func TestBuilderRendersAbsentThenLatest(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)
	cb := newCounterBloc()
	defer cb.Dispose()

	tester.PumpWidget(bloc.Provider[*counterBloc]{Value: cb, Child: counterView()})

	// No emission yet: the absent placeholder renders synchronously.
	require.Equal(t, "absent", labelText(tester))

	cb.Emit(1)
	cb.Emit(2)
	cb.Emit(3)
	tester.Pump()

	assert.Equal(t, "3", labelText(tester))
}

func TestBuilderCoalescesEmissionsIntoOneBuild(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)
	cb := newCounterBloc()
	defer cb.Dispose()

	builds := 0
	view := bloc.Builder[*counterBloc, int]{
		Selector: func(b *counterBloc) stream.Stream[int] { return b.Counts() },
		Build: func(ctx core.BuildContext, snap bloc.Snapshot[int], b *counterBloc) core.Widget {
			builds++
			return label{Text: strconv.Itoa(snap.ValueOr(-1))}
		},
	}

	tester.PumpWidget(bloc.Provider[*counterBloc]{Value: cb, Child: view})
	require.Equal(t, 1, builds)

	cb.Emit(1)
	cb.Emit(2)
	cb.Emit(3)
	tester.Pump()

	// Three emissions before the build pass coalesce into one rebuild
	// showing the newest value.
	assert.Equal(t, 2, builds)
	assert.Equal(t, "3", labelText(tester))
}

func TestBuilderWithExplicitBlocSkipsResolution(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)
	cb := newCounterBloc()
	defer cb.Dispose()

	view := counterView()
	view.Bloc = cb

	// No Provider anywhere in the tree.
	tester.PumpWidget(view)
	cb.Emit(9)
	tester.Pump()

	assert.Equal(t, "9", labelText(tester))
}

func TestBuilderRendersReplayedValueAtMount(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)
	lb := newLoadingBloc(true)
	defer lb.Dispose()

	view := bloc.Builder[*loadingBloc, bool]{
		Selector: func(b *loadingBloc) stream.Stream[bool] { return b.Loading() },
		Build: func(ctx core.BuildContext, snap bloc.Snapshot[bool], b *loadingBloc) core.Widget {
			return label{Text: strconv.FormatBool(snap.ValueOr(false))}
		},
	}

	tester.PumpWidget(bloc.Provider[*loadingBloc]{Value: lb, Child: view})

	// The seeded value replays synchronously during subscription, so the
	// first build already sees it.
	assert.Equal(t, "true", labelText(tester))
}

func TestBuilderWithoutProviderPanicsWithResolutionError(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected mount to panic")
		err, ok := r.(error)
		require.True(t, ok, "expected panic value to be an error, got %T", r)
		var resErr *blocerrors.ResolutionError
		require.True(t, stderrors.As(err, &resErr), "expected ResolutionError, got %v", err)
		assert.Equal(t, "*bloc_test.counterBloc", resErr.BlocType)
	}()

	tester.PumpWidget(counterView())
}

func TestBuilderNilStreamPanicsWithBindingError(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)
	cb := newCounterBloc()
	defer cb.Dispose()

	view := bloc.Builder[*counterBloc, int]{
		Bloc:     cb,
		Selector: func(b *counterBloc) stream.Stream[int] { return nil },
		Build: func(ctx core.BuildContext, snap bloc.Snapshot[int], b *counterBloc) core.Widget {
			return nil
		},
	}

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected mount to panic")
		var bindErr *blocerrors.BindingError
		require.True(t, stderrors.As(r.(error), &bindErr), "expected BindingError, got %v", r)
	}()

	tester.PumpWidget(view)
}

func TestBuilderMissingSelectorPanicsWithBindingError(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)
	cb := newCounterBloc()
	defer cb.Dispose()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected mount to panic")
		var bindErr *blocerrors.BindingError
		require.True(t, stderrors.As(r.(error), &bindErr))
	}()

	tester.PumpWidget(bloc.Builder[*counterBloc, int]{
		Bloc: cb,
		Build: func(ctx core.BuildContext, snap bloc.Snapshot[int], b *counterBloc) core.Widget {
			return nil
		},
	})
}

func TestBuilderUnmountReleasesSubscriptionOnce(t *testing.T) {
	tester := dtesting.NewWidgetTester()
	cb := newCounterBloc()
	defer cb.Dispose()

	tester.PumpWidget(bloc.Provider[*counterBloc]{Value: cb, Child: counterView()})
	require.Equal(t, 1, cb.counts.ListenerCount())

	root := tester.RootElement()
	root.Unmount()
	assert.Equal(t, 0, cb.counts.ListenerCount())

	// A second unmount signal must be a no-op.
	assert.NotPanics(t, root.Unmount)
	assert.Equal(t, 0, cb.counts.ListenerCount())
}

func TestBuilderRebindsWhenProviderSwapsBloc(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)
	b1 := newCounterBloc()
	b2 := newCounterBloc()
	defer b1.Dispose()
	defer b2.Dispose()

	tester.PumpWidget(bloc.Provider[*counterBloc]{Value: b1, Child: counterView()})
	b1.Emit(1)
	tester.Pump()
	require.Equal(t, "1", labelText(tester))

	// Swap the provided instance in place.
	tester.RootElement().Update(bloc.Provider[*counterBloc]{Value: b2, Child: counterView()})
	tester.Pump()

	// The binding moved: the old stream has no listener, the retained
	// emission from the old stream is gone.
	assert.Equal(t, 0, b1.counts.ListenerCount())
	assert.Equal(t, 1, b2.counts.ListenerCount())
	assert.Equal(t, "absent", labelText(tester))

	// Emissions on the stale bloc never reach the rebound callback.
	b1.Emit(5)
	tester.Pump()
	assert.Equal(t, "absent", labelText(tester))

	b2.Emit(7)
	tester.Pump()
	assert.Equal(t, "7", labelText(tester))
}

func TestBuilderStableSelectorDoesNotRebindAcrossRebuilds(t *testing.T) {
	tester := dtesting.NewWidgetTesterWithT(t)
	cb := newCounterBloc()
	defer cb.Dispose()

	tester.PumpWidget(bloc.Provider[*counterBloc]{Value: cb, Child: counterView()})
	cb.Emit(4)
	tester.Pump()
	require.Equal(t, "4", labelText(tester))

	// Rebuild with an identical configuration: the retained emission
	// survives because the stream identity did not change.
	tester.RootElement().Update(bloc.Provider[*counterBloc]{Value: cb, Child: counterView()})
	tester.Pump()

	assert.Equal(t, "4", labelText(tester))
	assert.Equal(t, 1, cb.counts.ListenerCount())
}
