package bloc_test

import (
	"strconv"

	"github.com/go-drift/bloc/pkg/bloc"
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/stream"
	dtesting "github.com/go-drift/bloc/pkg/testing"
)

// counterBloc exposes a plain broadcast count stream.
type counterBloc struct {
	bloc.Base
	counts       *stream.Controller[int]
	disposeCalls int
}

func newCounterBloc() *counterBloc {
	return &counterBloc{counts: stream.NewController[int]()}
}

func (b *counterBloc) Counts() stream.Stream[int] { return b.counts.Stream() }

func (b *counterBloc) Emit(v int) { b.counts.Add(v) }

func (b *counterBloc) Dispose() {
	b.disposeCalls++
	b.counts.Close()
	b.Base.Dispose()
}

// loadingBloc exposes a seeded, replay-latest flag stream.
type loadingBloc struct {
	bloc.Base
	loading *stream.ValueController[bool]
}

func newLoadingBloc(initial bool) *loadingBloc {
	return &loadingBloc{loading: stream.NewValueController(initial)}
}

func (b *loadingBloc) Loading() stream.Stream[bool] { return b.loading.Stream() }

func (b *loadingBloc) SetLoading(v bool) { b.loading.Add(v) }

func (b *loadingBloc) Dispose() {
	b.loading.Close()
	b.Base.Dispose()
}

// label is a leaf widget tests assert against.
type label struct {
	core.StatelessBase
	Text string
}

func (l label) Build(ctx core.BuildContext) core.Widget { return nil }

// counterView builds a Builder bound to the counter stream, rendering the
// latest count or "absent".
func counterView() bloc.Builder[*counterBloc, int] {
	return bloc.Builder[*counterBloc, int]{
		Selector: func(b *counterBloc) stream.Stream[int] { return b.Counts() },
		Build: func(ctx core.BuildContext, snap bloc.Snapshot[int], b *counterBloc) core.Widget {
			if !snap.HasValue() {
				return label{Text: "absent"}
			}
			return label{Text: strconv.Itoa(snap.Value())}
		},
	}
}

// labelText returns the text of the single label in the tree.
func labelText(tester *dtesting.WidgetTester) string {
	return tester.Find(dtesting.ByType[label]()).Widget().(label).Text
}
