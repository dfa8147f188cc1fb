package testing

import (
	"testing"

	"github.com/go-drift/bloc/pkg/core"
)

// textBox is a leaf fixture widget.
type textBox struct {
	core.StatelessBase
	Text string
}

func (b textBox) Build(ctx core.BuildContext) core.Widget { return nil }

// wrapper passes through to its child.
type wrapper struct {
	core.StatelessBase
	Child core.Widget
}

func (w wrapper) Build(ctx core.BuildContext) core.Widget { return w.Child }

// keyedBox is a leaf fixture widget carrying an explicit key.
type keyedBox struct {
	core.StatelessBase
	ID string
}

func (b keyedBox) Key() any { return b.ID }

func (b keyedBox) Build(ctx core.BuildContext) core.Widget { return nil }

// restless rebuilds forever: every build queues a dispatch that dirties
// the element again.
type restless struct {
	core.StatefulBase
	Tester *WidgetTester
}

func (r restless) CreateState() core.State {
	return &restlessState{tester: r.Tester}
}

type restlessState struct {
	core.StateBase
	tester *WidgetTester
	builds int
}

func (s *restlessState) Build(ctx core.BuildContext) core.Widget {
	s.builds++
	s.tester.Dispatch(func() {
		s.SetState(nil)
	})
	return textBox{Text: "restless"}
}

func TestPumpWidgetMountsTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(textBox{Text: "hello"})

	if tester.RootElement() == nil {
		t.Fatal("expected root element after PumpWidget")
	}
	if !tester.Find(ByType[textBox]()).Exists() {
		t.Error("expected to find the mounted widget")
	}
}

func TestPumpWidgetRemountReplacesRoot(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(textBox{Text: "first"})
	first := tester.RootElement()

	tester.PumpWidget(textBox{Text: "second"})
	second := tester.RootElement()

	if first == second {
		t.Error("expected a new root element after remount")
	}
	got := tester.Find(ByType[textBox]()).Widget().(textBox).Text
	if got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
}

func TestDispatchRunsOnNextPump(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(textBox{Text: "x"})

	ran := false
	tester.Dispatch(func() { ran = true })
	if ran {
		t.Fatal("dispatch must not run before Pump")
	}

	tester.Pump()
	if !ran {
		t.Error("expected dispatch to run during Pump")
	}
}

func TestSettleIdleTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(textBox{Text: "static"})

	if err := tester.Settle(); err != nil {
		t.Errorf("expected idle tree to settle, got: %v", err)
	}
}

func TestSettleFiniteDispatchChain(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(textBox{Text: "x"})

	steps := 0
	var step func()
	step = func() {
		steps++
		if steps < 5 {
			tester.Dispatch(step)
		}
	}
	tester.Dispatch(step)

	if err := tester.Settle(); err != nil {
		t.Fatalf("expected settle, got: %v", err)
	}
	if steps != 5 {
		t.Errorf("expected 5 dispatch steps, got %d", steps)
	}
}

func TestSettleTimesOutOnRestlessTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(restless{Tester: tester})

	if err := tester.Settle(); err != ErrSettleTimeout {
		t.Errorf("expected ErrSettleTimeout, got: %v", err)
	}
}

func TestUnmountIsIdempotent(t *testing.T) {
	tester := NewWidgetTester()
	tester.PumpWidget(textBox{Text: "x"})

	tester.Unmount()
	tester.Unmount()

	if tester.RootElement() != nil {
		t.Error("expected nil root after Unmount")
	}
	if tester.Find(ByType[textBox]()).Exists() {
		t.Error("expected no matches against an unmounted tree")
	}
}

func TestCleanupUnmountsTree(t *testing.T) {
	tester := NewWidgetTester()
	tester.PumpWidget(textBox{Text: "x"})

	tester.Cleanup()
	if tester.RootElement() != nil {
		t.Error("expected nil root after Cleanup")
	}
}
