// Package testing provides a widget test harness for the bloc binding
// layer: mount a tree, pump build passes, and locate elements with
// finders. No rendering is involved; the harness drives the same build
// machinery the host engine would.
package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/bloc/pkg/core"
)

// ErrSettleTimeout is returned when Settle exceeds its pass budget.
var ErrSettleTimeout = errors.New("Settle gave up: framework did not settle")

// settleMaxPasses bounds Settle against trees that dirty themselves on
// every build.
const settleMaxPasses = 100

// WidgetTester mounts widget trees in isolation and drives build passes
// the way the host loop would, one Pump per frame.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	dispatches []func()
}

// NewWidgetTester creates a tester. Call Cleanup when done, or use
// NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via
// t.Cleanup(). This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the current tree. Must be called if not using
// NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// PumpWidget mounts (or remounts) a widget and runs one build pass.
// Construction-time panics from the mounted tree (resolution and binding
// errors) propagate to the caller.
func (t *WidgetTester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	t.Pump()
}

// Pump runs a single frame cycle: queued dispatches, then a build flush.
func (t *WidgetTester) Pump() {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
	t.buildOwner.FlushBuild()
}

// Settle pumps until the framework is idle. Returns ErrSettleTimeout if
// the tree keeps scheduling work.
func (t *WidgetTester) Settle() error {
	for pass := 0; pass < settleMaxPasses; pass++ {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
	}
	return ErrSettleTimeout
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next Pump, mirroring how the host
// engine defers work to the next loop tick.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Unmount tears down the current tree explicitly. Idempotent.
func (t *WidgetTester) Unmount() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
