package stream_test

import (
	"fmt"

	"github.com/go-drift/bloc/pkg/stream"
)

// This example shows a broadcast controller: every active listener
// receives each value, in listen order, synchronously.
func ExampleController() {
	counts := stream.NewController[int]()
	defer counts.Close()

	sub := counts.Stream().Listen(func(v int) {
		fmt.Printf("got %d\n", v)
	})
	defer sub.Cancel()

	counts.Add(1)
	counts.Add(2)

	// Output:
	// got 1
	// got 2
}

// This example shows a value controller replaying its latest value to a
// new listener before any further emissions.
func ExampleValueController() {
	loading := stream.NewValueController(true)
	defer loading.Close()

	loading.Stream().Listen(func(v bool) {
		fmt.Printf("loading=%v\n", v)
	})

	loading.Add(false)

	// Output:
	// loading=true
	// loading=false
}

// This example chains operators over a source stream. Operators are lazy:
// nothing subscribes upstream until the derived stream is listened to.
func ExampleMap() {
	counts := stream.NewController[int]()
	defer counts.Close()

	labels := stream.Map(
		stream.Where(counts.Stream(), func(v int) bool { return v%2 == 0 }),
		func(v int) string { return fmt.Sprintf("even:%d", v) },
	)

	sub := labels.Listen(func(s string) { fmt.Println(s) })
	defer sub.Cancel()

	for i := 1; i <= 4; i++ {
		counts.Add(i)
	}

	// Output:
	// even:2
	// even:4
}

// This example shows DistinctUntilChanged suppressing consecutive
// duplicates while letting repeated values through after a change.
func ExampleDistinctUntilChanged() {
	states := stream.NewController[string]()
	defer states.Close()

	sub := stream.DistinctUntilChanged(states.Stream()).Listen(func(s string) {
		fmt.Println(s)
	})
	defer sub.Cancel()

	for _, s := range []string{"idle", "idle", "busy", "busy", "idle"} {
		states.Add(s)
	}

	// Output:
	// idle
	// busy
	// idle
}
