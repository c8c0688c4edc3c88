package bulkhead_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/vnykmshr/gobulkhead/pkg/bulkhead"
)

// Example demonstrates basic admission control
func Example() {
	bh, err := bulkhead.NewWithConfig("orders", bulkhead.Config{
		MaxConcurrentCalls: 1,
	})
	if err != nil {
		panic(err)
	}

	if bh.IsCallPermitted() {
		fmt.Println("call permitted")
		// Do the guarded work...
		bh.OnComplete()
	}

	// Output: call permitted
}

// Example_saturation shows immediate rejection when the bulkhead is full
func Example_saturation() {
	bh, err := bulkhead.NewWithConfig("orders", bulkhead.Config{
		MaxConcurrentCalls: 1,
		MaxWaitTime:        0, // reject immediately when saturated
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(bh.IsCallPermitted()) // takes the only permit
	fmt.Println(bh.IsCallPermitted()) // rejected
	bh.OnComplete()
	fmt.Println(bh.IsCallPermitted()) // permitted again

	// Output:
	// true
	// false
	// true
}

// Example_events demonstrates observing admission outcomes
func Example_events() {
	bh, err := bulkhead.NewWithConfig("orders", bulkhead.Config{
		MaxConcurrentCalls: 1,
	})
	if err != nil {
		panic(err)
	}

	bh.Events().
		OnCallPermitted(func(e bulkhead.Event) {
			fmt.Printf("%s: %s\n", e.BulkheadName, e.Type)
		}).
		OnCallFinished(func(e bulkhead.Event) {
			fmt.Printf("%s: %s\n", e.BulkheadName, e.Type)
		})

	if bh.IsCallPermitted() {
		bh.OnComplete()
	}

	// Output:
	// orders: CallPermitted
	// orders: CallFinished
}

// Example_runtimeResize demonstrates changing capacity while traffic flows
func Example_runtimeResize() {
	bh, err := bulkhead.NewWithConfig("orders", bulkhead.Config{
		MaxConcurrentCalls: 2,
	})
	if err != nil {
		panic(err)
	}

	if err := bh.ChangeConfig(bulkhead.Config{MaxConcurrentCalls: 5}); err != nil {
		panic(err)
	}

	m := bh.Metrics()
	fmt.Printf("max: %d, available: %d\n", m.MaxAllowedConcurrentCalls(), m.AvailableConcurrentCalls())

	// Output: max: 5, available: 5
}

// Example_guardedWorkers limits how many workers run at once
func Example_guardedWorkers() {
	bh, err := bulkhead.NewWithConfig("workers", bulkhead.Config{
		MaxConcurrentCalls: 2,
		MaxWaitTime:        time.Second,
	})
	if err != nil {
		panic(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !bh.IsCallPermitted() {
				return
			}
			defer bh.OnComplete()
			time.Sleep(10 * time.Millisecond)
		}()
	}
	wg.Wait()

	fmt.Println("all workers done")
	// Output: all workers done
}
