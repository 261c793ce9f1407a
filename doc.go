// Package allocbench is a micro-benchmark harness for memory allocation
// calls. It times a batch of allocation requests against two backends
// (the Go heap and a fixed-capacity bump arena), under two request
// shapes (zero-sized vs non-zero-sized layouts) and two dispatch styles
// (a single branching entry point vs a pre-selected specialized one).
//
// # Basic Usage
//
//	layouts, err := allocbench.MakeLayouts(100000, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	a := allocbench.NewArena(1024 * 100000)
//	results, elapsed := allocbench.TimeAllocs(a, layouts)
//	fmt.Println(elapsed.Microseconds(), len(results))
//
// Or drive a whole configured run, writing the elapsed microseconds as
// a single line:
//
//	cfg, err := allocbench.ParseArgs(os.Args[1:])
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = allocbench.Run(os.Stdout, cfg.NewBackend(), cfg)
//
// # What is (and is not) measured
//
// The timed interval brackets only the allocation calls: layout
// generation, results-buffer reservation and teardown happen outside
// it. Every result, success or failure, is appended to a pre-sized
// buffer and never inspected, so the calls cannot be elided but no
// validation work skews the measurement. Allocation failures (arena
// exhaustion) are recorded and the loop continues; the harness measures
// call cost, not success rate.
//
// Returned addresses are opaque: they are observed only for their
// value and never dereferenced or freed. Zero-sized requests are served
// by a sentinel address equal to the requested alignment, with no
// memory reserved.
//
// # Thread Safety
//
// A run is strictly single-threaded. Arena is not goroutine-safe; use
// SafeArena to measure the cost of adding a lock.
package allocbench
