package allocbench

import (
	"fmt"
	"io"
	"time"
)

// The timing loops below are deliberately near-identical: the results
// buffer is pre-sized so no growth happens inside the interval, the
// timestamps strictly bracket the allocation calls, and every result
// is kept (success or failure, uninspected) so the calls cannot be
// optimized away. A failed allocation is recorded and the loop
// continues.

// TimeAllocs drives one allocation per layout through the unified
// branching entry point.
func TimeAllocs(b Backend, layouts []Layout) ([]Result, time.Duration) {
	results := make([]Result, 0, len(layouts))
	start := time.Now()
	for _, l := range layouts {
		addr, err := Alloc(b, l)
		results = append(results, Result{Addr: addr, Err: err})
	}
	return results, time.Since(start)
}

// TimeAllocsZeroSized drives every layout through the zero-sized path
// directly. All layouts must be zero-sized.
func TimeAllocsZeroSized(layouts []Layout) ([]Result, time.Duration) {
	results := make([]Result, 0, len(layouts))
	start := time.Now()
	for _, l := range layouts {
		addr, err := AllocZeroSized(l)
		results = append(results, Result{Addr: addr, Err: err})
	}
	return results, time.Since(start)
}

// TimeAllocsNonZeroSized drives every layout through the backend's
// non-zero-sized path directly. All layouts must have Size > 0.
func TimeAllocsNonZeroSized(b Backend, layouts []Layout) ([]Result, time.Duration) {
	results := make([]Result, 0, len(layouts))
	start := time.Now()
	for _, l := range layouts {
		addr, err := b.AllocNonZeroSized(l)
		results = append(results, Result{Addr: addr, Err: err})
	}
	return results, time.Since(start)
}

// Run executes one configured measurement: it generates the layouts
// for cfg (outside the timed interval), times the path selected by the
// dispatch style and size distribution, and writes the elapsed
// microseconds to w as a single line. This is the run's sole output.
func Run(w io.Writer, b Backend, cfg Config) error {
	layouts, err := MakeLayouts(cfg.Iterations, cfg.ZeroSized)
	if err != nil {
		return err
	}

	var elapsed time.Duration
	switch {
	case cfg.Direct && cfg.ZeroSized:
		_, elapsed = TimeAllocsZeroSized(layouts)
	case cfg.Direct:
		_, elapsed = TimeAllocsNonZeroSized(b, layouts)
	default:
		_, elapsed = TimeAllocs(b, layouts)
	}

	_, err = fmt.Fprintln(w, elapsed.Microseconds())
	return err
}
