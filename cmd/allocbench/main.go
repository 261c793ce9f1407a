// Command allocbench times a batch of memory allocation calls and
// prints the elapsed microseconds as a single line on stdout.
//
// It takes four positional arguments:
//
//	allocbench <iterations> <allocator> <distribution> <dispatch>
//
//   - iterations: number of allocation requests
//   - allocator: 0 (global heap) or 1 (bump arena)
//   - distribution: 0 (random sizes in [1,1024]) or 1 (zero-sized)
//   - dispatch: 0 (branching entry point) or 1 (direct specialized entry point)
//
// E.g. `allocbench 10000000 1 0 1` times ten million direct non-zero
// allocations against an arena provisioned with 1024 bytes per
// iteration.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pavanmanishd/allocbench"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("allocbench: ")

	cfg, err := allocbench.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s <iterations> <allocator 0|1> <distribution 0|1> <dispatch 0|1>\n", os.Args[0])
		log.Fatal(err)
	}

	if err := allocbench.Run(os.Stdout, cfg.NewBackend(), cfg); err != nil {
		log.Fatal(err)
	}
}
