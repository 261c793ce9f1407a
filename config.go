package allocbench

import (
	"fmt"
	"strconv"
)

// Config holds the four parameters of one run. It is immutable once
// parsed; nothing mutates it after the run starts.
type Config struct {
	Iterations int  // number of allocation requests
	UseArena   bool // false: global heap backend, true: bump arena
	ZeroSized  bool // false: random sizes in [1, MaxRandomSize], true: all zero-sized
	Direct     bool // false: branching entry point, true: specialized entry point
}

// ArenaCapacity is the provisioning heuristic for the arena backend:
// MaxRandomSize bytes per planned iteration. Alignment padding can in
// principle push consumption past this, which surfaces as recorded
// ErrArenaExhausted results rather than a fault.
func (c Config) ArenaCapacity() int {
	return MaxRandomSize * c.Iterations
}

// NewBackend constructs the backend the configuration selects.
func (c Config) NewBackend() Backend {
	if c.UseArena {
		return NewArena(c.ArenaCapacity())
	}
	return NewGlobal()
}

// ParseArgs parses the four positional run parameters, in order:
// iteration count, allocator selector (0 global, 1 arena),
// size-distribution selector (0 non-zero random, 1 zero-sized) and
// dispatch selector (0 branching, 1 direct). A missing or unparseable
// argument is a configuration error; callers are expected to treat it
// as fatal.
func ParseArgs(args []string) (Config, error) {
	var cfg Config

	if len(args) < 1 {
		return cfg, fmt.Errorf("expected number of iterations")
	}
	iters, err := strconv.Atoi(args[0])
	if err != nil || iters < 0 {
		return cfg, fmt.Errorf("invalid iteration count %q: expected a non-negative integer", args[0])
	}
	cfg.Iterations = iters

	cfg.UseArena, err = parseSelector(args, 1, "allocator selector", "'0' (global) or '1' (arena)")
	if err != nil {
		return cfg, err
	}
	cfg.ZeroSized, err = parseSelector(args, 2, "distribution selector", "'0' (random non-zero sizes) or '1' (zero-sized)")
	if err != nil {
		return cfg, err
	}
	cfg.Direct, err = parseSelector(args, 3, "dispatch selector", "'0' (branching) or '1' (direct)")
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseSelector(args []string, i int, name, legend string) (bool, error) {
	if len(args) <= i {
		return false, fmt.Errorf("expected %s: %s", name, legend)
	}
	v, err := strconv.ParseBool(args[i])
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: want %s", name, args[i], legend)
	}
	return v, nil
}
