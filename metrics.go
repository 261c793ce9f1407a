package allocbench

// SizeInUse returns the number of bytes consumed from the arena,
// including internal fragmentation due to alignment padding.
func (a *Arena) SizeInUse() int {
	return int(a.offset)
}

// Capacity returns the total capacity of the arena's region in bytes.
// A released arena reports zero.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the number of bytes still available before the
// arena exhausts, ignoring any alignment padding future requests may
// need.
func (a *Arena) Remaining() int {
	return len(a.buf) - int(a.offset)
}

// Utilization returns the ratio of bytes in use to total capacity
// (0.0 to 1.0). Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes consumed, padding included
	Capacity    int     // Total capacity in bytes
	Remaining   int     // Bytes left before exhaustion
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the number of bytes consumed.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Capacity thread-safely returns the total capacity of the region.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Remaining thread-safely returns the bytes left before exhaustion.
func (s *SafeArena) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remaining()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
