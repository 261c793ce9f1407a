package allocbench

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access. It implements the same Backend capability, so it can stand
// in for an Arena in a timing run to measure the overhead of locking.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena with the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewSafeArena(capacity int) *SafeArena {
	return &SafeArena{a: NewArena(capacity)}
}

// AllocNonZeroSized thread-safely bumps the cursor for a layout with
// Size > 0.
func (s *SafeArena) AllocNonZeroSized(l Layout) (uintptr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocNonZeroSized(l)
}

// Reset thread-safely moves the cursor back to zero for reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops the region and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
