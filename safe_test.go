package allocbench

import (
	"sync"
	"testing"
)

func TestNewSafeArena(t *testing.T) {
	s := NewSafeArena(1024)
	if s == nil {
		t.Fatal("NewSafeArena returned nil")
	}
	if s.a == nil {
		t.Fatal("SafeArena.a is nil")
	}
}

func TestSafeArenaOperations(t *testing.T) {
	s := NewSafeArena(1024)

	addr, err := s.AllocNonZeroSized(Layout{Size: 100, Align: 8})
	if err != nil {
		t.Fatalf("AllocNonZeroSized error = %v", err)
	}
	if addr%8 != 0 {
		t.Errorf("address %#x not aligned to 8", addr)
	}
	if s.SizeInUse() == 0 {
		t.Error("Expected non-zero size in use")
	}

	s.Reset()
	if s.SizeInUse() != 0 {
		t.Error("Expected zero size in use after Reset")
	}

	s.Release()
	// After release, operations should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic after Release")
		}
	}()
	s.AllocNonZeroSized(Layout{Size: 100, Align: 1})
}

func TestSafeArenaConcurrentAlloc(t *testing.T) {
	const (
		goroutines = 8
		perG       = 100
	)
	s := NewSafeArena(goroutines * perG * 16)

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				if _, err := s.AllocNonZeroSized(Layout{Size: 16, Align: 1}); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent allocation error = %v", err)
	}
	if got, want := s.SizeInUse(), goroutines*perG*16; got != want {
		t.Errorf("SizeInUse after concurrent allocations = %d, want %d", got, want)
	}
}
