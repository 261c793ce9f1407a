package allocbench

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a := NewArena(1024)

	// Initial state
	if a.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.Capacity() != 1024 {
		t.Errorf("Capacity = %d, want 1024", a.Capacity())
	}
	if a.Remaining() != 1024 {
		t.Errorf("Initial Remaining = %d, want 1024", a.Remaining())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	if _, err := a.AllocNonZeroSized(Layout{Size: 100, Align: 1}); err != nil {
		t.Fatalf("allocation error = %v", err)
	}
	if _, err := a.AllocNonZeroSized(Layout{Size: 200, Align: 1}); err != nil {
		t.Fatalf("allocation error = %v", err)
	}

	if a.SizeInUse() != 300 {
		t.Errorf("SizeInUse = %d, want 300", a.SizeInUse())
	}
	if a.Remaining() != 724 {
		t.Errorf("Remaining = %d, want 724", a.Remaining())
	}

	utilization := a.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}

	// Alignment padding counts toward SizeInUse.
	if _, err := a.AllocNonZeroSized(Layout{Size: 1, Align: 8}); err != nil {
		t.Fatalf("allocation error = %v", err)
	}
	if a.SizeInUse() < 301 {
		t.Errorf("SizeInUse after aligned allocation = %d, want >= 301", a.SizeInUse())
	}

	// Snapshot agrees with the individual accessors.
	metrics := a.Metrics()
	if metrics.SizeInUse != a.SizeInUse() {
		t.Errorf("Metrics.SizeInUse = %d, want %d", metrics.SizeInUse, a.SizeInUse())
	}
	if metrics.Capacity != a.Capacity() {
		t.Errorf("Metrics.Capacity = %d, want %d", metrics.Capacity, a.Capacity())
	}
	if metrics.Remaining != a.Remaining() {
		t.Errorf("Metrics.Remaining = %d, want %d", metrics.Remaining, a.Remaining())
	}
	if metrics.Utilization != a.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, a.Utilization())
	}
}

func TestReleasedArenaMetrics(t *testing.T) {
	a := NewArena(1024)
	a.AllocNonZeroSized(Layout{Size: 100, Align: 1})
	a.Release()

	if a.SizeInUse() != 0 {
		t.Errorf("Released SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.Capacity() != 0 {
		t.Errorf("Released Capacity = %d, want 0", a.Capacity())
	}
	if a.Utilization() != 0 {
		t.Errorf("Released Utilization = %f, want 0", a.Utilization())
	}
}

func TestSafeArenaMetrics(t *testing.T) {
	s := NewSafeArena(1024)

	if _, err := s.AllocNonZeroSized(Layout{Size: 100, Align: 1}); err != nil {
		t.Fatalf("allocation error = %v", err)
	}

	if s.SizeInUse() != 100 {
		t.Errorf("SizeInUse = %d, want 100", s.SizeInUse())
	}
	if s.Capacity() != 1024 {
		t.Errorf("Capacity = %d, want 1024", s.Capacity())
	}
	if s.Remaining() != 924 {
		t.Errorf("Remaining = %d, want 924", s.Remaining())
	}

	metrics := s.Metrics()
	if metrics.SizeInUse != 100 {
		t.Errorf("Metrics.SizeInUse = %d, want 100", metrics.SizeInUse)
	}
}
