package allocbench

// Backend is the capability a timing run needs from an allocator: it
// only has to serve non-zero-sized requests. The zero-sized path and
// the branching entry point are shared across backends (AllocZeroSized
// and Alloc), so every backend behaves identically in contract and
// differs only in cost.
//
// All entry points assume the layout came from NewLayout or
// MakeLayouts; alignment is not re-validated here.
type Backend interface {
	// AllocNonZeroSized reserves memory for a layout with Size > 0 and
	// returns its address, which satisfies the layout's alignment. The
	// address is only guaranteed to stay valid for the lifetime of the
	// backend; nothing is ever freed individually.
	AllocNonZeroSized(l Layout) (uintptr, error)
}

// Result records the outcome of one allocation call: an opaque address
// on success or the backend's error on failure. Addr is observed only
// for its value and never dereferenced.
type Result struct {
	Addr uintptr
	Err  error
}

// AllocZeroSized serves a layout with Size == 0. No memory is
// reserved: the alignment value itself is reinterpreted as the
// address, which makes the result non-zero and aligned by
// construction. Never fails.
func AllocZeroSized(l Layout) (uintptr, error) {
	return uintptr(l.Align), nil
}

// Alloc is the unified entry point: it branches on the layout's size
// and dispatches to the matching specialized path. It exists so the
// harness can compare the cost of this extra branch against calling
// the specialized paths directly.
func Alloc(b Backend, l Layout) (uintptr, error) {
	if l.Size == 0 {
		return AllocZeroSized(l)
	}
	return b.AllocNonZeroSized(l)
}

// alignUp rounds addr up to the next multiple of align, which must be
// a power of two.
func alignUp(addr, align uintptr) uintptr {
	mask := align - 1
	return (addr + mask) &^ mask
}
