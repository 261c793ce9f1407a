package allocbench

import (
	"errors"
	"unsafe"
)

// DefaultCapacity is the arena capacity used when none is given (64 KiB).
const DefaultCapacity = 1 << 16

// ErrArenaExhausted is returned when a request does not fit in the
// arena's remaining capacity.
var ErrArenaExhausted = errors.New("arena: capacity exhausted")

// Arena is a fixed-capacity bump allocator. One contiguous region is
// reserved up front; each allocation rounds the cursor up to the
// request's alignment and advances it by the request's size. There is
// no individual deallocation and no growth past the initial capacity:
// a request that does not fit fails with ErrArenaExhausted.
//
// Addresses handed out stay valid for the arena's lifetime. Not
// goroutine-safe; use SafeArena for concurrent access.
type Arena struct {
	buf    []byte
	base   uintptr // address of buf[0]
	offset uintptr // bytes consumed, including alignment padding
}

// NewArena reserves a region of capacity bytes. If capacity <= 0,
// DefaultCapacity is used.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	buf := make([]byte, capacity)
	return &Arena{
		buf:  buf,
		base: uintptr(unsafe.Pointer(&buf[0])),
	}
}

// AllocNonZeroSized bumps the cursor to serve a layout with Size > 0.
// Alignment padding counts against capacity.
func (a *Arena) AllocNonZeroSized(l Layout) (uintptr, error) {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
	addr := alignUp(a.base+a.offset, uintptr(l.Align))
	end := addr + uintptr(l.Size) - a.base
	if end > uintptr(len(a.buf)) {
		return 0, ErrArenaExhausted
	}
	a.offset = end
	return addr, nil
}

// Reset moves the cursor back to zero but keeps the region, so the
// arena can be reused without reallocating.
func (a *Arena) Reset() {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
	a.offset = 0
}

// Release drops the region and makes the arena unusable. Any
// subsequent allocation or Reset will panic.
func (a *Arena) Release() {
	a.buf = nil
	a.base = 0
	a.offset = 0
}
