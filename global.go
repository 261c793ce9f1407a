package allocbench

import "unsafe"

// Global serves every request independently from the Go heap. It is
// stateless: requests may land in unrelated memory regions, and the
// runtime reclaims them once the addresses are no longer referenced.
type Global struct{}

// NewGlobal returns the heap backend.
func NewGlobal() Global { return Global{} }

// AllocNonZeroSized reserves l.Size bytes on the heap. The buffer is
// padded by the alignment so an aligned address always exists inside
// it, then the address is rounded up to the first aligned byte.
func (Global) AllocNonZeroSized(l Layout) (uintptr, error) {
	buf := make([]byte, l.Size+l.Align-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	return alignUp(addr, uintptr(l.Align)), nil
}
