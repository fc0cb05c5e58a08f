package mem

import (
	"fmt"
	"os"
	"unsafe"
)

// abort terminates the process. It is the single exit point for the
// fail-fast policy and is swapped out by tests.
var abort = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "mem: fatal: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}

// Alloc returns a buffer of exactly size bytes. The contents are
// unspecified. An invalid size terminates the process; an out-of-memory
// condition is terminal at the runtime level. Callers never check for a
// nil result.
func Alloc(size int) []byte {
	if size < 0 {
		abort("alloc: invalid size %d", size)
		return nil
	}
	return make([]byte, size)
}

// ZeroAlloc is Alloc with all bytes guaranteed to be zero.
func ZeroAlloc(size int) []byte {
	b := Alloc(size)
	clear(b)
	return b
}

// Grow resizes buf to exactly newSize bytes, preserving the first
// min(len(buf), newSize) bytes. Bytes beyond the preserved prefix are
// unspecified. Same fail-fast policy as Alloc.
func Grow(buf []byte, newSize int) []byte {
	if newSize < 0 {
		abort("grow: invalid size %d", newSize)
		return nil
	}
	if newSize <= cap(buf) {
		return buf[:newSize]
	}
	nb := make([]byte, newSize)
	copy(nb, buf)
	return nb
}

// GrowZeroed is Grow with the added bytes [oldSize, newSize) explicitly
// zeroed. oldSize must not exceed newSize.
func GrowZeroed(buf []byte, oldSize, newSize int) []byte {
	if oldSize < 0 || newSize < oldSize {
		abort("growZeroed: invalid range [%d, %d)", oldSize, newSize)
		return nil
	}
	nb := Grow(buf, newSize)
	// Grow may have resliced within the old capacity, where the tail can
	// hold stale bytes.
	clear(nb[oldSize:newSize])
	return nb
}

// Alignment is the byte alignment used by AllocAligned (AVX-512 friendly).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size whose first
// byte sits at a 64-byte aligned address. Useful for buffers handed to
// SIMD-accelerated consumers.
//
// Note: slightly more memory than requested is allocated to find an
// aligned offset. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size < 0 {
		abort("allocAligned: invalid size %d", size)
		return nil
	}
	if size == 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}
