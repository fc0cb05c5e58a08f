package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureAbort replaces the abort hook and records invocations instead of
// exiting. Restored via t.Cleanup.
func captureAbort(t *testing.T) *int {
	t.Helper()
	calls := 0
	prev := abort
	abort = func(format string, args ...any) {
		calls++
	}
	t.Cleanup(func() { abort = prev })
	return &calls
}

func TestAlloc(t *testing.T) {
	b := Alloc(16)
	assert.Len(t, b, 16)

	assert.Empty(t, Alloc(0))
}

func TestAlloc_InvalidSizeAborts(t *testing.T) {
	calls := captureAbort(t)
	Alloc(-1)
	assert.Equal(t, 1, *calls)
}

func TestZeroAlloc(t *testing.T) {
	b := ZeroAlloc(32)
	require.Len(t, b, 32)
	for _, v := range b {
		assert.Zero(t, v)
	}
}

func TestGrow_PreservesPrefix(t *testing.T) {
	b := []byte("abcd")
	g := Grow(b, 8)
	require.Len(t, g, 8)
	assert.Equal(t, []byte("abcd"), g[:4])

	// Shrinking preserves the new-size prefix.
	s := Grow(g, 2)
	assert.Equal(t, []byte("ab"), s)
}

func TestGrow_InvalidSizeAborts(t *testing.T) {
	calls := captureAbort(t)
	Grow(nil, -5)
	assert.Equal(t, 1, *calls)
}

func TestGrowZeroed_ZeroesTail(t *testing.T) {
	// Build a slice whose spare capacity holds stale bytes, so the
	// explicit clear in GrowZeroed is observable.
	backing := []byte("abcdefgh")
	b := backing[:4]

	g := GrowZeroed(b, 4, 8)
	require.Len(t, g, 8)
	assert.Equal(t, []byte("abcd"), g[:4])
	assert.Equal(t, []byte{0, 0, 0, 0}, g[4:])
}

func TestGrowZeroed_InvalidRangeAborts(t *testing.T) {
	calls := captureAbort(t)
	GrowZeroed([]byte("abcd"), 4, 2)
	assert.Equal(t, 1, *calls)
}

func TestAllocAligned(t *testing.T) {
	b := AllocAligned(100)
	require.Len(t, b, 100)

	addr := uintptr(unsafe.Pointer(&b[0]))
	assert.Zero(t, addr%Alignment, "buffer must start at a 64-byte boundary")

	assert.Nil(t, AllocAligned(0))
}
