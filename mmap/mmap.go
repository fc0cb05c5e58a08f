package mmap

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Mapping is a file mapped into memory as a private copy-on-write view.
// It owns both the mapped bytes and the underlying descriptor; Close
// releases the two together.
type Mapping struct {
	data   []byte
	size   int
	f      *os.File
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// Open maps the file at path into memory.
//
// The file is opened read-only but mapped with read+write access in a
// private (copy-on-write) mapping: consumers may mutate their in-memory
// copy freely, the backing file is never modified. The descriptor stays
// open for the lifetime of the Mapping so later operations on the file
// remain possible; Close unmaps the bytes and closes the descriptor.
//
// A zero-length file yields a valid Mapping with no mapped bytes.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap: open %q: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: stat %q: %w", path, err)
	}

	size := fi.Size()
	if size == 0 {
		return &Mapping{f: f}, nil
	}
	if size < 0 || int64(int(size)) != size {
		f.Close()
		return nil, ErrInvalidSize
	}

	// Platform-specific mapping
	data, unmapFunc, err := osMap(f, int(size))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: map %q: %w", path, err)
	}

	return &Mapping{
		data:  data,
		size:  int(size),
		f:     f,
		unmap: unmapFunc,
	}, nil
}

// Close unmaps the memory and closes the descriptor. It is idempotent.
// If both steps fail, the unmap error wins.
func (m *Mapping) Close() error {
	if m == nil || m.closed.Swap(true) {
		return nil // Already closed
	}
	var err error
	if m.unmap != nil && m.data != nil {
		err = m.unmap(m.data)
		m.data = nil
	}
	if m.f != nil {
		if closeErr := m.f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

// Bytes returns the mapped byte slice.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// File returns the underlying open file, or nil after Close.
// The descriptor is owned by the Mapping; callers must not close it.
func (m *Mapping) File() *os.File {
	if m.closed.Load() {
		return nil
	}
	return m.f
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (n int, err error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
