// Package mmap provides memory-mapped file access for zero-copy reads.
//
// # Overview
//
// Memory mapping presents a file's contents as a directly addressable byte
// region without an explicit read-into-buffer copy. Input files discovered
// by the collector are opened through this package; parsers then walk the
// mapped bytes in place.
//
// The mapping is private copy-on-write with read+write protection: a parser
// may patch bytes in its in-memory copy (endianness fixups, in-place
// decryption) without ever touching the backing file.
//
// # Usage
//
//	m, err := mmap.Open("image.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()            // zero-copy view, mutable, never flushed
//	region, _ := m.Region(off, n) // view of one section
//	m.Advise(mmap.AccessSequential)
//
// The Mapping owns both the mapped bytes and the open descriptor; Close
// releases the two together and is safe to call more than once. Callers
// should pair every successful Open with a deferred Close.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_PRIVATE, madvise(2) hints
//   - Windows: CreateFileMapping/MapViewOfFile with FILE_MAP_COPY (advise is a no-op)
package mmap
