package mmap

import "errors"

// AccessPattern hints the kernel about how a mapped file will be read.
type AccessPattern int

const (
	// AccessDefault applies no specific advice.
	AccessDefault AccessPattern = iota
	// AccessSequential expects a front-to-back scan, e.g. checksumming or
	// dumping a whole image.
	AccessSequential
	// AccessRandom expects scattered reads, e.g. chasing section offsets
	// through a container header.
	AccessRandom
	// AccessWillNeed expects the bytes to be touched shortly.
	AccessWillNeed
	// AccessDontNeed expects the bytes not to be revisited, letting the
	// kernel drop the pages early.
	AccessDontNeed
)

var (
	// ErrClosed is returned when accessing a mapping after Close.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when a file cannot be mapped because its
	// reported size is negative or exceeds the address space.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrOutOfBounds is returned when a requested region lies outside the
	// mapping.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
	// ErrInvalidOffset is returned for reads at a negative offset.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
