package filescan

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrEmptyPath is returned when no input path was specified.
	ErrEmptyPath = errors.New("no input path specified")

	// ErrNoFiles is returned when a scan completes without finding any
	// regular, non-empty file.
	ErrNoFiles = errors.New("no regular non-empty files found")
)

// ErrNotCollectable indicates a root path that is neither a directory nor a
// regular file (socket, device, fifo, ...).
type ErrNotCollectable struct {
	Path string
	Mode fs.FileMode
}

func (e *ErrNotCollectable) Error() string {
	return fmt.Sprintf("%q is not a regular file or a directory (mode %s)", e.Path, e.Mode)
}
