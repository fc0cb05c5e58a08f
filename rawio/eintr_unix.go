//go:build unix

package rawio

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isEINTR reports whether err is an interrupted-syscall error. os.File
// retries these internally, but raw writers (pipes, custom fds) surface
// them to callers.
func isEINTR(err error) bool {
	return errors.Is(err, unix.EINTR)
}
