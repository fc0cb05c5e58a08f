// Package rawio provides raw, fail-explicit I/O helpers.
package rawio

import "io"

// WriteFull writes all of p to w, looping over partial writes and
// transparently retrying interrupted writes (EINTR).
//
// Any other error is returned as-is; by then an unknown prefix of p has
// been written and the destination stream is in an indeterminate state.
// Callers must not assume atomicity.
func WriteFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if n > 0 {
			p = p[n:]
		}
		if err != nil {
			if isEINTR(err) {
				continue
			}
			return err
		}
		if n == 0 {
			return io.ErrNoProgress
		}
	}
	return nil
}
