//go:build windows

package rawio

// Windows write calls are not interruptible by signals.
func isEINTR(err error) bool {
	return false
}
