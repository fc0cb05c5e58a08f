//go:build windows

package visited

import "os"

// Windows file identities (volume serial + file index) are only available
// through an open handle, not through os.FileInfo. Cycle detection is
// therefore a no-op here; the walk behaves like the plain traversal.
func fileID(fi os.FileInfo) (dev, ino uint64, ok bool) {
	return 0, 0, false
}
