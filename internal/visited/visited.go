// Package visited tracks directory identities seen during a walk.
//
// The walker classifies entries with stat rather than lstat, so a symlink
// pointing back into an ancestor directory forms a traversal cycle. A Set
// remembers every (device, inode) pair it has been shown and lets the
// walker skip directories it has already entered. Inode membership is held
// in one roaring bitmap per device, which stays compact even for scans
// touching millions of directories.
//
// On platforms without stable file identities Visit always reports
// "not seen", so the walk degrades to the plain stat-based traversal.
package visited

import (
	"os"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set records directory identities. It is not safe for concurrent use;
// each walk owns its own Set.
type Set struct {
	devs map[uint64]*roaring64.Bitmap
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{devs: make(map[uint64]*roaring64.Bitmap)}
}

// Visit records the identity of fi. It returns true when the identity was
// not seen before (or cannot be determined on this platform) and false
// when it was, in which case the caller should skip the directory.
func (s *Set) Visit(fi os.FileInfo) bool {
	dev, ino, ok := fileID(fi)
	if !ok {
		return true
	}
	b := s.devs[dev]
	if b == nil {
		b = roaring64.New()
		s.devs[dev] = b
	}
	if b.Contains(ino) {
		return false
	}
	b.Add(ino)
	return true
}

// Len returns the number of recorded identities.
func (s *Set) Len() int {
	n := uint64(0)
	for _, b := range s.devs {
		n += b.GetCardinality()
	}
	return int(n)
}
