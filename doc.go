// Package filescan discovers input files for downstream binary-format
// tooling and provides the raw I/O primitives those tools build on.
//
// # Overview
//
// A Collector recursively enumerates a filesystem root and produces a
// FileSet: an ordered list of absolute paths to regular, non-empty files.
// Unreadable entries and failing subtrees are logged and skipped, so one
// bad entry never aborts a whole scan. Consumers then open each path via
// the mmap package for zero-copy access, use mem for auxiliary buffers,
// rawio for full-buffer writes, and hexdump for byte-level inspection.
//
// # Quick Start
//
//	ctx := context.Background()
//	c := filescan.New(filescan.WithLogger(filescan.NewTextLogger(slog.LevelInfo)))
//
//	set, err := c.Collect(ctx, "./firmware")
//	if err != nil {
//	    // empty directory, bad root, ...
//	}
//
//	for _, path := range set.Paths() {
//	    m, err := mmap.Open(path)
//	    if err != nil {
//	        continue
//	    }
//	    defer m.Close()
//	    parse(m.Bytes()) // private copy-on-write view of the file
//	}
//
// # Failure Model
//
// Filesystem failures are ordinary errors: a bad root, an empty scan or a
// failed mapping is reported to the caller. Memory allocation failures are
// not: the mem package treats them as unrecoverable and terminates the
// process, so no caller in this module checks allocation results.
//
// # Concurrency
//
// Collect is synchronous and walks one tree on the calling goroutine.
// A Collector is safe for concurrent use; CollectAll fans out one
// enumeration per root across goroutines.
package filescan
