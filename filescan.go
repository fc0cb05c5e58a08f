package filescan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/unpackd/filescan/internal/fs"
	"github.com/unpackd/filescan/internal/visited"
)

// FileSet is an ordered collection of absolute paths to regular, non-empty
// files, in enumeration order. It is populated by a Collector and owned by
// the caller afterwards; it is not safe for concurrent mutation.
type FileSet struct {
	paths []string
}

// Len returns the number of files in the set.
func (s *FileSet) Len() int {
	return len(s.paths)
}

// Paths returns the collected paths in enumeration order.
// The returned slice is the set's backing storage; callers must not modify it.
func (s *FileSet) Paths() []string {
	return s.paths
}

// Collector enumerates filesystem trees and builds FileSets.
//
// A Collector is immutable after construction and safe for concurrent use;
// every Collect call walks with its own state.
type Collector struct {
	fs           fs.FileSystem
	logger       *Logger
	limiter      *rate.Limiter
	detectCycles bool
}

// New creates a Collector with the given options.
func New(opts ...Option) *Collector {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}
	return &Collector{
		fs:           o.fs,
		logger:       o.logger,
		limiter:      o.limiter,
		detectCycles: o.detectCycles,
	}
}

// Collect builds the FileSet for root.
//
// If root is a directory it is walked recursively: entries that cannot be
// stat'd and subtrees that cannot be read are logged and skipped, while
// non-regular and zero-length files are skipped silently. The walk fails
// only when root itself is unreadable or when it yields no files at all.
//
// If root is a regular non-empty file, the result contains exactly that
// path and no directory traversal happens. Any other root is rejected.
func (c *Collector) Collect(ctx context.Context, root string) (*FileSet, error) {
	if root == "" {
		return nil, ErrEmptyPath
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", root, err)
	}

	fi, err := c.fs.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", abs, err)
	}

	switch {
	case fi.IsDir():
		w := &walker{
			fs:      c.fs,
			logger:  c.logger.WithRoot(abs),
			limiter: c.limiter,
		}
		if c.detectCycles {
			w.seen = visited.NewSet()
			w.seen.Visit(fi)
		}

		set := &FileSet{}
		if err := w.walk(ctx, abs, set); err != nil {
			return nil, fmt.Errorf("walk %q: %w", abs, err)
		}
		if set.Len() == 0 {
			return nil, fmt.Errorf("%w under %q", ErrNoFiles, abs)
		}
		c.logger.LogCollect(ctx, abs, set.Len(), nil)
		return set, nil

	case fi.Mode().IsRegular():
		if fi.Size() == 0 {
			return nil, fmt.Errorf("%w: %q is empty", ErrNoFiles, abs)
		}
		c.logger.LogCollect(ctx, abs, 1, nil)
		return &FileSet{paths: []string{abs}}, nil

	default:
		return nil, &ErrNotCollectable{Path: abs, Mode: fi.Mode()}
	}
}

// CollectAll runs one enumeration per root in parallel and returns the
// resulting sets in root order. The first failing root cancels the rest.
func (c *Collector) CollectAll(ctx context.Context, roots ...string) ([]*FileSet, error) {
	g, ctx := errgroup.WithContext(ctx)

	sets := make([]*FileSet, len(roots))
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			set, err := c.Collect(ctx, root)
			if err != nil {
				return fmt.Errorf("collect %q: %w", root, err)
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

// errAborted marks walk failures that abort the whole enumeration
// (context done, throttle deadline). They propagate through every level
// instead of being swallowed as per-subtree filesystem failures, so a
// caller's deadline can never masquerade as a successful partial scan.
var errAborted = errors.New("walk aborted")

// walker holds the per-walk state of a single Collect call.
type walker struct {
	fs      fs.FileSystem
	logger  *Logger
	limiter *rate.Limiter
	seen    *visited.Set // nil when cycle detection is off
}

// walk enumerates dir and appends every regular non-empty file to set.
// It returns an error only when dir itself cannot be read or the walk is
// aborted; per-entry failures are logged and skipped.
func (w *walker) walk(ctx context.Context, dir string, set *FileSet) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", errAborted, err)
		}
		path := filepath.Join(dir, entry.Name())

		if w.limiter != nil {
			// Wait fails without touching ctx.Err() when the required
			// delay alone would overrun the deadline.
			if err := w.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("%w: %w", errAborted, err)
			}
		}

		// Stat, not lstat: symlinks are classified by their target.
		fi, err := w.fs.Stat(path)
		if err != nil {
			w.logger.WithPath(path).WarnContext(ctx, "cannot stat entry, skipping",
				"error", err,
			)
			continue
		}

		if fi.IsDir() {
			if w.seen != nil && !w.seen.Visit(fi) {
				w.logger.WithPath(path).WarnContext(ctx, "directory already visited, skipping cycle")
				continue
			}
			if err := w.walk(ctx, path, set); err != nil {
				if errors.Is(err, errAborted) {
					return err
				}
				w.logger.WithPath(path).ErrorContext(ctx, "failed to process directory, continuing",
					"error", err,
				)
			}
			continue
		}

		if !fi.Mode().IsRegular() {
			w.logger.WithPath(path).DebugContext(ctx, "not a regular file, skipping")
			continue
		}
		if fi.Size() == 0 {
			w.logger.WithPath(path).DebugContext(ctx, "empty file, skipping")
			continue
		}

		set.paths = append(set.paths, path)
		w.logger.WithPath(path).DebugContext(ctx, "added input file")
	}

	return nil
}
