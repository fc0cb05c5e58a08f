package filescan

import (
	"golang.org/x/time/rate"

	"github.com/unpackd/filescan/internal/fs"
)

type options struct {
	fs           fs.FileSystem
	logger       *Logger
	limiter      *rate.Limiter
	detectCycles bool
}

// Option configures Collector behavior.
type Option func(*options)

// WithLogger configures the logger used for walk diagnostics.
//
// If nil is passed, the default stderr text logger is kept.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFileSystem configures the filesystem the Collector enumerates.
//
// The default is the local filesystem. Tests inject fault-injecting
// implementations to simulate unreadable entries and subtrees.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithCycleDetection enables directory cycle detection.
//
// The walk follows symlinks (stat, not lstat), so a symlink pointing back
// into an ancestor directory would otherwise recurse forever. With cycle
// detection enabled the Collector tracks visited (device, inode) pairs and
// skips any directory it has already entered. Disabled by default; scans
// of untrusted trees should enable it.
func WithCycleDetection() Option {
	return func(o *options) {
		o.detectCycles = true
	}
}

// WithRateLimit throttles the walk to at most statsPerSecond stat calls
// per second. Useful when scanning large trees on shared or spinning
// storage. Zero or negative disables throttling (the default).
func WithRateLimit(statsPerSecond float64) Option {
	return func(o *options) {
		if statsPerSecond <= 0 {
			o.limiter = nil
			return
		}
		burst := int(statsPerSecond)
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(statsPerSecond), burst)
	}
}

func defaultOptions() *options {
	return &options{
		fs:     fs.Default,
		logger: NewLogger(nil),
	}
}
