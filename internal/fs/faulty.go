package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrInjected is the default error returned by FaultyFS rules.
var ErrInjected = errors.New("injected fault error")

// Fault defines the failure behavior for paths matching a rule.
type Fault struct {
	FailStat    bool
	FailReadDir bool
	Err         error // defaults to ErrInjected
}

// FaultyFS is a FileSystem wrapper that injects errors for matching paths.
// It simulates unreadable entries and subtrees without touching real
// permissions, which keeps walker tests deterministic and root-proof.
type FaultyFS struct {
	FS FileSystem

	mu    sync.Mutex
	rules map[string]Fault // path substring -> fault
}

// NewFaultyFS creates a FaultyFS wrapping fs (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		rules: make(map[string]Fault),
	}
}

// AddRule injects fault for every path containing pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

func (f *FaultyFS) match(name string) (Fault, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pattern, fault := range f.rules {
		if strings.Contains(name, pattern) {
			return fault, true
		}
	}
	return Fault{}, false
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	if fault, ok := f.match(name); ok && fault.FailStat {
		return nil, faultErr(fault)
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadDir(name string) ([]os.DirEntry, error) {
	if fault, ok := f.match(name); ok && fault.FailReadDir {
		return nil, faultErr(fault)
	}
	return f.FS.ReadDir(name)
}

func faultErr(fault Fault) error {
	if fault.Err != nil {
		return fault.Err
	}
	return ErrInjected
}
