// Package fs provides filesystem abstractions for testability and fault injection.
//
// The walker only ever stats paths and lists directories, so [FileSystem]
// exposes exactly those two operations.
//
// # Implementations
//
//   - [LocalFS]: Production implementation using the standard os package
//   - [FaultyFS]: Test utility that injects stat/readdir failures per path pattern
//
// Production code should use fs.Default (which is [LocalFS]). Tests inject
// [FaultyFS] to simulate unreadable entries and subtrees:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("locked", fs.Fault{FailReadDir: true})
//	// walking a tree containing .../locked/... now skips that subtree
//
// # Design Notes
//
// The interface intentionally has no context.Context parameters. Local
// stat and readdir calls are fast and non-interruptible at the syscall
// level; cancellation lives in the walker's loop instead.
package fs
