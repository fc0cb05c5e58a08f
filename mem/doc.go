// Package mem provides fail-fast buffer allocation primitives.
//
// # Failure Policy
//
// Allocation failure has no degraded mode anywhere in this system, so it
// is not surfaced as an error: invalid requests terminate the process
// through a single abort path, and out-of-memory conditions are terminal
// at the Go runtime level. No caller checks allocation results.
//
// # Aligned Allocation
//
// AllocAligned provides 64-byte aligned buffers for SIMD-friendly consumers.
package mem
