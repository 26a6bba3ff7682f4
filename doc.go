// Package tempalloc provides scope-bounded temporary allocation for Go,
// similar in spirit to alloca but portable and usable wherever an
// allocator-style interface is expected.
//
// # Overview
//
// A TempAllocator claims a contiguous region from a growable, per-goroutine
// memory stack and releases that region in one step when its scope ends,
// no matter how many individual allocations were made through it. This is
// aimed at hot loops and recursive algorithms that repeatedly allocate and
// free small transient buffers, where general-purpose heap allocation
// overhead and GC pressure are unacceptable.
//
// # Basic Usage
//
//	tmp := tempalloc.New()
//	defer tmp.Close()
//
//	// Allocate raw bytes
//	buf := tmp.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr := tempalloc.Alloc[MyStruct](tmp)
//	slice := tempalloc.AllocSlice[int](tmp, 100)
//
// Close rewinds the goroutine's stack to where it was when the handle was
// created; buf, ptr and slice are all invalid afterwards.
//
// # Scopes and Nesting
//
// Multiple handles may be open at once on one goroutine. They stack: an
// inner handle's position is always after an outer handle's, and handles
// must be closed in reverse creation order. Closing an outer handle also
// releases everything allocated through handles nested after it. The
// ordering is the caller's responsibility; pairing every New with a defer
// Close in the same function gets it right automatically.
//
// The rewind obligation is held by exactly one handle at a time. Move and
// Adopt transfer it; a handle whose obligation was transferred away is
// inert and its Close is a no-op.
//
// # Goroutine Affinity
//
// Each goroutine owns one lazily-created memory stack, shared by every
// handle New returns on that goroutine. A handle must never be used from
// another goroutine. Goroutines that are about to exit can call
// ReleaseThreadStack to return the stack's memory; NewOn binds a handle to
// an explicit caller-managed MemoryStack instead.
//
// # Allocator Capability
//
// *TempAllocator implements the Allocator interface, so generic containers
// that are polymorphic over an allocator can draw from a temporary scope.
// The Deallocate methods are deliberate no-ops: memory is reclaimed only
// when the owning handle closes.
//
// # Performance Characteristics
//
//   - Allocate: O(1), a bump of the stack cursor
//   - Close: O(chunks allocated in the scope)
//   - Chunk growth: amortized, transparent to callers
//
// # Important Notes
//
//   - Allocated memory is only valid until the owning handle is closed
//   - No individual deallocation - release happens in bulk at scope exit
//   - Out-of-memory is a termination-class failure (panic), never an error
//   - Memory is not zeroed unless using Alloc or the Zeroed variants
package tempalloc
