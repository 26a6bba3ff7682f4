package tempalloc

import "unsafe"

// TempAllocator serves short-lived allocations whose lifetime is bounded by
// a lexical scope. It captures the position of a MemoryStack when created
// and rewinds the stack to that position on Close, releasing every
// allocation made through it (and through any handle nested after it) in
// one step.
//
// Typical usage:
//
//	tmp := tempalloc.New()
//	defer tmp.Close()
//	buf := tmp.AllocBytes(4096)
//	... use buf only within this scope
//
// A TempAllocator is a single-owner resource: exactly one live handle holds
// the obligation to rewind a given marker. Move and Adopt transfer that
// obligation; copying a handle value is not supported. One handle must not
// be shared across goroutines, and nested handles on one goroutine must be
// closed in reverse creation order.
type TempAllocator struct {
	stack  *MemoryStack
	marker Marker
	unwind bool
}

// New returns a temporary allocator bound to the calling goroutine's memory
// stack, creating the stack on first use. The handle must stay on the
// goroutine that created it and should be closed with defer in the same
// function.
func New() *TempAllocator {
	return newTemp(currentStack())
}

// NewOn returns a temporary allocator scoped to an explicit caller-managed
// stack instead of the per-goroutine one.
func NewOn(s *MemoryStack) *TempAllocator {
	return newTemp(s)
}

func newTemp(s *MemoryStack) *TempAllocator {
	return &TempAllocator{stack: s, marker: s.Marker(), unwind: true}
}

// Allocate returns a pointer to size bytes aligned to align. align must be
// a power of two. The memory is released when the handle is closed; there
// is no per-allocation free.
func (t *TempAllocator) Allocate(size, align uintptr) unsafe.Pointer {
	return t.stack.Alloc(size, align)
}

// AllocBytes returns a []byte slice of length n valid until the handle is
// closed. Returns nil if n <= 0.
func (t *TempAllocator) AllocBytes(n int) []byte {
	return t.stack.AllocBytes(n)
}

// Close rewinds the stack to the position captured at creation, releasing
// everything allocated through this handle. Close is idempotent and is a
// no-op on a handle whose obligation was transferred away by Move or Adopt.
func (t *TempAllocator) Close() {
	if t.unwind {
		t.unwind = false
		t.stack.Unwind(t.marker)
	}
}

// Move transfers the rewind obligation to a fresh handle and returns it.
// The receiver becomes inert: closing it afterwards is a no-op, and
// destroying both handles rewinds the stack exactly once.
func (t *TempAllocator) Move() *TempAllocator {
	dst := &TempAllocator{stack: t.stack, marker: t.marker, unwind: t.unwind}
	t.unwind = false
	return dst
}

// Adopt replaces the receiver's scope with src's, the moving-assignment
// counterpart of Move. If the receiver still holds a live obligation it is
// honored first, exactly as if the receiver were closed and a new handle
// moved into its place. src is left inert.
func (t *TempAllocator) Adopt(src *TempAllocator) {
	if t.unwind {
		t.stack.Unwind(t.marker)
	}
	t.stack, t.marker, t.unwind = src.stack, src.marker, src.unwind
	src.unwind = false
}

// Stack returns the memory stack this handle allocates from, for capacity
// queries and metrics. The stack is shared with every other handle on the
// same goroutine; do not Unwind or Release it directly while handles are
// live.
func (t *TempAllocator) Stack() *MemoryStack {
	return t.stack
}
