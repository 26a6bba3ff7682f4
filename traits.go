package tempalloc

import "unsafe"

// Allocator is the capability set generic containers and algorithms bind to
// when they are polymorphic over their memory source. *TempAllocator
// implements it, so temporary scopes can substitute for a general-purpose
// allocator in container code.
type Allocator interface {
	AllocateNode(size, align uintptr) unsafe.Pointer
	AllocateArray(count, size, align uintptr) unsafe.Pointer
	DeallocateNode(p unsafe.Pointer, size, align uintptr)
	DeallocateArray(p unsafe.Pointer, count, size, align uintptr)
	MaxNodeSize() uintptr
	MaxArraySize() uintptr
	MaxAlignment() uintptr
	Stateful() bool
}

var _ Allocator = (*TempAllocator)(nil)

// AllocateNode allocates a single node of size bytes aligned to align.
// Callers that honor MaxNodeSize stay on the fast path; the precondition is
// checked only under the allocdebug build tag.
func (t *TempAllocator) AllocateNode(size, align uintptr) unsafe.Pointer {
	assertNodeSize(t, size)
	return t.Allocate(size, align)
}

// AllocateArray allocates count contiguous nodes of size bytes each.
// Overflow of count*size is the caller's responsibility.
func (t *TempAllocator) AllocateArray(count, size, align uintptr) unsafe.Pointer {
	return t.AllocateNode(count*size, align)
}

// DeallocateNode does nothing; memory is reclaimed in bulk when the handle
// is closed.
func (t *TempAllocator) DeallocateNode(unsafe.Pointer, uintptr, uintptr) {}

// DeallocateArray does nothing; memory is reclaimed in bulk when the handle
// is closed.
func (t *TempAllocator) DeallocateArray(unsafe.Pointer, uintptr, uintptr, uintptr) {}

// MaxNodeSize reports the bytes currently free in the stack's active chunk.
// It is a soft ceiling: a larger request still succeeds by chaining a new
// chunk, it just leaves the fast path.
func (t *TempAllocator) MaxNodeSize() uintptr {
	return uintptr(t.stack.Available())
}

// MaxArraySize reports the same ceiling as MaxNodeSize; there is no
// separate array limit.
func (t *TempAllocator) MaxArraySize() uintptr {
	return t.MaxNodeSize()
}

// MaxAlignment is unbounded; alignment handling is delegated entirely to
// the stack.
func (t *TempAllocator) MaxAlignment() uintptr {
	return ^uintptr(0)
}

// Stateful reports that this allocator carries per-instance state (its
// stack reference and marker). Generic code must propagate the instance it
// was given rather than treat handles as interchangeable.
func (t *TempAllocator) Stateful() bool {
	return true
}
