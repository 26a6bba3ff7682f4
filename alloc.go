package tempalloc

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T valid until the handle is closed.
func Alloc[T any](t *TempAllocator) *T {
	var zero T
	p := t.Allocate(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	v := (*T)(p)
	*v = zero
	return v
}

// AllocZeroed is identical to Alloc - provided for API consistency.
func AllocZeroed[T any](t *TempAllocator) *T {
	return Alloc[T](t)
}

// AllocUninitialized returns a *T located in the scope without zeroing
// memory. This is faster than Alloc but the memory contents are undefined.
// Use with caution - ensure proper initialization before use.
func AllocUninitialized[T any](t *TempAllocator) *T {
	var zero T
	return (*T)(t.Allocate(unsafe.Sizeof(zero), unsafe.Alignof(zero)))
}

// AllocSlice allocates a slice of n elements of type T valid until the
// handle is closed. The elements are not initialized (contain garbage
// data). Returns nil if n <= 0.
func AllocSlice[T any](t *TempAllocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	p := t.Allocate(uintptr(n)*unsafe.Sizeof(zero), unsafe.Alignof(zero))
	return unsafe.Slice((*T)(p), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. This is slower than AllocSlice but ensures clean initialization.
func AllocSliceZeroed[T any](t *TempAllocator, n int) []T {
	s := AllocSlice[T](t, n)
	var zero T
	for i := range s {
		s[i] = zero
	}
	return s
}

// PtrAndKeepAlive returns v and calls runtime.KeepAlive on the handle's
// stack. This is useful to prevent the stack from being garbage collected
// while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](t *TempAllocator, v *T) *T {
	runtime.KeepAlive(t.stack)
	return v
}
