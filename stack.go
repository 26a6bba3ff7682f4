package tempalloc

import "unsafe"

// DefaultChunkSize is the default chunk size for new memory stacks (64 KiB).
const DefaultChunkSize = 1 << 16

// ptrAlign is the alignment applied to byte-slice allocations.
const ptrAlign = unsafe.Sizeof(uintptr(0))

// chunk is a single contiguous block within a MemoryStack.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Marker identifies a position within a MemoryStack. Capture one with
// MemoryStack.Marker and hand it back to Unwind to release everything
// allocated after it. A Marker is opaque and only meaningful to the stack
// that produced it.
type Marker struct {
	chunk  int
	offset uintptr
}

// MemoryStack is a growable chunked bump allocator with marker-based
// rollback. Allocation advances a cursor within the current chunk; when the
// chunk is exhausted a new one is chained, transparently to the caller.
// Unwind rolls the cursor back to a previously captured Marker and drops
// every chunk chained after it.
//
// A MemoryStack is owned by a single goroutine and is not safe for
// concurrent use. Handles created with New bind to a per-goroutine stack
// automatically; use NewMemoryStack plus NewOn for caller-managed stacks.
type MemoryStack struct {
	chunks       []chunk
	chunkSize    int
	current      int // index of currentChunk within chunks
	currentChunk *chunk
}

// NewMemoryStack creates a new MemoryStack with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewMemoryStack(chunkSize int) *MemoryStack {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	s := &MemoryStack{chunkSize: chunkSize}
	s.grow(chunkSize)
	return s
}

// Alloc returns a pointer to size bytes aligned to align, carved from the
// current chunk. align must be a power of two. If the current chunk lacks
// room, a new chunk is chained; resource exhaustion panics out of the
// runtime allocator and is not recoverable.
func (s *MemoryStack) Alloc(size, align uintptr) unsafe.Pointer {
	// Fast path: use cached current chunk
	if c := s.currentChunk; c != nil {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
		off := alignUp(base+c.offset, align) - base
		if off+size <= uintptr(len(c.buf)) {
			c.offset = off + size
			return unsafe.Add(unsafe.Pointer(unsafe.SliceData(c.buf)), off)
		}
	}
	return s.allocSlow(size, align)
}

// allocSlow handles allocation when the current chunk lacks capacity.
func (s *MemoryStack) allocSlow(size, align uintptr) unsafe.Pointer {
	s.panicIfReleased()

	// The slack guarantees the request fits even when the fresh chunk's
	// base address is misaligned for align.
	s.grow(int(size + align))

	c := s.currentChunk
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignUp(base, align) - base
	c.offset = off + size
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(c.buf)), off)
}

// AllocBytes returns a []byte slice of length n pointing into the stack,
// aligned to the pointer size. Returns nil if n <= 0. The caller must keep
// the stack reachable while the returned slice is in use.
func (s *MemoryStack) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := s.Alloc(uintptr(n), ptrAlign)
	return unsafe.Slice((*byte)(p), n)
}

// Marker captures the stack's current position. Allocations made after the
// capture are released by handing the marker back to Unwind.
func (s *MemoryStack) Marker() Marker {
	s.panicIfReleased()
	return Marker{chunk: s.current, offset: s.currentChunk.offset}
}

// Unwind rolls the stack back to m, releasing everything allocated since m
// was captured. Chunks chained after the marker's chunk are dropped for the
// garbage collector to reclaim.
func (s *MemoryStack) Unwind(m Marker) {
	s.panicIfReleased()
	if m.chunk >= len(s.chunks) {
		panic("tempalloc: unwind to a marker from a different stack state")
	}
	for i := m.chunk + 1; i < len(s.chunks); i++ {
		s.chunks[i] = chunk{}
	}
	s.chunks = s.chunks[:m.chunk+1]
	c := &s.chunks[m.chunk]
	c.offset = m.offset
	s.current = m.chunk
	s.currentChunk = c
}

// Available returns the number of bytes remaining in the current chunk.
// It is a soft ceiling: a larger allocation still succeeds by chaining a
// new chunk.
func (s *MemoryStack) Available() int {
	if s.chunks == nil {
		return 0
	}
	c := s.currentChunk
	return len(c.buf) - int(c.offset)
}

// EnsureCapacity ensures the current chunk has at least n free bytes.
// If not, it grows the stack with a new chunk.
func (s *MemoryStack) EnsureCapacity(n int) {
	s.panicIfReleased()
	if s.Available() < n {
		s.grow(n)
	}
}

// Reset resets allocation offsets to zero but keeps allocated chunks for
// reuse. Markers captured before a Reset are invalidated.
func (s *MemoryStack) Reset() {
	s.panicIfReleased()
	for i := range s.chunks {
		s.chunks[i].offset = 0
	}
	s.current = 0
	s.currentChunk = &s.chunks[0]
}

// Release drops all chunks and makes the stack unusable.
// Any subsequent operations will panic.
func (s *MemoryStack) Release() {
	s.chunks = nil
	s.currentChunk = nil
}

// grow appends a new chunk of at least min bytes.
func (s *MemoryStack) grow(min int) {
	size := s.chunkSize
	if min > size {
		size = min
	}
	buf := make([]byte, size)
	s.chunks = append(s.chunks, chunk{buf: buf, offset: 0})
	s.current = len(s.chunks) - 1
	s.currentChunk = &s.chunks[s.current]
}

// panicIfReleased panics if the stack has been released.
func (s *MemoryStack) panicIfReleased() {
	if s.chunks == nil {
		panic("tempalloc: use after Release()")
	}
}

// alignUp rounds x up to the next multiple of align (a power of two).
func alignUp(x, align uintptr) uintptr {
	mask := align - 1
	return (x + mask) &^ mask
}
