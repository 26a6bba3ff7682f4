package tempalloc

// SizeInUse returns the total number of bytes currently allocated in the
// stack. This includes internal fragmentation due to alignment.
func (s *MemoryStack) SizeInUse() int {
	if s.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range s.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the stack.
func (s *MemoryStack) NumChunks() int {
	if s.chunks == nil {
		return 0
	}
	return len(s.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the stack.
func (s *MemoryStack) Capacity() int {
	if s.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range s.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the stack has no capacity.
func (s *MemoryStack) Utilization() float64 {
	capacity := s.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(s.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this stack.
func (s *MemoryStack) ChunkSize() int {
	return s.chunkSize
}

// Metrics returns a snapshot of stack statistics.
func (s *MemoryStack) Metrics() StackMetrics {
	return StackMetrics{
		SizeInUse:   s.SizeInUse(),
		Capacity:    s.Capacity(),
		NumChunks:   s.NumChunks(),
		ChunkSize:   s.ChunkSize(),
		Available:   s.Available(),
		Utilization: s.Utilization(),
	}
}

// StackMetrics contains statistical information about a memory stack.
type StackMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Available   int     // Bytes free in the current chunk
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
