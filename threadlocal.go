package tempalloc

import (
	"runtime"
	"strconv"
	"sync"
)

// Each goroutine gets one lazily-created MemoryStack, so every handle
// created with New on that goroutine shares the same stack and nested
// scopes unwind in LIFO order. The registry lock is only taken when a
// handle is created or the stack is released, never on the allocation path.
var (
	stacksMu sync.Mutex
	stacks   = map[uint64]*MemoryStack{}
)

// currentStack returns the calling goroutine's stack, creating it on first
// use. The stack is retained after the last handle closes so successive
// scopes on one goroutine reuse the same memory.
func currentStack() *MemoryStack {
	id := goroutineID()
	stacksMu.Lock()
	s := stacks[id]
	if s == nil {
		s = NewMemoryStack(DefaultChunkSize)
		stacks[id] = s
	}
	stacksMu.Unlock()
	return s
}

// ReleaseThreadStack releases the calling goroutine's memory stack and
// removes it from the registry. Go has no goroutine-exit hook, so a
// goroutine that used New and is about to exit calls this to return the
// stack's memory; any still-open handles on the goroutine are invalidated.
// Calling it on a goroutine without a stack is a no-op.
func ReleaseThreadStack() {
	id := goroutineID()
	stacksMu.Lock()
	s := stacks[id]
	delete(stacks, id)
	stacksMu.Unlock()
	if s != nil {
		s.Release()
	}
}

// goroutineID extracts the caller's goroutine id from the runtime stack
// header, which reads "goroutine <id> [running]:".
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	const prefix = len("goroutine ")
	for i := prefix; i < n; i++ {
		if buf[i] == ' ' {
			id, err := strconv.ParseUint(string(buf[prefix:i]), 10, 64)
			if err != nil {
				panic("tempalloc: cannot parse goroutine id: " + err.Error())
			}
			return id
		}
	}
	panic("tempalloc: cannot parse goroutine id")
}
