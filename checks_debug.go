//go:build allocdebug

package tempalloc

import "fmt"

// assertNodeSize enforces the AllocateNode fast-path precondition in debug
// builds. Release builds compile it away entirely.
func assertNodeSize(t *TempAllocator, size uintptr) {
	if max := t.MaxNodeSize(); size > max {
		panic(fmt.Sprintf("tempalloc: node size %d exceeds max node size %d", size, max))
	}
}
