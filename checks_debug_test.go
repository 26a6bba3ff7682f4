//go:build allocdebug

package tempalloc

import "testing"

func TestAllocateNodeSizeCheck(t *testing.T) {
	s := NewMemoryStack(1024)
	tmp := NewOn(s)
	defer tmp.Close()

	// Within the advertised ceiling: must not panic
	p := tmp.AllocateNode(512, 8)
	if p == nil {
		t.Fatal("AllocateNode(512) returned nil")
	}

	// Beyond the ceiling: the debug build enforces the precondition
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when node size exceeds MaxNodeSize")
		}
	}()
	tmp.AllocateNode(4096, 8)
}
