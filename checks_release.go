//go:build !allocdebug

package tempalloc

func assertNodeSize(*TempAllocator, uintptr) {}
