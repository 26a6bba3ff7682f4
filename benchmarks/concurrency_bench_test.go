package tempalloc_test

import (
	"sync"
	"testing"

	"github.com/memstack/tempalloc"
)

// BenchmarkConcurrencyPatterns measures scoped allocation across goroutines.
// There is no shared-stack mode: every goroutine owns its stack, so the only
// contention is the registry lookup inside New.
func BenchmarkConcurrencyPatterns(b *testing.B) {

	b.Run("PerGoroutineStack_Sequential", func(b *testing.B) {
		s := tempalloc.NewMemoryStack(1024 * 1024)
		defer s.Release()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tmp := tempalloc.NewOn(s)
			tmp.AllocBytes(64)
			tmp.Close()
		}
	})

	b.Run("PerGoroutineStack_Parallel", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			s := tempalloc.NewMemoryStack(1024 * 1024)
			defer s.Release()

			for pb.Next() {
				tmp := tempalloc.NewOn(s)
				tmp.AllocBytes(64)
				tmp.Close()
			}
		})
	})

	b.Run("RegistryFactory_Parallel", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			defer tempalloc.ReleaseThreadStack()

			for pb.Next() {
				tmp := tempalloc.New()
				tmp.AllocBytes(64)
				tmp.Close()
			}
		})
	})

	b.Run("FanOutWorkers", func(b *testing.B) {
		const workers = 8

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer tempalloc.ReleaseThreadStack()

					tmp := tempalloc.New()
					defer tmp.Close()
					for j := 0; j < 32; j++ {
						tmp.AllocBytes(128)
					}
				}()
			}
			wg.Wait()
		}
	})
}
