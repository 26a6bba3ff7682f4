package tempalloc_test

import (
	"testing"

	"github.com/go-faker/faker/v4"

	"github.com/memstack/tempalloc"
)

// BenchmarkWebServerScenarios simulates request-scoped workloads where every
// request opens a temporary scope and drops it on completion
func BenchmarkWebServerScenarios(b *testing.B) {

	// HTTP request handler simulation
	b.Run("HTTPRequestHandler", func(b *testing.B) {
		b.Run("Temp", func(b *testing.B) {
			s := tempalloc.NewMemoryStack(8192) // 8KB fast-path budget per request
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Each request gets its own scope on the shared stack
				tmp := tempalloc.NewOn(s)

				requestHeaders := tempalloc.AllocSlice[[2]int](tmp, 20) // header index pairs
				requestBody := tmp.AllocBytes(1024)                     // Request body buffer
				responseBody := tmp.AllocBytes(2048)                    // Response body buffer
				tempObjects := tempalloc.AllocSlice[int64](tmp, 50)     // Temporary processing data

				// Simulate some work
				for j := range requestHeaders {
					requestHeaders[j] = [2]int{j, j + 1}
				}
				requestBody[0] = 1
				responseBody[0] = 2
				tempObjects[0] = 3

				// Request complete - everything released at once
				tmp.Close()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				requestHeaders := make([][2]int, 20)
				requestBody := make([]byte, 1024)
				responseBody := make([]byte, 2048)
				tempObjects := make([]int64, 50)

				// Simulate some work
				for j := range requestHeaders {
					requestHeaders[j] = [2]int{j, j + 1}
				}
				requestBody[0] = 1
				responseBody[0] = 2
				tempObjects[0] = 3

				// Let GC clean up
			}
		})
	})

	// Text processing over realistic payloads
	b.Run("PayloadProcessing", func(b *testing.B) {
		payloads := make([][]byte, 64)
		for i := range payloads {
			payloads[i] = []byte(faker.Paragraph())
		}

		b.Run("Temp", func(b *testing.B) {
			s := tempalloc.NewMemoryStack(64 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				tmp := tempalloc.NewOn(s)
				for _, p := range payloads {
					buf := tmp.AllocBytes(len(p))
					copy(buf, p)
				}
				tmp.Close()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for _, p := range payloads {
					buf := make([]byte, len(p))
					copy(buf, p)
				}
			}
		})
	})

	// Parser-style recursion: every level of the tree gets a nested scope
	b.Run("RecursiveParser", func(b *testing.B) {
		words := make([]string, 32)
		for i := range words {
			words[i] = faker.Word()
		}

		b.Run("Temp", func(b *testing.B) {
			s := tempalloc.NewMemoryStack(64 * 1024)
			var parse func(depth int)
			parse = func(depth int) {
				tmp := tempalloc.NewOn(s)
				defer tmp.Close()
				for _, w := range words {
					buf := tmp.AllocBytes(len(w))
					copy(buf, w)
				}
				if depth > 0 {
					parse(depth - 1)
				}
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				parse(8)
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			var parse func(depth int)
			parse = func(depth int) {
				for _, w := range words {
					buf := make([]byte, len(w))
					copy(buf, w)
				}
				if depth > 0 {
					parse(depth - 1)
				}
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				parse(8)
			}
		})
	})
}
