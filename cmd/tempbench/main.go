package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/fulldump/goconfig"
	"github.com/go-faker/faker/v4"
	"github.com/golang/snappy"

	"github.com/memstack/tempalloc"
)

type Config struct {
	ChunkSize int  `usage:"memory stack chunk size in bytes (0 = default)"`
	Records   int  `usage:"records per batch"`
	Batches   int  `usage:"number of batches to process"`
	Workers   int  `usage:"number of concurrent workers"`
	Verbose   bool `usage:"print per-worker stack metrics"`
}

var (
	titleColor  = color.New(color.FgHiCyan, color.Bold)
	metricColor = color.New(color.FgHiYellow)
	okColor     = color.New(color.FgHiGreen)
)

func main() {
	c := Config{
		ChunkSize: 0,
		Records:   1000,
		Batches:   100,
		Workers:   4,
	}
	goconfig.Read(&c)

	if c.Records <= 0 || c.Batches <= 0 || c.Workers <= 0 {
		log.Fatalf("records, batches and workers must be positive (got %d/%d/%d)", c.Records, c.Batches, c.Workers)
	}

	titleColor.Println("tempbench: scoped allocation under a compression workload")
	fmt.Printf("workers=%d batches=%d records=%d chunk=%d\n\n", c.Workers, c.Batches, c.Records, c.ChunkSize)

	records := seedRecords(c.Records)

	start := time.Now()
	var wg sync.WaitGroup
	results := make([]workerResult, c.Workers)
	for w := 0; w < c.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w] = runWorker(c, records)
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	var in, out int
	for w, r := range results {
		in += r.bytesIn
		out += r.bytesOut
		if c.Verbose {
			metricColor.Printf("worker %d: in=%d out=%d chunks=%d capacity=%d utilization=%.2f%%\n",
				w, r.bytesIn, r.bytesOut, r.metrics.NumChunks, r.metrics.Capacity, r.metrics.Utilization*100)
		}
	}

	fmt.Println()
	metricColor.Printf("compressed %d -> %d bytes (%.2f%%)\n", in, out, float64(out)/float64(in)*100)
	okColor.Printf("done in %s (%.0f batches/s)\n", elapsed, float64(c.Batches*c.Workers)/elapsed.Seconds())
}

type workerResult struct {
	bytesIn  int
	bytesOut int
	metrics  tempalloc.StackMetrics
}

// runWorker compresses every batch inside its own temporary scope: the
// batch buffer and the snappy destination live only until the scope closes,
// so the stack's memory is reused across all batches.
func runWorker(c Config, records [][]byte) workerResult {
	s := tempalloc.NewMemoryStack(c.ChunkSize)
	defer s.Release()

	var res workerResult
	for b := 0; b < c.Batches; b++ {
		res.bytesIn, res.bytesOut = compressBatch(s, records, res.bytesIn, res.bytesOut)
	}
	res.metrics = s.Metrics()
	return res
}

func compressBatch(s *tempalloc.MemoryStack, records [][]byte, in, out int) (int, int) {
	tmp := tempalloc.NewOn(s)
	defer tmp.Close()

	size := 0
	for _, r := range records {
		size += len(r)
	}

	batch := tmp.AllocBytes(size)
	n := 0
	for _, r := range records {
		n += copy(batch[n:], r)
	}

	dst := tmp.AllocBytes(snappy.MaxEncodedLen(size))
	compressed := snappy.Encode(dst, batch)
	return in + size, out + len(compressed)
}

func seedRecords(n int) [][]byte {
	records := make([][]byte, n)
	for i := range records {
		records[i] = []byte(faker.Word() + " " + faker.Sentence())
	}
	return records
}
