// Command poolctl is a human-facing demonstration harness: it drives
// Init/Allocate/Release against a configured pool layout and prints
// human-readable diagnostics.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sachinsulkunte/segfit/internal/alloglog"
	"github.com/sachinsulkunte/segfit/internal/metrics"
	"github.com/sachinsulkunte/segfit/safealloc"
)

func main() {
	sizesFlag := flag.String("sizes", "32,64,256,1024", "comma-separated pool block sizes, in descriptor order")
	workload := flag.String("workload", "demo", "workload to run: demo, lifo, fallback")
	verbose := flag.Bool("v", false, "enable debug-level logging")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "poolctl: %v\n", err)
		os.Exit(1)
	}

	level := alloglog.LevelInfo
	if *verbose {
		level = alloglog.LevelDebug
	}
	logger := alloglog.New(level, os.Stdout, os.Stderr)

	metrics.RegisterDefault()
	pool := safealloc.New()
	pool.SetLogger(logger)
	pool.SetRecorder(metrics.NewRecorder())

	if !pool.Init(sizes, len(sizes)) {
		fmt.Fprintln(os.Stderr, "poolctl: init failed, check -sizes against the heap and pool limits")
		os.Exit(1)
	}

	switch *workload {
	case "demo":
		runDemo(pool)
	case "lifo":
		runLIFO(pool)
	case "fallback":
		runFallback(pool)
	default:
		fmt.Fprintf(os.Stderr, "poolctl: unknown workload %q (want demo, lifo, fallback)\n", *workload)
		os.Exit(1)
	}

	printStats(pool)
}

func parseSizes(s string) ([]uint64, error) {
	var sizes []uint64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid block size %q: %v", part, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no block sizes supplied")
	}
	return sizes, nil
}

// runDemo allocates one block from each pool and releases them all.
func runDemo(pool *safealloc.Allocator) {
	var addrs []uint64
	for _, s := range pool.Stats() {
		addr, ok := pool.Allocate(s.BlockSize)
		if !ok {
			fmt.Printf("allocate(%s) failed\n", humanize.Bytes(s.BlockSize))
			continue
		}
		fmt.Printf("allocated %s at offset %d\n", humanize.Bytes(s.BlockSize), addr)
		addrs = append(addrs, addr)
	}
	for _, addr := range addrs {
		pool.Release(addr)
	}
}

// runLIFO allocates twice, releases the first, allocates again, and
// confirms the freed block is reused.
func runLIFO(pool *safealloc.Allocator) {
	sizes := pool.Stats()
	if len(sizes) == 0 {
		return
	}
	n := sizes[0].BlockSize
	p1, _ := pool.Allocate(n)
	p2, _ := pool.Allocate(n)
	pool.Release(p1)
	p3, _ := pool.Allocate(n)
	if p3 == p1 {
		fmt.Printf("LIFO reuse confirmed: p3 (%d) == p1 (%d), p2 was %d\n", p3, p1, p2)
	} else {
		fmt.Printf("LIFO reuse VIOLATED: p3=%d p1=%d p2=%d\n", p3, p1, p2)
	}
}

// runFallback fills the smallest qualifying pool, then confirms the
// next request overflows into the next larger pool.
func runFallback(pool *safealloc.Allocator) {
	stats := pool.Stats()
	if len(stats) < 2 {
		fmt.Println("fallback workload needs at least two pools")
		return
	}
	target := stats[0]
	for i := uint64(0); i < target.Max; i++ {
		if _, ok := pool.Allocate(target.BlockSize); !ok {
			fmt.Printf("unexpected allocation failure filling pool %d\n", target.Index)
			return
		}
	}
	addr, ok := pool.Allocate(target.BlockSize)
	if !ok {
		fmt.Println("fallback workload failed: no larger pool had capacity")
		return
	}
	fmt.Printf("overflow allocation landed at offset %d (pool %d is full, served from a larger pool)\n", addr, target.Index)
}

func printStats(pool *safealloc.Allocator) {
	fmt.Println()
	fmt.Println("pool statistics:")
	for _, s := range pool.Stats() {
		fmt.Printf("  pool %d: block_size=%-8s max=%-6d allocated=%-6d free_list=%-6d hits=%-6d fallback_hits=%-6d releases=%d\n",
			s.Index, humanize.Bytes(s.BlockSize), s.Max, s.Allocated, s.FreeListLen, s.Hits, s.FallbackHits, s.Releases)
	}
	fmt.Printf("misses=%d rejected_releases=%d\n", pool.Misses(), pool.RejectedReleases())
}
