package allocator

import "github.com/sachinsulkunte/segfit/internal/alloglog"

// defaultAllocator is the package-level singleton, for callers that
// want a process-wide allocator without threading state through their
// own types. Tests should prefer the value type (see Allocator) for
// isolation; use the package functions below only when a single
// process-wide instance is actually what's wanted.
var defaultAllocator Allocator

// Init configures the package-level default allocator. See
// (*Allocator).Init.
func Init(sizes []uint64, count int) bool {
	return defaultAllocator.Init(sizes, count)
}

// Allocate serves a request from the package-level default allocator.
// See (*Allocator).Allocate.
func Allocate(n uint64) (uint64, bool) {
	return defaultAllocator.Allocate(n)
}

// Release returns a block to the package-level default allocator. See
// (*Allocator).Release.
func Release(p uint64) {
	defaultAllocator.Release(p)
}

// Stats snapshots the package-level default allocator's pools.
func Stats() []PoolStats {
	return defaultAllocator.Stats()
}

// SetLogger attaches a diagnostic logger to the package-level default
// allocator.
func SetLogger(l *alloglog.Logger) {
	defaultAllocator.SetLogger(l)
}

// SetRecorder attaches an observability recorder to the package-level
// default allocator.
func SetRecorder(r Recorder) {
	defaultAllocator.SetRecorder(r)
}
