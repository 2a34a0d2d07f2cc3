// Package allocator implements a fixed-footprint, segregated-fit block
// memory allocator. A single contiguous byte region is partitioned at
// Init time into a small number of pools, each dedicated to one block
// size; Allocate and Release then service callers from the appropriate
// pool in constant time after a bounded linear pool scan.
//
// The package is strictly single-threaded: concurrent calls to Init,
// Allocate, or Release from different goroutines are a data race and
// must be serialized by the caller (see the safealloc package for a
// mutex-guarded wrapper).
package allocator

import "github.com/sachinsulkunte/segfit/internal/alloglog"

const (
	// HeapSize is the total size in bytes of the backing region H.
	HeapSize = 65536

	// MaxPools is the hard upper bound on the number of configured pools.
	MaxPools = 5

	// linkWidth is the width in bytes of the intrusive free-list link
	// stored in the first word of every free block. Every configured
	// block size must be at least this wide.
	linkWidth = 8

	// nullAddr is the sentinel meaning "no address" for free_head and
	// for the free-list links. A failed Allocate does not return it: it
	// returns (0, false).
	nullAddr = ^uint64(0)
)

// pool is one descriptor record: a disjoint sub-range of the backing
// region dedicated to blocks of a single size.
type pool struct {
	blockSize uint64
	start     uint64
	end       uint64
	max       uint64
	allocated uint64
	freeHead  uint64 // nullAddr when empty

	// Observability-only counters. Reading or writing these never
	// affects selection, dispatch, or any allocator invariant.
	hits         uint64
	fallbackHits uint64
	releases     uint64
}

// Recorder receives observability events from an Allocator. It is an
// optional side channel; a nil Recorder means no metrics are emitted.
// See internal/metrics for the Prometheus-backed implementation.
type Recorder interface {
	ObserveAllocate(blockSize uint64, fallback bool)
	ObserveAllocateMiss()
	ObserveRelease(blockSize uint64)
	ObserveReleaseRejected()
}

// Allocator is the value-type form of the allocator: all state lives in
// the struct, so independent instances never interfere with each other.
// Tests should prefer this form over the package-level singleton for
// isolation.
type Allocator struct {
	heap        [HeapSize]byte
	pools       [MaxPools]pool
	count       int
	initialized bool

	log      *alloglog.Logger
	recorder Recorder

	// Global observability counters, mirrored into the Recorder when one
	// is attached. Never consulted by selection or dispatch.
	misses           uint64
	rejectedReleases uint64
}

// SetLogger attaches a diagnostic logger. A nil logger disables logging;
// this is the default.
func (a *Allocator) SetLogger(l *alloglog.Logger) {
	a.log = l
}

// SetRecorder attaches an observability recorder. A nil recorder
// disables metrics; this is the default.
func (a *Allocator) SetRecorder(r Recorder) {
	a.recorder = r
}
