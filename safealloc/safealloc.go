// Package safealloc wraps an allocator.Allocator behind a mutex for
// callers that need concurrent access. The core allocator package is
// deliberately single-threaded; this is the opt-in thread-safe layer
// on top of it.
package safealloc

import (
	"sync"

	"github.com/sachinsulkunte/segfit/allocator"
	"github.com/sachinsulkunte/segfit/internal/alloglog"
)

// Allocator wraps an allocator.Allocator behind a mutex, serializing
// Init, Allocate, and Release across goroutines. It adds no semantics
// of its own beyond mutual exclusion.
type Allocator struct {
	mu    sync.Mutex
	inner allocator.Allocator
}

// New returns a ready-to-Init Allocator.
func New() *Allocator {
	return &Allocator{}
}

// SetLogger attaches a diagnostic logger to the wrapped allocator.
func (a *Allocator) SetLogger(l *alloglog.Logger) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inner.SetLogger(l)
}

// SetRecorder attaches an observability recorder to the wrapped
// allocator.
func (a *Allocator) SetRecorder(r allocator.Recorder) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inner.SetRecorder(r)
}

// Init configures the wrapped allocator. See (*allocator.Allocator).Init.
func (a *Allocator) Init(sizes []uint64, count int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.Init(sizes, count)
}

// Allocate serves a request from the wrapped allocator. See
// (*allocator.Allocator).Allocate.
func (a *Allocator) Allocate(n uint64) (uint64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.Allocate(n)
}

// Release returns a block to the wrapped allocator. See
// (*allocator.Allocator).Release.
func (a *Allocator) Release(p uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inner.Release(p)
}

// Stats snapshots the wrapped allocator's pools.
func (a *Allocator) Stats() []allocator.PoolStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.Stats()
}

// Misses returns the number of Allocate calls since the last Init for
// which no pool qualified.
func (a *Allocator) Misses() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.Misses()
}

// RejectedReleases returns the number of Release calls since the last
// Init that were no-ops.
func (a *Allocator) RejectedReleases() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.RejectedReleases()
}
