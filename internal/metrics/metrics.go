// Package metrics exports Prometheus counters describing allocator
// activity. Collectors are package-level and registered exactly once
// via sync.Once, then incremented from the allocate/release call
// sites.
package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	poolHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segfit",
			Subsystem: "allocator",
			Name:      "pool_hits_total",
			Help:      "Number of Allocate() calls served by each pool, labeled by block size.",
		},
		[]string{"pool_block_size"},
	)
	poolFallbackHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segfit",
			Subsystem: "allocator",
			Name:      "pool_fallback_hits_total",
			Help:      "Number of Allocate() calls served by a pool larger than the smallest theoretical fit.",
		},
		[]string{"pool_block_size"},
	)
	allocateMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "segfit",
			Subsystem: "allocator",
			Name:      "allocate_misses_total",
			Help:      "Number of Allocate() calls for which no pool qualified.",
		},
	)
	poolReleases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segfit",
			Subsystem: "allocator",
			Name:      "pool_releases_total",
			Help:      "Number of Release() calls accepted by each pool, labeled by block size.",
		},
		[]string{"pool_block_size"},
	)
	releaseRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "segfit",
			Subsystem: "allocator",
			Name:      "release_rejections_total",
			Help:      "Number of Release() calls that were a no-op (foreign pointer or null).",
		},
	)
)

// Register registers every collector with the given registerer exactly
// once per process.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(poolHits, poolFallbackHits, allocateMisses, poolReleases, releaseRejections)
	})
}

// Recorder implements allocator.Recorder against the package-level
// collectors above.
type Recorder struct{}

// NewRecorder returns a Recorder; call Register once beforehand (or
// rely on RegisterDefault) so the collectors are attached to a
// registry.
func NewRecorder() Recorder {
	return Recorder{}
}

// RegisterDefault registers the collectors with the global default
// Prometheus registry.
func RegisterDefault() {
	Register(prometheus.DefaultRegisterer)
}

func (Recorder) ObserveAllocate(blockSize uint64, fallback bool) {
	label := strconv.FormatUint(blockSize, 10)
	poolHits.WithLabelValues(label).Inc()
	if fallback {
		poolFallbackHits.WithLabelValues(label).Inc()
	}
}

func (Recorder) ObserveAllocateMiss() {
	allocateMisses.Inc()
}

func (Recorder) ObserveRelease(blockSize uint64) {
	poolReleases.WithLabelValues(strconv.FormatUint(blockSize, 10)).Inc()
}

func (Recorder) ObserveReleaseRejected() {
	releaseRejections.Inc()
}
