package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecorderIncrementsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)

	r := NewRecorder()
	r.ObserveAllocate(64, false)
	r.ObserveAllocate(1024, true)
	r.ObserveAllocateMiss()
	r.ObserveRelease(64)
	r.ObserveReleaseRejected()

	metricFamilies, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := map[string]bool{}
	for _, mf := range metricFamilies {
		total := 0.0
		for _, m := range mf.GetMetric() {
			total += counterValue(m)
		}
		if total > 0 {
			found[mf.GetName()] = true
		}
	}

	for _, name := range []string{
		"segfit_allocator_pool_hits_total",
		"segfit_allocator_pool_fallback_hits_total",
		"segfit_allocator_allocate_misses_total",
		"segfit_allocator_pool_releases_total",
		"segfit_allocator_release_rejections_total",
	} {
		if !found[name] {
			t.Errorf("expected metric %s to have been incremented", name)
		}
	}
}

func counterValue(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	return 0
}
