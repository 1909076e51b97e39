package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterQueries.WithLabelValues("total weight", "ok").Inc()
	m.CounterQueryCache.WithLabelValues("total weight", "hit").Add(2)
	m.GaugeWorkouts.Set(6)
	m.HistQueryDuration.WithLabelValues("total weight").Observe(0.0002)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterQueries.WithLabelValues("total weight", "ok")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterQueryCache.WithLabelValues("total weight", "hit")))
	assert.Equal(t, float64(6), testutil.ToFloat64(m.GaugeWorkouts))

	count, err := testutil.GatherAndCount(reg, "liftstats_test_query_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewManager_SameRegistryTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewManager("liftstats", "main", reg)
	assert.Panics(t, func() {
		NewManager("liftstats", "main", reg)
	})
	assert.NotPanics(t, func() {
		NewManager("liftstats", "other", reg)
	})
}

func TestSetupPrometheus(t *testing.T) {
	extra := prometheus.NewCounter(prometheus.CounterOpts{Name: "liftstats_extra_total"})
	reg := SetupPrometheus(extra)
	extra.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "liftstats_extra_total")
	assert.Contains(t, names, "go_goroutines")
	assert.Contains(t, names, "go_build_info")
}
