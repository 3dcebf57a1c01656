package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegistersAll(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "legalai")
	require.NotNil(t, m)

	m.StrategyAttempts.WithLabelValues("remote").Inc()
	m.StrategyFallbacks.WithLabelValues("remote", "unavailable").Inc()
	m.CacheEvents.WithLabelValues("miss").Inc()
	m.ModelAccuracy.WithLabelValues("clause_type").Set(0.91)
	m.ModelReloads.WithLabelValues("clause_type", "success").Inc()
	m.ObserveAnalysis("rule", 120*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"legalai_analyzer_strategy_attempts_total",
		"legalai_analyzer_strategy_fallbacks_total",
		"legalai_analyzer_analyses_total",
		"legalai_analyzer_analysis_duration_seconds",
		"legalai_cache_events_total",
		"legalai_models_heldout_accuracy",
		"legalai_models_reloads_total",
	} {
		assert.True(t, names[want], "missing metric family %s", want)
	}

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("rule")))
	assert.Equal(t, float64(0.91),
		testutil.ToFloat64(m.ModelAccuracy.WithLabelValues("clause_type")))
}

func TestNewNopMetricsIsUsable(t *testing.T) {
	m := NewNopMetrics()
	assert.NotPanics(t, func() {
		m.ObserveAnalysis("statistical", time.Millisecond)
		m.CacheEvents.WithLabelValues("hit").Inc()
	})
}
