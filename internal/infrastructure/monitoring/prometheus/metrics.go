// Package prometheus exposes the analysis pipeline's operational metrics.
// All metrics live on a caller-supplied registry so tests and embedders can
// isolate their collectors; nothing registers globally.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles every collector the pipeline emits.
type Metrics struct {
	// StrategyAttempts counts classification attempts per strategy.
	StrategyAttempts *prometheus.CounterVec

	// StrategyFallbacks counts silent handoffs from one strategy to the next,
	// labelled by the strategy that failed and the failure reason.
	StrategyFallbacks *prometheus.CounterVec

	// AnalysesTotal counts completed analyses by the strategy that finally
	// produced the result, including "demo" for degraded output.
	AnalysesTotal *prometheus.CounterVec

	// AnalysisDuration observes end-to-end analysis latency in seconds.
	AnalysisDuration prometheus.Histogram

	// CacheEvents counts analysis-cache hits, misses and errors.
	CacheEvents *prometheus.CounterVec

	// ModelAccuracy reports the held-out accuracy of the currently loaded
	// artifact, labelled by task.
	ModelAccuracy *prometheus.GaugeVec

	// ModelReloads counts artifact hot reloads by task and outcome.
	ModelReloads *prometheus.CounterVec
}

// NewMetrics constructs and registers all collectors on reg under the given
// namespace.  Registration failures panic via MustRegister; duplicate
// registration is a programming error.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		StrategyAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analyzer",
			Name:      "strategy_attempts_total",
			Help:      "Classification attempts per strategy.",
		}, []string{"strategy"}),
		StrategyFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analyzer",
			Name:      "strategy_fallbacks_total",
			Help:      "Silent fallbacks from a failed strategy to the next tier.",
		}, []string{"from", "reason"}),
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analyzer",
			Name:      "analyses_total",
			Help:      "Completed analyses by producing strategy.",
		}, []string{"strategy"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analyzer",
			Name:      "analysis_duration_seconds",
			Help:      "End-to-end document analysis latency.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60},
		}),
		CacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "events_total",
			Help:      "Analysis cache hits, misses and errors.",
		}, []string{"event"}),
		ModelAccuracy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "models",
			Name:      "heldout_accuracy",
			Help:      "Held-out accuracy reported by the loaded artifact.",
		}, []string{"task"}),
		ModelReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "models",
			Name:      "reloads_total",
			Help:      "Artifact reloads by task and outcome.",
		}, []string{"task", "outcome"}),
	}

	reg.MustRegister(
		m.StrategyAttempts,
		m.StrategyFallbacks,
		m.AnalysesTotal,
		m.AnalysisDuration,
		m.CacheEvents,
		m.ModelAccuracy,
		m.ModelReloads,
	)
	return m
}

// NewNopMetrics constructs a Metrics whose collectors are live but attached to
// a throwaway registry.  Intended for tests and for embedders that disable
// metrics.
func NewNopMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry(), "legalai")
}

// ObserveAnalysis records one completed analysis.
func (m *Metrics) ObserveAnalysis(strategy string, elapsed time.Duration) {
	m.AnalysesTotal.WithLabelValues(strategy).Inc()
	m.AnalysisDuration.Observe(elapsed.Seconds())
}
