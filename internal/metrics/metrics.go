// Package metrics holds the Prometheus instrumentation for the scoring
// engine. The registry is self-contained and injectable; exposition is left
// to the embedding application, which can serve Gatherer() however it likes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles all engine metrics on a dedicated Prometheus registry.
type Registry struct {
	// Evaluations counts completed evaluations by resulting rating.
	Evaluations *prometheus.CounterVec

	// EvaluationDuration tracks wall-clock time per evaluation in seconds.
	EvaluationDuration prometheus.Histogram

	// GatePenalties counts gate firings (non-zero penalties) by gate name.
	GatePenalties *prometheus.CounterVec

	// ModifierBonuses counts modifier firings by modifier name and sign.
	ModifierBonuses *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates and registers all engine metrics.
func NewRegistry() *Registry {
	r := &Registry{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketlens_evaluations_total",
				Help: "Total number of scoring evaluations by rating",
			},
			[]string{"rating"},
		),

		EvaluationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "marketlens_evaluation_duration_seconds",
				Help:    "Duration of a single scoring evaluation in seconds",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
			},
		),

		GatePenalties: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketlens_gate_penalties_total",
				Help: "Total number of non-zero gate penalties by gate",
			},
			[]string{"gate"},
		),

		ModifierBonuses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketlens_modifier_adjustments_total",
				Help: "Total number of non-zero modifier adjustments by modifier and sign",
			},
			[]string{"modifier", "sign"},
		),

		registry: prometheus.NewRegistry(),
	}

	r.registry.MustRegister(
		r.Evaluations,
		r.EvaluationDuration,
		r.GatePenalties,
		r.ModifierBonuses,
	)

	return r
}

// Gatherer exposes the underlying registry for exposition or testing.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// ObserveEvaluation records one completed evaluation.
func (r *Registry) ObserveEvaluation(rating string, seconds float64) {
	if r == nil {
		return
	}
	r.Evaluations.WithLabelValues(rating).Inc()
	r.EvaluationDuration.Observe(seconds)
}

// ObserveGate records a fired gate penalty.
func (r *Registry) ObserveGate(gate string) {
	if r == nil {
		return
	}
	r.GatePenalties.WithLabelValues(gate).Inc()
}

// ObserveModifier records a fired modifier with its sign.
func (r *Registry) ObserveModifier(modifier string, adjustment float64) {
	if r == nil {
		return
	}
	sign := "bonus"
	if adjustment < 0 {
		sign = "penalty"
	}
	r.ModifierBonuses.WithLabelValues(modifier, sign).Inc()
}
