package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRouterMetrics() {
	r.RouterIterationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "router_iterations_total",
			Help: "Total number of negotiation iterations run across all invocations",
		},
	)

	r.RouterOutcomesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_outcomes_total",
			Help: "Total number of completed runs by terminal outcome",
		},
		[]string{"outcome"},
	)

	r.RouterConflictsCurrent = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "router_conflicts_current",
			Help: "Conflict count reported by the most recent iteration",
		},
	)

	r.RouterWireReuse = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "router_wire_reuse",
			Help: "Average wire reuse reported by the most recent iteration",
		},
	)

	r.RouterLongestPathCost = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "router_longest_path_cost",
			Help: "Longest committed path length, in node count, from the most recent iteration",
		},
	)

	r.RouterUnreachableSignalsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "router_unreachable_signals_total",
			Help: "Total number of per-iteration unreachable-sink occurrences across all invocations",
		},
	)

	r.RouterRunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "router_run_duration_seconds",
			Help:    "Wall-clock duration of a complete Route() invocation",
			Buckets: prometheus.DefBuckets,
		},
	)
}
