package metrics

import (
	"time"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordResponseSize records the size of an HTTP response body, satisfying
// pkg/api/middleware.MetricsRecorder.
func (r *Registry) RecordResponseSize(method, path string, size float64) {
	r.HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(size)
}

// IncHTTPRequestsInFlight increments the in-flight request gauge.
func (r *Registry) IncHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Inc()
}

// DecHTTPRequestsInFlight decrements the in-flight request gauge.
func (r *Registry) DecHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Dec()
}

// RecordIteration updates the gauges reflecting the most recently completed
// negotiation iteration and increments the cumulative iteration counter.
func (r *Registry) RecordIteration(conflicts, unreachable int, wireReuse, longestPathCost float64) {
	r.RouterIterationsTotal.Inc()
	r.RouterConflictsCurrent.Set(float64(conflicts))
	r.RouterWireReuse.Set(wireReuse)
	r.RouterLongestPathCost.Set(longestPathCost)
	if unreachable > 0 {
		r.RouterUnreachableSignalsTotal.Add(float64(unreachable))
	}
}

// RecordOutcome records a completed run's terminal outcome and total
// wall-clock duration.
func (r *Registry) RecordOutcome(outcome string, duration time.Duration) {
	r.RouterOutcomesTotal.WithLabelValues(outcome).Inc()
	r.RouterRunDuration.Observe(duration.Seconds())
}

// RecordSearch records one tree-builder search call.
func (r *Registry) RecordSearch(strategy string, reached bool, duration time.Duration, nodesVisited int) {
	outcome := "reached"
	if !reached {
		outcome = "unreachable"
	}
	r.SearchInvocationsTotal.WithLabelValues(strategy, outcome).Inc()
	r.SearchDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	r.SearchNodesVisited.WithLabelValues(strategy).Observe(float64(nodesVisited))
}
