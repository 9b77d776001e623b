package metrics

import (
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal not initialized")
	}
	if r.RouterIterationsTotal == nil {
		t.Error("RouterIterationsTotal not initialized")
	}
	if r.SearchDuration == nil {
		t.Error("SearchDuration not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest("GET", "/route", "200", 100*time.Millisecond)
	r.RecordHTTPRequest("POST", "/route", "201", 200*time.Millisecond)
	r.RecordHTTPRequest("GET", "/route", "404", 50*time.Millisecond)

	counter, err := r.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/route", "200")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 1 {
		t.Errorf("Counter value = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRecordIterationUpdatesGaugesAndCounters(t *testing.T) {
	r := NewRegistry()

	r.RecordIteration(3, 1, 1.25, 7)
	r.RecordIteration(0, 0, 1.0, 5)

	var metric dto.Metric
	if err := r.RouterIterationsTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("RouterIterationsTotal = %v, want 2", metric.Counter.GetValue())
	}

	if err := r.RouterConflictsCurrent.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 0 {
		t.Errorf("RouterConflictsCurrent = %v, want 0 (last recorded value)", metric.Gauge.GetValue())
	}

	if err := r.RouterUnreachableSignalsTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("RouterUnreachableSignalsTotal = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRecordOutcome(t *testing.T) {
	r := NewRegistry()

	r.RecordOutcome("success", 50*time.Millisecond)
	r.RecordOutcome("success", 60*time.Millisecond)
	r.RecordOutcome("failed", 10*time.Millisecond)

	successCounter, err := r.RouterOutcomesTotal.GetMetricWithLabelValues("success")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := successCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("success outcomes = %v, want 2", metric.Counter.GetValue())
	}

	if err := r.RouterRunDuration.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 3 {
		t.Errorf("run duration sample count = %v, want 3", metric.Histogram.GetSampleCount())
	}
}

func TestRecordSearch(t *testing.T) {
	r := NewRegistry()

	r.RecordSearch("independent_paths", true, 2*time.Millisecond, 12)
	r.RecordSearch("independent_paths", false, 1*time.Millisecond, 30)

	reachedCounter, err := r.SearchInvocationsTotal.GetMetricWithLabelValues("independent_paths", "reached")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := reachedCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("reached count = %v, want 1", metric.Counter.GetValue())
	}

	unreachableCounter, err := r.SearchInvocationsTotal.GetMetricWithLabelValues("independent_paths", "unreachable")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if err := unreachableCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("unreachable count = %v, want 1", metric.Counter.GetValue())
	}
}

func TestSystemMetrics(t *testing.T) {
	r := NewRegistry()

	r.UptimeSeconds.Set(3600)
	r.GoRoutines.Set(50)
	r.MemoryAllocBytes.Set(1024 * 1024 * 100)
	r.MemorySysBytes.Set(1024 * 1024 * 200)

	var metric dto.Metric
	if err := r.UptimeSeconds.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 3600 {
		t.Errorf("UptimeSeconds = %v, want 3600", metric.Gauge.GetValue())
	}
}

func TestGetPrometheusRegistry(t *testing.T) {
	r := NewRegistry()
	// Vec metrics are only gathered once a label set has been observed.
	r.RecordSearch("independent_paths", true, time.Millisecond, 1)
	promRegistry := r.GetPrometheusRegistry()

	if promRegistry == nil {
		t.Fatal("GetPrometheusRegistry() returned nil")
	}

	metrics, err := promRegistry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	if len(metrics) == 0 {
		t.Error("No metrics registered")
	}

	expectedMetrics := []string{
		"router_iterations_total",
		"router_search_duration_seconds",
		"router_uptime_seconds",
	}

	metricNames := make(map[string]bool)
	for _, m := range metrics {
		metricNames[m.GetName()] = true
	}

	for _, expected := range expectedMetrics {
		if !metricNames[expected] {
			t.Errorf("Expected metric %s not found", expected)
		}
	}
}

func TestMetricNaming(t *testing.T) {
	r := NewRegistry()
	promRegistry := r.GetPrometheusRegistry()

	metrics, err := promRegistry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	for _, m := range metrics {
		name := m.GetName()
		if !strings.HasPrefix(name, "router_") {
			t.Errorf("Metric %s does not have router_ prefix", name)
		}
	}
}

func BenchmarkRecordHTTPRequest(b *testing.B) {
	r := NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RecordHTTPRequest("GET", "/route", "200", 10*time.Millisecond)
	}
}

func BenchmarkRecordIteration(b *testing.B) {
	r := NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RecordIteration(0, 0, 1.0, 5)
	}
}
