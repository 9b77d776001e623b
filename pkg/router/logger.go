package router

import (
	"fmt"
	"io"

	"github.com/SirJonasM/fpga-router/pkg/logging"
	"github.com/SirJonasM/fpga-router/pkg/metrics"
)

// IterationLogger observes every Row as it is produced. Grounded on the
// original's Loggers enum (No/Terminal/File): implementations here cover
// the same three cases idiomatically as distinct types rather than a tagged
// enum, matching §9's "model as tagged variants selected by config".
type IterationLogger interface {
	Log(Row)
}

// NoopLogger discards every row.
type NoopLogger struct{}

func (NoopLogger) Log(Row) {}

// WriterLogger prints one line per row to w, matching the original's
// terminal logger.
type WriterLogger struct {
	W io.Writer
}

func (l WriterLogger) Log(r Row) {
	fmt.Fprintf(l.W, "invocation=%s iteration=%d conflicts=%d longest_path_cost=%.0f total_wire_use=%d wire_reuse=%.3f unreachable=%d\n",
		r.InvocationID, r.Iteration, r.Conflicts, r.LongestPathCost, r.TotalWireUse, r.WireReuse, r.UnreachableSignals)
}

// StructuredLogger emits one structured log entry per row through the
// ambient JSON logger.
type StructuredLogger struct {
	Logger logging.Logger
}

func (l StructuredLogger) Log(r Row) {
	l.Logger.Info("iteration complete", logging.IterationFields(
		r.InvocationID, r.Iteration, r.Conflicts, r.LongestPathCost,
		r.TotalWireUse, r.WireReuse, r.UnreachableSignals,
	)...)
}

// MetricsLogger feeds every Row into a metrics.Registry, so a long-running
// server process (pkg/api) can expose live negotiation progress alongside
// its HTTP metrics.
type MetricsLogger struct {
	Registry *metrics.Registry
}

func (l MetricsLogger) Log(r Row) {
	l.Registry.RecordIteration(r.Conflicts, r.UnreachableSignals, r.WireReuse, r.LongestPathCost)
}

// MultiLogger fans one Row out to several loggers, e.g. a StructuredLogger
// for the audit trail plus a MetricsLogger for live observability.
type MultiLogger []IterationLogger

func (l MultiLogger) Log(r Row) {
	for _, logger := range l {
		logger.Log(r)
	}
}
