package router

import (
	"fmt"

	"github.com/SirJonasM/fpga-router/pkg/graph"
)

// IterationExhaustedError documents the Failed(conflicts) terminal outcome
// (§7) for callers that prefer an error return over inspecting Outcome.
// Route() itself returns this condition through Outcome, not as an error;
// this type exists for wrapping contexts (e.g. the CLI) that want err != nil
// on a Failed result.
type IterationExhaustedError struct {
	Conflicts int
}

func (e *IterationExhaustedError) Error() string {
	return fmt.Sprintf("iteration exhausted with %d conflicts remaining", e.Conflicts)
}

func (e *IterationExhaustedError) Kind() graph.ErrorKind { return graph.KindIterationExhausted }

// CancelledError documents the Cancelled terminal outcome (§7) for callers
// that prefer an error return over inspecting Outcome, mirroring
// IterationExhaustedError.
type CancelledError struct{}

func (e *CancelledError) Error() string { return "routing cancelled" }

func (e *CancelledError) Kind() graph.ErrorKind { return graph.KindCancelled }

// ToError converts a terminal Outcome into an error, or nil for Success.
// Route() itself never raises IterationExhausted or Cancelled as a Go
// error (§7: "normal terminal outcomes, not exceptions") — it reports them
// through Outcome with a nil error. ToError is the opt-in conversion for
// callers (e.g. the CLI) that want err != nil on either non-Success result.
func (o Outcome) ToError() error {
	switch o.Kind {
	case Failed:
		return &IterationExhaustedError{Conflicts: o.Conflicts}
	case Cancelled:
		return &CancelledError{}
	default:
		return nil
	}
}
