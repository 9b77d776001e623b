package plan

import (
	"fmt"

	"github.com/SirJonasM/fpga-router/pkg/graph"
)

// InputError reports a malformed plan, caught before iteration 0 (§7):
// an unknown node identifier, a sink equal to its source, an empty sink set,
// or duplicate sinks within one signal.
type InputError struct {
	Signal string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error for signal %q: %s", e.Signal, e.Reason)
}

func (e *InputError) Kind() graph.ErrorKind { return graph.KindInputError }

// NewInputError builds an InputError for the given signal's source identifier.
func NewInputError(signal, reason string) *InputError {
	return &InputError{Signal: signal, Reason: reason}
}
