package plan

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/SirJonasM/fpga-router/pkg/graph"
)

// signalRequest mirrors Signal's wire shape with struct tags for the
// go-playground validator, used for the shape checks (non-empty source,
// non-empty sink list) before the graph-aware checks run.
type signalRequest struct {
	Source string   `json:"signal" validate:"required"`
	Sinks  []string `json:"sinks" validate:"required,min=1,dive,required"`
}

var structValidate = validator.New()

// Validate checks one Signal against the §7 InputError taxonomy: unknown
// node identifier, sink equal to source, empty sink set, or a duplicate
// sink within the same signal. g resolves identifiers against the graph
// currently in scope for the invocation.
func Validate(g *graph.Graph, s *Signal) error {
	req := signalRequest{Source: s.Source, Sinks: s.Sinks}
	if err := structValidate.Struct(req); err != nil {
		return formatShapeError(s.Source, err)
	}

	if _, err := g.Lookup(s.Source); err != nil {
		return NewInputError(s.Source, fmt.Sprintf("unknown source identifier: %v", err))
	}

	seen := make(map[string]struct{}, len(s.Sinks))
	for _, sink := range s.Sinks {
		if sink == s.Source {
			return NewInputError(s.Source, fmt.Sprintf("sink %q equals source", sink))
		}
		if _, dup := seen[sink]; dup {
			return NewInputError(s.Source, fmt.Sprintf("duplicate sink %q", sink))
		}
		seen[sink] = struct{}{}
		if _, err := g.Lookup(sink); err != nil {
			return NewInputError(s.Source, fmt.Sprintf("unknown sink identifier %q: %v", sink, err))
		}
	}
	return nil
}

// ValidatePlan validates every signal in the plan, returning the first
// InputError encountered. InputError aborts the call before iteration 0 (§7).
func ValidatePlan(g *graph.Graph, p RoutingPlan) error {
	for _, s := range p {
		if err := Validate(g, s); err != nil {
			return err
		}
	}
	return nil
}

func formatShapeError(signal string, err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewInputError(signal, err.Error())
	}
	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			return NewInputError(signal, fmt.Sprintf("%s is required", e.Field()))
		case "min":
			return NewInputError(signal, fmt.Sprintf("%s must have at least %s element(s)", e.Field(), e.Param()))
		default:
			return NewInputError(signal, fmt.Sprintf("%s failed validation (%s)", e.Field(), e.Tag()))
		}
	}
	return NewInputError(signal, err.Error())
}
