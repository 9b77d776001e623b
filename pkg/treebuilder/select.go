package treebuilder

import "fmt"

// Names of the three strategies, matching the §6 config.solver enum values.
const (
	SolverIndependentPaths = "independent_paths"
	SolverSteiner          = "steiner"
	SolverSimpleSteiner    = "simple_steiner"
)

// New resolves a config.solver name to a Builder.
func New(solver string) (Builder, error) {
	switch solver {
	case SolverIndependentPaths:
		return IndependentPaths{}, nil
	case SolverSteiner:
		return ApproximateSteiner{}, nil
	case SolverSimpleSteiner:
		return SimpleSteiner{}, nil
	default:
		return nil, fmt.Errorf("treebuilder: unknown solver %q", solver)
	}
}
