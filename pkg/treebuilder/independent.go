package treebuilder

import (
	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/search"
)

// IndependentPaths is the §4.3.1 strategy: for each sink, in the signal's
// declared order, run an independent search from the source and union the
// resulting paths. No sharing between sinks is encouraged or discouraged
// beyond what the cost field naturally enforces.
type IndependentPaths struct{}

func (IndependentPaths) Name() string { return "independent_paths" }

func (IndependentPaths) Build(g *graph.Graph, s *plan.Signal) (*plan.RoutingTree, error) {
	source, sinks, err := resolveEndpoints(g, s)
	if err != nil {
		return nil, err
	}

	pathsByID := make(map[string][]int, len(sinks))
	for i, sink := range sinks {
		res := search.Targets(g, source, []int{sink})
		path := search.ReconstructPath(res, sink)
		if path == nil {
			return nil, &UnreachableTargetError{Signal: s.Source, Sink: s.Sinks[i]}
		}
		pathsByID[s.Sinks[i]] = path
	}
	return materialize(g, s.Sinks, pathsByID), nil
}
