package treebuilder

import (
	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/search"
)

// SimpleSteiner is the §4.3.2 documented variant: the same trunk-selection
// as ApproximateSteiner, but each remaining sink attaches from a single
// tree node rather than the whole tree's frontier. The "nearest" node is
// taken to be the most recently attached tree node, a cheap deterministic
// stand-in that avoids the multi-source search entirely; this is the "faster
// but worse trees" trade-off the strategy is documented to make.
type SimpleSteiner struct{}

func (SimpleSteiner) Name() string { return "simple_steiner" }

func (SimpleSteiner) Build(g *graph.Graph, s *plan.Signal) (*plan.RoutingTree, error) {
	source, sinks, err := resolveEndpoints(g, s)
	if err != nil {
		return nil, err
	}
	if len(sinks) == 1 {
		return buildSingleSinkTree(g, source, sinks[0], s)
	}

	trunkRes := search.Targets(g, source, sinks)
	trunkIdx, trunkDist := -1, -1.0
	for i, sink := range sinks {
		d, ok := trunkRes.Dist[sink]
		if !ok {
			return nil, &UnreachableTargetError{Signal: s.Source, Sink: s.Sinks[i]}
		}
		if trunkIdx == -1 || d > trunkDist {
			trunkIdx, trunkDist = i, d
		}
	}

	trunkPath := search.ReconstructPath(trunkRes, sinks[trunkIdx])
	if trunkPath == nil {
		return nil, &UnreachableTargetError{Signal: s.Source, Sink: s.Sinks[trunkIdx]}
	}

	sourcePath := make(map[int][]int, len(sinks))
	for i, n := range trunkPath {
		sourcePath[n] = append([]int(nil), trunkPath[:i+1]...)
	}
	lastAdded := trunkPath[len(trunkPath)-1]

	pathsByID := make(map[string][]int, len(sinks))
	pathsByID[s.Sinks[trunkIdx]] = trunkPath

	for i, sink := range sinks {
		if i == trunkIdx {
			continue
		}
		full, err := attachToSingleNode(g, lastAdded, sourcePath, sink)
		if err != nil {
			return nil, &UnreachableTargetError{Signal: s.Source, Sink: s.Sinks[i]}
		}
		pathsByID[s.Sinks[i]] = full
		lastAdded = full[len(full)-1]
	}

	return materialize(g, s.Sinks, pathsByID), nil
}

// attachToSingleNode runs a single-source search from exactly one tree node
// instead of seeding the whole tree, per the Simple-Steiner variant.
func attachToSingleNode(g *graph.Graph, from int, sourcePath map[int][]int, sink int) ([]int, error) {
	res := search.Targets(g, from, []int{sink})
	subpath := search.ReconstructPath(res, sink)
	if subpath == nil {
		return nil, &UnreachableTargetError{}
	}

	base := sourcePath[from]
	full := make([]int, 0, len(base)+len(subpath)-1)
	full = append(full, base...)
	full = append(full, subpath[1:]...)

	for i := len(base); i < len(full); i++ {
		sourcePath[full[i]] = append([]int(nil), full[:i+1]...)
	}
	return full, nil
}
