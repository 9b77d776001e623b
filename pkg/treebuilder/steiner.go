package treebuilder

import (
	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/search"
)

// ApproximateSteiner is the §4.3.2 strategy: connect the source to all sinks
// with a shared subgraph, picked by attaching each remaining sink to the
// cheapest point on the tree built so far.
type ApproximateSteiner struct{}

func (ApproximateSteiner) Name() string { return "steiner" }

func (ApproximateSteiner) Build(g *graph.Graph, s *plan.Signal) (*plan.RoutingTree, error) {
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
	treeNodes := make(map[int]struct{}, len(sinks))
	treeOrder := make([]int, 0, len(sinks))
	for i, n := range trunkPath {
		sourcePath[n] = append([]int(nil), trunkPath[:i+1]...)
		if _, ok := treeNodes[n]; !ok {
			treeNodes[n] = struct{}{}
			treeOrder = append(treeOrder, n)
		}
	}

	pathsByID := make(map[string][]int, len(sinks))
	pathsByID[s.Sinks[trunkIdx]] = trunkPath

	for i, sink := range sinks {
		if i == trunkIdx {
			continue
		}
		full, err := attachToTree(g, treeNodes, &treeOrder, sourcePath, sink)
		if err != nil {
			return nil, &UnreachableTargetError{Signal: s.Source, Sink: s.Sinks[i]}
		}
		pathsByID[s.Sinks[i]] = full
	}

	return materialize(g, s.Sinks, pathsByID), nil
}

// attachToTree runs a multi-source search seeded by every node currently in
// the tree and splices the cheapest connection into sink, extending
// sourcePath/treeNodes with every newly discovered node (§4.3.2 step 3-4, §9
// "multi-source search by frontier seeding"). Seeds are read from treeOrder,
// not by ranging over treeNodes directly — map iteration order is randomized
// per range, and that order becomes the frontier push order, which is
// exactly the tie-break §4.2 fixes as insertion order.
func attachToTree(g *graph.Graph, treeNodes map[int]struct{}, treeOrder *[]int, sourcePath map[int][]int, sink int) ([]int, error) {
	seeds := append([]int(nil), (*treeOrder)...)
	res := search.MultiSourceTargets(g, seeds, []int{sink})
	subpath := search.ReconstructPath(res, sink)
	if subpath == nil {
		return nil, &UnreachableTargetError{}
	}

	attach := subpath[0]
	base := sourcePath[attach]
	full := make([]int, 0, len(base)+len(subpath)-1)
	full = append(full, base...)
	full = append(full, subpath[1:]...)

	for i := len(base); i < len(full); i++ {
		node := full[i]
		sourcePath[node] = append([]int(nil), full[:i+1]...)
		if _, ok := treeNodes[node]; !ok {
			treeNodes[node] = struct{}{}
			*treeOrder = append(*treeOrder, node)
		}
	}
	return full, nil
}

func buildSingleSinkTree(g *graph.Graph, source, sink int, s *plan.Signal) (*plan.RoutingTree, error) {
	res := search.Targets(g, source, []int{sink})
	path := search.ReconstructPath(res, sink)
	if path == nil {
		return nil, &UnreachableTargetError{Signal: s.Source, Sink: s.Sinks[0]}
	}
	return materialize(g, s.Sinks, map[string][]int{s.Sinks[0]: path}), nil
}
