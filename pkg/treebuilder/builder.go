// Package treebuilder implements the Local Tree Builder (§4.3): the three
// interchangeable strategies that connect a signal's source to all of its
// sinks under the graph's current cost field.
package treebuilder

import (
	"fmt"

	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/plan"
)

// Builder produces a RoutingTree for one signal under the graph's current
// cost field, or reports the signal unroutable (UnreachableTargetError).
// The three strategies share this interface and are selected by config, not
// by inheritance (§9 "Solver polymorphism").
type Builder interface {
	Build(g *graph.Graph, s *plan.Signal) (*plan.RoutingTree, error)
	Name() string
}

// UnreachableTargetError reports that the search could not find a path to a
// required sink at this iteration (§7). The caller leaves the signal's tree
// empty for the iteration and retries next time.
type UnreachableTargetError struct {
	Signal string
	Sink   string
}

func (e *UnreachableTargetError) Error() string {
	return fmt.Sprintf("signal %q: sink %q unreachable under current cost field", e.Signal, e.Sink)
}

func (e *UnreachableTargetError) Kind() graph.ErrorKind { return graph.KindUnreachableTarget }

// resolveEndpoints looks up the source and every sink of s, returning their
// dense graph ids in the signal's declared order. Identifiers are assumed
// already validated by pkg/plan.Validate before reaching a builder.
func resolveEndpoints(g *graph.Graph, s *plan.Signal) (source int, sinks []int, err error) {
	source, err = g.Lookup(s.Source)
	if err != nil {
		return 0, nil, err
	}
	sinks = make([]int, len(s.Sinks))
	for i, sinkID := range s.Sinks {
		id, err := g.Lookup(sinkID)
		if err != nil {
			return 0, nil, err
		}
		sinks[i] = id
	}
	return source, sinks, nil
}

// idsToStrings maps dense graph ids back to their textual node identifiers,
// preserving order.
func idsToStrings(g *graph.Graph, ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Node(id).ID
	}
	return out
}

// collectNodes unions every path's node ids into a single deterministic,
// deduplicated slice, walking paths in sinkOrder rather than ranging over
// the map directly — map iteration order is randomized per range, and the
// union order here becomes the tree's serialized Nodes order (§8 bit-
// identical-across-runs property).
func collectNodes(sinkOrder []string, paths map[string][]int) []int {
	var order []int
	seen := make(map[int]struct{})
	for _, sinkID := range sinkOrder {
		for _, n := range paths[sinkID] {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				order = append(order, n)
			}
		}
	}
	return order
}

func materialize(g *graph.Graph, sinkOrder []string, pathsByID map[string][]int) *plan.RoutingTree {
	allNodes := collectNodes(sinkOrder, pathsByID)
	tree := &plan.RoutingTree{
		Nodes: idsToStrings(g, allNodes),
		Paths: make(map[string][]string, len(sinkOrder)),
	}
	for _, sinkID := range sinkOrder {
		tree.Paths[sinkID] = idsToStrings(g, pathsByID[sinkID])
	}
	return tree
}
