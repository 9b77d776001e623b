// Package router implements the Global Router / Negotiator (§4.4): the
// outer negotiated-congestion loop that rips up and re-routes every signal
// each iteration until the plan converges, the iteration cap is reached, or
// the caller cancels.
package router

import (
	"errors"

	"github.com/google/uuid"

	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/treebuilder"
)

// Route runs the negotiated-congestion outer loop over g and p according to
// cfg, logging one Row per completed iteration through logger, and returns
// the terminal Outcome plus every Row the Reporter accumulated. cancel is
// polled at each iteration boundary and before each signal's re-route (§5);
// closing it (or sending on it) requests cancellation.
//
// g is mutated in place: usage, historic, and present state reflect the
// last routed iteration when Route returns. p's signals have their Result
// field filled in with the last committed tree, per §3's Routing Plan
// lifecycle.
func Route(g *graph.Graph, p plan.RoutingPlan, cfg Config, logger IterationLogger, cancel <-chan struct{}) (Outcome, *Reporter, error) {
	if logger == nil {
		logger = NoopLogger{}
	}
	invocationID := uuid.NewString()

	builder, err := treebuilder.New(cfg.Solver)
	if err != nil {
		return Outcome{}, nil, err
	}
	if err := plan.ValidatePlan(g, p); err != nil {
		return Outcome{}, nil, err
	}

	g.PresentFactor = cfg.PresentFactor
	g.HistFactor = cfg.HistFactor

	// §6: reading a plan with non-null result fields is permitted; the core
	// re-routes from scratch. Usage counters start at zero, so any stale
	// Result is discarded without a rip-up.
	for _, s := range p {
		s.Result = nil
	}

	reporter := &Reporter{}

	for k := 0; ; k++ {
		if cancelled(cancel) {
			return Outcome{Kind: Cancelled, Iterations: k}, reporter, nil
		}

		unreachable := 0
		for _, s := range p {
			if cancelled(cancel) {
				return Outcome{Kind: Cancelled, Iterations: k}, reporter, nil
			}

			if s.Result != nil {
				if err := ripUp(g, s.Result); err != nil {
					return Outcome{}, reporter, err
				}
			}

			tree, err := builder.Build(g, s)
			if err != nil {
				var unreach *treebuilder.UnreachableTargetError
				if errors.As(err, &unreach) {
					unreachable++
					s.Result = nil
					continue
				}
				return Outcome{}, reporter, err
			}

			if err := commit(g, tree); err != nil {
				return Outcome{}, reporter, err
			}
			s.Result = tree
		}

		g.ApplyHistoric()

		row := computeRow(invocationID, k, g, p, unreachable)
		reporter.Append(row)
		logger.Log(row)

		conflicts := g.Conflicts()
		if conflicts == 0 && unreachable == 0 {
			return Outcome{Kind: Success, Iterations: k}, reporter, nil
		}
		if k == cfg.MaxIterations {
			return Outcome{Kind: Failed, Iterations: k, Conflicts: conflicts}, reporter, nil
		}
	}
}

func cancelled(cancel <-chan struct{}) bool {
	if cancel == nil {
		return false
	}
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

// ripUp decrements usage for every node of a signal's previously committed
// tree (§4.3.3 commit protocol, step 1).
func ripUp(g *graph.Graph, tree *plan.RoutingTree) error {
	for _, nodeID := range tree.Nodes {
		id, err := g.Lookup(nodeID)
		if err != nil {
			return &graph.InternalInvariantViolation{Reason: "rip-up referenced unknown node " + nodeID}
		}
		if err := g.AddUsage(id, -1); err != nil {
			return err
		}
	}
	return nil
}

// commit increments usage for every node in a newly built tree. A node
// appearing multiple times within one signal's tree counts only once
// (§4.3.3), which is already guaranteed by treebuilder.materialize
// deduplicating Nodes.
func commit(g *graph.Graph, tree *plan.RoutingTree) error {
	for _, nodeID := range tree.Nodes {
		id, err := g.Lookup(nodeID)
		if err != nil {
			return &graph.InternalInvariantViolation{Reason: "commit referenced unknown node " + nodeID}
		}
		if err := g.AddUsage(id, 1); err != nil {
			return err
		}
	}
	return nil
}
