package router

import (
	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/plan"
)

// Row is the §4.5 per-iteration metrics record. InvocationID identifies the
// Route call that produced it, so rows from concurrent invocations (§5)
// remain distinguishable once they reach a shared exporter (log stream,
// Prometheus, or the history store).
type Row struct {
	InvocationID       string  `json:"invocation_id"`
	Iteration          int     `json:"iteration"`
	Conflicts          int     `json:"conflicts"`
	LongestPathCost    float64 `json:"longest_path_cost"`
	TotalWireUse       int     `json:"total_wire_use"`
	WireReuse          float64 `json:"wire_reuse"`
	UnreachableSignals int     `json:"unreachable_signals"`
}

// Reporter is an append-only sink for Rows; there is no back-editing of
// prior rows (§4.5).
type Reporter struct {
	rows []Row
}

// Append adds a row. It is the only mutator Reporter exposes.
func (r *Reporter) Append(row Row) {
	r.rows = append(r.rows, row)
}

// Rows returns a defensive copy of every row appended so far, in iteration
// order.
func (r *Reporter) Rows() []Row {
	out := make([]Row, len(r.rows))
	copy(out, r.rows)
	return out
}

// computeRow derives the §4.5 statistics from the plan's currently
// committed trees and the graph's current usage state. longest_path_cost
// is measured in node count, not weighted cost, per §4.5. wire_reuse is
// averaged across every signal in the plan, matching how the source
// material divides by the full routing list rather than only signals that
// currently have a tree.
func computeRow(invocationID string, iteration int, g *graph.Graph, p plan.RoutingPlan, unreachable int) Row {
	var longest float64
	totalWireUse := 0
	wireReuseSum := 0.0

	for _, s := range p {
		if s.Result == nil {
			continue
		}
		totalWireUse += len(s.Result.Nodes)
		for _, path := range s.Result.Paths {
			if l := float64(len(path)); l > longest {
				longest = l
			}
		}
		usageSum := 0
		for _, nodeID := range s.Result.Nodes {
			id, err := g.Lookup(nodeID)
			if err != nil {
				continue
			}
			usageSum += g.Usage(id)
		}
		if len(s.Result.Nodes) > 0 {
			wireReuseSum += float64(usageSum) / float64(len(s.Result.Nodes))
		}
	}

	wireReuse := 0.0
	if len(p) > 0 {
		wireReuse = wireReuseSum / float64(len(p))
	}

	return Row{
		InvocationID:       invocationID,
		Iteration:          iteration,
		Conflicts:          g.Conflicts(),
		LongestPathCost:    longest,
		TotalWireUse:       totalWireUse,
		WireReuse:          wireReuse,
		UnreachableSignals: unreachable,
	}
}
