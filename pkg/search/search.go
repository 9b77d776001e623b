// Package search implements the best-first shortest-path primitive (§4.2)
// used by the tree builders as their local routing step.
package search

import (
	"container/heap"

	"github.com/SirJonasM/fpga-router/pkg/graph"
)

// CostGraph is the subset of *graph.Graph the search needs: forward
// adjacency and the cost model composition. Defined as an interface so
// search can be unit-tested against small fixtures without constructing a
// full parsed graph.
type CostGraph interface {
	NeighborsForward(id int) []graph.Edge
	EdgeWeight(base float64, v int) float64
	NumNodes() int
}

// Result is the outcome of a search: for every settled node, its
// predecessor and distance. Unsettled nodes are absent from both maps.
type Result struct {
	Pred map[int]int
	Dist map[int]float64
}

// predSentinel marks a settled virtual-source node (§9 "multi-source search
// by frontier seeding"): it has no predecessor because it was seeded at
// distance 0, not reached via relaxation.
const predSentinel = -1

// entry is one priority-queue element: a tentative distance to a node,
// tagged with a monotonically increasing sequence number so that ties are
// broken by insertion order as §4.2 requires.
type entry struct {
	node int
	dist float64
	seq  int
}

type frontier []entry

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(entry)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// Targets runs a best-first search seeded from a single source and returns
// a Result settled for every reachable node, stopping as soon as every id
// in targets has been settled (the "all_targets_settled" stopping condition
// of §4.2). Passing a nil or empty targets set runs the search to
// exhaustion over the reachable component.
func Targets(g CostGraph, source int, targets []int) Result {
	return MultiSourceTargets(g, []int{source}, targets)
}

// MultiSourceTargets runs the multi-source variant used by the
// Approximate-Steiner strategy (§4.3.2 step 3, §9 "multi-source search by
// frontier seeding"): every node in sources is pushed into the frontier at
// distance 0 with no predecessor, modeling the existing tree as a single
// virtual super-source.
func MultiSourceTargets(g CostGraph, sources []int, targets []int) Result {
	pred := make(map[int]int, g.NumNodes())
	dist := make(map[int]float64, g.NumNodes())
	settled := make(map[int]bool, g.NumNodes())

	pq := &frontier{}
	heap.Init(pq)
	seq := 0
	for _, s := range sources {
		if _, ok := dist[s]; ok {
			continue
		}
		dist[s] = 0
		pred[s] = predSentinel
		heap.Push(pq, entry{node: s, dist: 0, seq: seq})
		seq++
	}

	remaining := make(map[int]bool, len(targets))
	for _, t := range targets {
		remaining[t] = true
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(entry)
		if settled[cur.node] {
			continue
		}
		// A later, cheaper push may have superseded this entry.
		if cur.dist > dist[cur.node] {
			continue
		}
		settled[cur.node] = true
		delete(remaining, cur.node)
		if len(targets) > 0 && len(remaining) == 0 {
			break
		}

		for _, e := range g.NeighborsForward(cur.node) {
			if settled[e.To] {
				continue
			}
			w := g.EdgeWeight(e.BaseCost, e.To)
			nd := cur.dist + w
			if prev, ok := dist[e.To]; ok && nd >= prev {
				continue
			}
			dist[e.To] = nd
			pred[e.To] = cur.node
			heap.Push(pq, entry{node: e.To, dist: nd, seq: seq})
			seq++
		}
	}

	return Result{Pred: pred, Dist: dist}
}

// ReconstructPath walks pred back from target to any node with the
// sentinel predecessor (a source) and returns the forward path, per §4.2
// "path reconstruction". Returns nil if target was never settled.
func ReconstructPath(res Result, target int) []int {
	if _, ok := res.Dist[target]; !ok {
		return nil
	}
	var rev []int
	cur := target
	for {
		rev = append(rev, cur)
		p, ok := res.Pred[cur]
		if !ok {
			return nil
		}
		if p == predSentinel {
			break
		}
		cur = p
	}
	path := make([]int, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}
