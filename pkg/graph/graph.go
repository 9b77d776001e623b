package graph

// Graph is the Resource Graph of §4.1: an immutable topology of nodes and
// directed edges plus mutable per-node usage/historic/present cost state.
// A Graph is owned exclusively by one route invocation (§5); concurrent
// invocations must each build their own Graph.
type Graph struct {
	nodes   []Node
	index   map[string]int
	forward [][]Edge

	sources []int
	sinks   []int

	costs []costs

	// PresentFactor and HistFactor are read by pkg/search and pkg/router when
	// evaluating the cost model of §4.2/§4.4. They are fields rather than
	// method parameters threaded everywhere, mirroring how the resource graph
	// is the sole owner of cost state for the duration of a route invocation.
	PresentFactor float64
	HistFactor    float64
}

// New builds an empty graph. AddNode/AddEdge populate it; used directly by
// tests and by Parse.
func New() *Graph {
	return &Graph{
		index:         make(map[string]int),
		PresentFactor: 1.0,
		HistFactor:    0.1,
	}
}

// AddNode inserts a node if its identifier hasn't been seen and returns its
// dense id. Insertion order is preserved, matching §3's "ordered sequence of
// nodes ... insertion order fixed at construction".
func (g *Graph) AddNode(id string, x, y int, name string) int {
	if existing, ok := g.index[id]; ok {
		return existing
	}
	n := Node{ID: id, X: x, Y: y, Name: name, Kind: classifyName(name)}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.forward = append(g.forward, nil)
	g.costs = append(g.costs, costs{})
	g.index[id] = idx
	switch n.Kind {
	case Source:
		g.sources = append(g.sources, idx)
	case Sink:
		g.sinks = append(g.sinks, idx)
	}
	return idx
}

// AddEdge adds a directed edge from u to v with the given positive base cost.
// The graph has no duplicate edges between the same ordered pair; a repeated
// call with the same (u, v) overwrites the base cost rather than duplicating.
func (g *Graph) AddEdge(u, v int, baseCost float64) {
	for i := range g.forward[u] {
		if g.forward[u][i].To == v {
			g.forward[u][i].BaseCost = baseCost
			return
		}
	}
	g.forward[u] = append(g.forward[u], Edge{To: v, BaseCost: baseCost})
}

// Lookup resolves a textual node identifier to its dense id.
func (g *Graph) Lookup(id string) (int, error) {
	idx, ok := g.index[id]
	if !ok {
		return -1, &NotFoundError{ID: id}
	}
	return idx, nil
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Node returns the node at id.
func (g *Graph) Node(id int) Node { return g.nodes[id] }

// NeighborsForward iterates the forward adjacency of id.
func (g *Graph) NeighborsForward(id int) []Edge { return g.forward[id] }

// Classify returns the node's source/sink/interior classification.
func (g *Graph) Classify(id int) Kind { return g.nodes[id].Kind }

// Sources returns the ids of every source-eligible node, in insertion order.
func (g *Graph) Sources() []int { return g.sources }

// Sinks returns the ids of every sink-eligible node, in insertion order.
func (g *Graph) Sinks() []int { return g.sinks }

// Usage returns the current usage count of id.
func (g *Graph) Usage(id int) int { return g.costs[id].usage }

// Historic returns the current accumulated historic cost of id.
func (g *Graph) Historic(id int) float64 { return g.costs[id].historic }

// Present returns the current present-cost multiplier of id, read lazily per
// §4.4 step 1.b.
func (g *Graph) Present(id int) float64 { return g.costs[id].present(g.PresentFactor) }

// EdgeWeight computes w(u→v) = (base + historic(v)) * present(v) per §4.2.
func (g *Graph) EdgeWeight(base float64, v int) float64 {
	return (base + g.Historic(v)) * g.Present(v)
}

// AddUsage mutates the usage counter of id by delta, which must be +1 or -1.
func (g *Graph) AddUsage(id int, delta int) error {
	return g.costs[id].addUsage(delta)
}

// ApplyHistoric accumulates the historic-cost penalty for every node per
// §4.4 step 2, run once at the end of each iteration. Historic cost never
// resets and is monotone non-decreasing (§8).
func (g *Graph) ApplyHistoric() {
	for i := range g.costs {
		g.costs[i].applyHistoric(g.HistFactor)
	}
}

// Conflicts returns the number of nodes with usage > 1, the capacity-1
// definition of §3/§4.5.
func (g *Graph) Conflicts() int {
	n := 0
	for i := range g.costs {
		if g.costs[i].usage > 1 {
			n++
		}
	}
	return n
}
