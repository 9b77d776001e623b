// Package plan defines the Signal/RoutingTree/RoutingPlan data model (§3, §6)
// and the JSON wire format the external interfaces consume and produce.
package plan

// RoutingTree is the set of graph nodes assigned to a signal together with
// one reconstructable path from the source to each sink (§3).
type RoutingTree struct {
	Nodes []string            `json:"nodes"`
	Paths map[string][]string `json:"paths"`
}

// NodeSet returns the tree's node identifiers as a set, useful for usage
// bookkeeping and membership tests during commit/rip-up.
func (t *RoutingTree) NodeSet() map[string]struct{} {
	if t == nil {
		return nil
	}
	set := make(map[string]struct{}, len(t.Nodes))
	for _, n := range t.Nodes {
		set[n] = struct{}{}
	}
	return set
}

// Signal is one logical net: a source plus an ordered set of sinks that must
// all receive the source's value, and the most recently committed tree.
type Signal struct {
	Source string       `json:"signal"`
	Sinks  []string     `json:"sinks"`
	Result *RoutingTree `json:"result"`
}

// RoutingPlan is an ordered sequence of Signals (§3). The caller constructs
// it; the Global Router mutates only the Result field of each Signal.
type RoutingPlan []*Signal

// Clone returns a deep copy, used by tests that need to compare a plan
// before and after route() without aliasing.
func (p RoutingPlan) Clone() RoutingPlan {
	out := make(RoutingPlan, len(p))
	for i, s := range p {
		cp := &Signal{Source: s.Source, Sinks: append([]string(nil), s.Sinks...)}
		if s.Result != nil {
			cp.Result = &RoutingTree{
				Nodes: append([]string(nil), s.Result.Nodes...),
				Paths: make(map[string][]string, len(s.Result.Paths)),
			}
			for k, v := range s.Result.Paths {
				cp.Result.Paths[k] = append([]string(nil), v...)
			}
		}
		out[i] = cp
	}
	return out
}
