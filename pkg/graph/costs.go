package graph

// costs holds the mutable per-node congestion state described in §3: a usage
// counter, an accumulated historic penalty, and the derived present-cost
// multiplier. present is never stored precomputed; it is always read lazily
// through Present(), matching the "lazy read at relaxation time" semantics.
type costs struct {
	usage    int
	historic float64
}

// addUsage mutates usage by delta, which must be +1 or -1. Usage must never
// go negative; a violation indicates a rip-up/commit bookkeeping bug.
func (c *costs) addUsage(delta int) error {
	next := c.usage + delta
	if next < 0 {
		return &InternalInvariantViolation{Reason: "usage went negative"}
	}
	c.usage = next
	return nil
}

// present computes 1 + max(0, usage-1) * presentFactor, read fresh on every
// call as specified in §4.4 step 1.b.
func (c *costs) present(presentFactor float64) float64 {
	over := c.usage - 1
	if over < 0 {
		over = 0
	}
	return 1 + float64(over)*presentFactor
}

// applyHistoric accumulates the historic penalty for this iteration per
// §4.4 step 2. Historic cost only ever increases.
func (c *costs) applyHistoric(histFactor float64) {
	over := c.usage - 1
	if over < 0 {
		over = 0
	}
	c.historic += float64(over) * histFactor
}
