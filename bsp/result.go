package bsp

import (
	"github.com/katalvlaran/paretosp/labelset"
	"github.com/katalvlaran/paretosp/weight"
)

// Result is the outcome of one completed search: the final Pareto
// label set of every node, plus the counters gathered along the way.
type Result[W weight.Integer] struct {
	sets  []labelset.Set[W]
	stats Stats
}

// LabelSet returns the final Pareto-optimal labels of node, in
// ascending W1 order.
func (r *Result[W]) LabelSet(node int) []weight.Label[W] {
	return r.sets[node].All()
}

// Stats returns the accumulated search statistics.
func (r *Result[W]) Stats() Stats {
	return r.stats
}
