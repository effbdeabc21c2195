// Package oracle implements a scalarized Dijkstra reference search
// used only by tests to cross-validate package bsp's Pareto search:
// it explores labels in an order driven by a single scalar score, but
// accumulates a full Pareto-optimal labelset.Set per vertex, so its
// final output is directly comparable to a bsp.Result.
//
// Because every popped label is folded into its vertex's Set rather
// than accepted as immediately final, and the search runs until its
// heap is fully drained, the scalarizer only changes exploration
// order — never the final Pareto sets. The test suite verifies this
// by running all three scalarizers below against the same graph and
// asserting they produce identical label sets.
package oracle

import (
	"container/heap"

	"github.com/katalvlaran/paretosp/csrgraph"
	"github.com/katalvlaran/paretosp/labelset"
	"github.com/katalvlaran/paretosp/weight"
	"github.com/katalvlaran/paretosp/xerrors"
)

// Scalarizer collapses a two-dimensional label into the single score
// used to order the search heap.
type Scalarizer[W weight.Integer] func(weight.Weight[W]) int64

// SumScalar orders labels by W1+W2.
func SumScalar[W weight.Integer](w weight.Weight[W]) int64 {
	return int64(w.W1) + int64(w.W2)
}

// MaxScalar orders labels by max(W1, W2).
func MaxScalar[W weight.Integer](w weight.Weight[W]) int64 {
	if int64(w.W1) > int64(w.W2) {
		return int64(w.W1)
	}

	return int64(w.W2)
}

// lexShift is the bit width used to pack W1 ahead of W2 in LexScalar's
// combined score. 32 bits is enough headroom for any W2 magnitude the
// search is expected to encounter without the two fields colliding.
const lexShift = 32

// LexScalar orders labels lexicographically by (W1, W2).
func LexScalar[W weight.Integer](w weight.Weight[W]) int64 {
	return int64(w.W1)<<lexShift + int64(w.W2)
}

type item[W weight.Integer] struct {
	node  int
	label weight.Label[W]
	score int64
}

type itemHeap[W weight.Integer] []item[W]

func (h itemHeap[W]) Len() int            { return len(h) }
func (h itemHeap[W]) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h itemHeap[W]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap[W]) Push(x interface{}) { *h = append(*h, x.(item[W])) }
func (h *itemHeap[W]) Pop() interface{} {
	old := *h
	n := len(old)
	last := old[n-1]
	*h = old[:n-1]

	return last
}

// Dijkstra runs the scalarized label-correcting search from source,
// returning the final Pareto-optimal labelset.Set of every reachable
// node. Representation selects the storage for each node's Set.
func Dijkstra[W weight.Integer](g *csrgraph.Graph[W], source int, scalar Scalarizer[W], rep labelset.Representation) (map[int]labelset.Set[W], error) {
	if source < 0 || source >= g.NodeCount() {
		return nil, xerrors.New(xerrors.Precondition, "oracle: source %d out of range [0,%d)", source, g.NodeCount())
	}

	sets := make(map[int]labelset.Set[W])
	h := &itemHeap[W]{}
	heap.Init(h)

	origin := weight.Weight[W]{}
	heap.Push(h, item[W]{node: source, label: origin, score: scalar(origin)})

	for h.Len() > 0 {
		cur := heap.Pop(h).(item[W])

		set, ok := sets[cur.node]
		if !ok {
			set = labelset.New[W](rep)
			sets[cur.node] = set
		}
		if !set.Add(cur.label) {
			continue // already dominated, stale heap entry
		}

		for i := g.EdgeBegin(cur.node); i < g.EdgeEnd(cur.node); i++ {
			target, edgeWeight := g.Edge(i)
			next, err := weight.Add(cur.label, edgeWeight)
			if err != nil {
				return nil, xerrors.Wrap(xerrors.Precondition, err, "oracle: relaxing edge %d->%d", cur.node, target)
			}
			heap.Push(h, item[W]{node: target, label: next, score: scalar(next)})
		}
	}

	return sets, nil
}
