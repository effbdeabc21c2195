// Package csrgraph provides the static, read-only graph storage the
// Pareto search core consumes: a CSR-like (compressed sparse row)
// adjacency structure with per-node edge ranges.
//
// Graph storage and iteration are decoupled from the search core: the
// core only ever calls EdgeBegin/EdgeEnd/Edge on a *Graph it does not
// mutate. A Graph is built once via New and is immutable and safe for
// concurrent reads from any number of goroutines afterwards — there
// is no internal locking because there is nothing to serialize
// against.
package csrgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/paretosp/weight"
	"github.com/katalvlaran/paretosp/xerrors"
)

// RawEdge is an edge as supplied to New, in arbitrary order.
type RawEdge[W weight.Integer] struct {
	From, To int
	W1, W2   W
}

// Graph is an immutable CSR adjacency structure over node ids
// 0..N-1. Edge weights are non-negative two-dimensional costs.
type Graph[W weight.Integer] struct {
	nodeCount int
	offsets   []int          // len nodeCount+1; offsets[u]..offsets[u+1] is u's edge range
	targets   []int          // len == len(edges), grouped by source node
	weights   []weight.Weight[W]
}

// New builds a Graph from nodeCount nodes and an arbitrary-order edge
// list. Edges are grouped by From internally with a stable sort, so
// which edges belong to which node does not depend on the caller's
// edge order; within one node, edges keep their input order.
// Negative weights and out-of-range endpoints are precondition
// violations and are rejected here rather than discovered mid-search.
func New[W weight.Integer](nodeCount int, edges []RawEdge[W]) (*Graph[W], error) {
	if nodeCount < 0 {
		return nil, xerrors.New(xerrors.Precondition, "csrgraph: negative node count %d", nodeCount)
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= nodeCount || e.To < 0 || e.To >= nodeCount {
			return nil, xerrors.New(xerrors.Precondition, "csrgraph: edge %d->%d out of range [0,%d)", e.From, e.To, nodeCount)
		}
		if e.W1 < 0 || e.W2 < 0 {
			return nil, xerrors.New(xerrors.Precondition, "csrgraph: negative weight on edge %d->%d", e.From, e.To)
		}
	}

	ordered := make([]RawEdge[W], len(edges))
	copy(ordered, edges)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].From < ordered[j].From })

	g := &Graph[W]{
		nodeCount: nodeCount,
		offsets:   make([]int, nodeCount+1),
		targets:   make([]int, len(ordered)),
		weights:   make([]weight.Weight[W], len(ordered)),
	}

	counts := make([]int, nodeCount)
	for _, e := range ordered {
		counts[e.From]++
	}
	for u := 0; u < nodeCount; u++ {
		g.offsets[u+1] = g.offsets[u] + counts[u]
	}
	cursor := make([]int, nodeCount)
	copy(cursor, g.offsets[:nodeCount])
	for _, e := range ordered {
		i := cursor[e.From]
		g.targets[i] = e.To
		g.weights[i] = weight.Weight[W]{W1: e.W1, W2: e.W2}
		cursor[e.From]++
	}

	return g, nil
}

// NodeCount returns N, the number of nodes 0..N-1.
func (g *Graph[W]) NodeCount() int {
	return g.nodeCount
}

// EdgeCount returns the total number of edges.
func (g *Graph[W]) EdgeCount() int {
	return len(g.targets)
}

// EdgeBegin returns the index of the first outgoing edge of u.
func (g *Graph[W]) EdgeBegin(u int) int {
	return g.offsets[u]
}

// EdgeEnd returns one past the last outgoing edge of u.
func (g *Graph[W]) EdgeEnd(u int) int {
	return g.offsets[u+1]
}

// Edge returns the target and weight of the i-th edge overall
// (0 <= i < EdgeCount()), where i lies in [EdgeBegin(u), EdgeEnd(u))
// for u = the edge's source.
func (g *Graph[W]) Edge(i int) (target int, w weight.Weight[W]) {
	return g.targets[i], g.weights[i]
}

// String renders a short summary for diagnostics.
func (g *Graph[W]) String() string {
	return fmt.Sprintf("csrgraph.Graph{nodes=%d, edges=%d}", g.nodeCount, len(g.targets))
}
