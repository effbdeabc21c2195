// Package bsp implements the bi-objective shortest-path label-setting
// search: repeatedly pull the current Pareto front off the global
// priority structure, relax every outgoing edge of every front
// member, fold the resulting candidates into each target node's label
// set, and feed the accepted labels back into the priority structure,
// until it runs dry.
package bsp

import (
	"context"
	"sort"
	"time"

	"github.com/katalvlaran/paretosp/csrgraph"
	"github.com/katalvlaran/paretosp/labelset"
	"github.com/katalvlaran/paretosp/pqueue"
	"github.com/katalvlaran/paretosp/weight"
	"github.com/katalvlaran/paretosp/xerrors"
)

// Engine runs bi-objective searches over a fixed graph. It holds no
// mutable per-search state itself; each call to Run or RunParallel
// builds a fresh Result.
type Engine[W weight.Integer] struct {
	graph    *csrgraph.Graph[W]
	labelRep labelset.Representation
	queueRep pqueue.Representation
	workers  int
	deadline time.Duration
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	labelRep labelset.Representation
	queueRep pqueue.Representation
	workers  int
	deadline time.Duration
}

// WithLabelRepresentation selects the per-node label set storage.
func WithLabelRepresentation(rep labelset.Representation) Option {
	return func(c *config) { c.labelRep = rep }
}

// WithQueueRepresentation selects the global priority structure
// storage.
func WithQueueRepresentation(rep pqueue.Representation) Option {
	return func(c *config) { c.queueRep = rep }
}

// WithWorkers sets the worker count RunParallel uses. Panics if n is
// not positive.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("bsp: worker count must be positive")
	}

	return func(c *config) { c.workers = n }
}

// WithDeadlockBudget overrides the real-time budget RunParallel's
// underlying work-stealing pool allows a worker to search for work
// before reporting a deadlock.
func WithDeadlockBudget(d time.Duration) Option {
	if d <= 0 {
		panic("bsp: deadlock budget must be positive")
	}

	return func(c *config) { c.deadline = d }
}

// New constructs an Engine over graph, defaulting to the sequence
// representation for both the label sets and the priority structure
// and 4 workers for RunParallel.
func New[W weight.Integer](graph *csrgraph.Graph[W], opts ...Option) *Engine[W] {
	c := config{
		labelRep: labelset.SequenceRepresentation,
		queueRep: pqueue.SequenceRepresentation,
		workers:  4,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return &Engine[W]{
		graph:    graph,
		labelRep: c.labelRep,
		queueRep: c.queueRep,
		workers:  c.workers,
		deadline: c.deadline,
	}
}

// nodeGroup is a contiguous run of candidate labels all targeting the
// same node, already sorted ascending by (W1, W2).
type nodeGroup[W weight.Integer] struct {
	node   int
	labels []weight.Label[W]
}

// groupByNode sorts candidates by (Node, W1, W2) and slices them into
// per-node runs, so every run's label-set update touches exactly one
// node's label set.
func groupByNode[W weight.Integer](candidates []weight.NodeLabel[W]) []nodeGroup[W] {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Node != b.Node {
			return a.Node < b.Node
		}

		return weight.Less(a.Label, b.Label)
	})

	var groups []nodeGroup[W]
	i := 0
	for i < len(candidates) {
		j := i
		node := candidates[i].Node
		labels := make([]weight.Label[W], 0)
		for j < len(candidates) && candidates[j].Node == node {
			labels = append(labels, candidates[j].Label)
			j++
		}
		groups = append(groups, nodeGroup[W]{node: node, labels: labels})
		i = j
	}

	return groups
}

// relax computes every edge-relaxation candidate reachable from one
// Pareto-front member.
func (e *Engine[W]) relax(minimum weight.NodeLabel[W]) ([]weight.NodeLabel[W], error) {
	var candidates []weight.NodeLabel[W]
	for i := e.graph.EdgeBegin(minimum.Node); i < e.graph.EdgeEnd(minimum.Node); i++ {
		target, edgeWeight := e.graph.Edge(i)
		newLabel, err := weight.Add(minimum.Label, edgeWeight)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Precondition, err, "bsp: relaxing edge %d->%d", minimum.Node, target)
		}
		candidates = append(candidates, weight.NodeLabel[W]{Node: target, Label: newLabel})
	}

	return candidates, nil
}

// newSearchState allocates the per-node label sets and seeds the
// priority structure for a search rooted at source.
func (e *Engine[W]) newSearchState(source int) ([]labelset.Set[W], pqueue.Queue[W], error) {
	if source < 0 || source >= e.graph.NodeCount() {
		return nil, nil, xerrors.New(xerrors.Precondition, "bsp: source %d out of range [0,%d)", source, e.graph.NodeCount())
	}

	sets := make([]labelset.Set[W], e.graph.NodeCount())
	for i := range sets {
		sets[i] = labelset.New[W](e.labelRep)
	}
	// The origin's own zero-cost label is never produced by relaxing
	// an edge into it, so it is seeded directly rather than left
	// implicit.
	sets[source].Add(weight.Weight[W]{})

	q := pqueue.New[W](e.queueRep)
	q.Init([]weight.NodeLabel[W]{{Node: source, Label: weight.Weight[W]{}}})

	return sets, q, nil
}

// Run executes the search sequentially from source until the
// priority structure is drained.
func (e *Engine[W]) Run(ctx context.Context, source int) (*Result[W], error) {
	sets, q, err := e.newSearchState(source)
	if err != nil {
		return nil, err
	}

	var stats Stats
	for !q.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats.Iterations++

		minima := q.FindParetoMinima()
		stats.MinimaCount += len(minima)

		var candidates []weight.NodeLabel[W]
		for _, m := range minima {
			rel, err := e.relax(m)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, rel...)
		}

		groups := groupByNode(candidates)

		var updates []weight.Update[W]
		for _, g := range groups {
			stats.IdenticalTargetNodeRuns++
			bstats := labelset.ApplyBatch(sets[g.node], g.node, g.labels, &updates)
			stats.LabelDominated += bstats.Dominated
			stats.LabelNonDominated += bstats.NonDominated
			stats.DominationShortcut += bstats.DominationShortcut
		}

		for _, m := range minima {
			updates = append(updates, weight.Update[W]{Kind: weight.Delete, Payload: m})
		}
		q.ApplyUpdates(updates)
	}

	return &Result[W]{sets: sets, stats: stats}, nil
}
