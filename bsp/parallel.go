package bsp

import (
	"context"

	"github.com/katalvlaran/paretosp/labelset"
	"github.com/katalvlaran/paretosp/weight"
	"github.com/katalvlaran/paretosp/workstealing"
)

// groupResult holds the per-node-group outcome of one parallel batch
// update; each task writes to a distinct slot, so no synchronization
// is needed between tasks.
type groupResult[W weight.Integer] struct {
	updates []weight.Update[W]
	stats   labelset.BatchStats
}

// RunParallel executes the same search as Run, but applies the
// per-target-node label set updates of each iteration across a
// work-stealing pool: every node group touches only its own label
// set, so the groups of one iteration are embarrassingly parallel.
// The sequential bottleneck — draining the priority structure one
// iteration at a time — is unchanged, since each iteration's updates
// depend on the previous iteration's Pareto front.
func (e *Engine[W]) RunParallel(ctx context.Context, source int) (*Result[W], error) {
	sets, q, err := e.newSearchState(source)
	if err != nil {
		return nil, err
	}

	opts := []workstealing.Option{}
	if e.deadline > 0 {
		opts = append(opts, workstealing.WithDeadlockBudget(e.deadline))
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
		results := make([]groupResult[W], len(groups))

		tasks := make([]workstealing.Task, len(groups))
		for gi := range groups {
			gi := gi
			g := groups[gi]
			tasks[gi] = func() {
				var local []weight.Update[W]
				bstats := labelset.ApplyBatch(sets[g.node], g.node, g.labels, &local)
				results[gi] = groupResult[W]{updates: local, stats: bstats}
			}
		}

		// Each worker's deque is sized for its round-robin share of
		// this iteration's groups, so no iteration can overflow it.
		perWorker := (len(groups) + e.workers - 1) / e.workers
		pool := workstealing.New(e.workers, perWorker, opts...)
		if err := pool.Run(ctx, tasks); err != nil {
			return nil, err
		}

		var updates []weight.Update[W]
		for _, r := range results {
			stats.IdenticalTargetNodeRuns++
			stats.LabelDominated += r.stats.Dominated
			stats.LabelNonDominated += r.stats.NonDominated
			stats.DominationShortcut += r.stats.DominationShortcut
			updates = append(updates, r.updates...)
		}
		for _, m := range minima {
			updates = append(updates, weight.Update[W]{Kind: weight.Delete, Payload: m})
		}
		q.ApplyUpdates(updates)
	}

	return &Result[W]{sets: sets, stats: stats}, nil
}
