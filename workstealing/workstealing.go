// Package workstealing implements a fixed-size work-stealing thread
// pool: one bounded deque per worker (package deque), a shared
// elements-leftover counter touched only with atomic add/sub, and a
// run-until-global-empty loop with randomized victim selection.
//
// It is the substrate the BSP engine (package bsp) uses to
// parallelize the embarrassingly-parallel, per-target-node work of
// its iteration loop; correctness of the engine never depends on this
// package — sequential execution is a fully valid and tested
// configuration.
package workstealing

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/paretosp/deque"
	"github.com/katalvlaran/paretosp/xatomic"
	"github.com/katalvlaran/paretosp/xerrors"
)

// DefaultDeadlockBudget is the real-time budget a worker may spend
// searching for work, while the shared leftover count is still
// positive, before the pool reports a deadlock.
const DefaultDeadlockBudget = time.Second

// Task is one unit of work submitted to the pool.
type Task func()

// Pool runs a fixed number of Tasks to completion using work stealing
// across P workers, each owning one deque.Bounded[Task].
type Pool struct {
	workers        []*deque.Bounded[Task]
	leftover       xatomic.Counter
	deadlockBudget time.Duration
}

// Option configures a Pool.
type Option func(*Pool)

// WithDeadlockBudget overrides the per-worker real-time budget used
// to detect a stalled steal loop.
func WithDeadlockBudget(d time.Duration) Option {
	return func(p *Pool) {
		if d <= 0 {
			panic("workstealing: deadlock budget must be positive")
		}
		p.deadlockBudget = d
	}
}

// New constructs a Pool with numWorkers deques, each sized to hold
// capacityHint tasks (rounded up to a power of two per package
// deque's sizing rule).
func New(numWorkers, capacityHint int, opts ...Option) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	p := &Pool{
		workers:        make([]*deque.Bounded[Task], numWorkers),
		deadlockBudget: DefaultDeadlockBudget,
	}
	for i := range p.workers {
		p.workers[i] = deque.New[Task](capacityHint)
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NumWorkers reports the fixed worker count.
func (p *Pool) NumWorkers() int {
	return len(p.workers)
}

// Run distributes tasks round-robin across the worker deques and runs
// them to completion: each worker drains its own deque LIFO from the
// front, then steals from random victims' backs until the shared
// leftover counter reaches zero. It returns the first task-submission
// error (deque overflow) or an xerrors.Fault{Kind: Deadlock} if any
// worker exceeds its real-time budget without finding work.
func (p *Pool) Run(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	numWorkers := len(p.workers)
	for i, task := range tasks {
		owner := i % numWorkers
		if err := p.workers[owner].PushFront(task); err != nil {
			return err
		}
	}
	p.leftover.Add(int64(len(tasks)))

	g, ctx := errgroup.WithContext(ctx)
	for id := 0; id < numWorkers; id++ {
		id := id
		g.Go(func() error {
			return p.runWorker(ctx, id)
		})
	}

	return g.Wait()
}

// runWorker is the steal loop for one worker.
func (p *Pool) runWorker(ctx context.Context, id int) error {
	mine := p.workers[id]
	numWorkers := len(p.workers)
	searchStarted := time.Time{}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if task, ok := mine.PopFront(); ok {
			task()
			p.leftover.Add(-1)
			searchStarted = time.Time{}
			continue
		}

		if p.leftover.Load() <= 0 {
			return nil
		}

		victim := randomVictim(id, numWorkers)
		if task, ok := p.workers[victim].PopBack(); ok {
			task()
			p.leftover.Add(-1)
			searchStarted = time.Time{}
			continue
		}

		if searchStarted.IsZero() {
			searchStarted = time.Now()
		} else if time.Since(searchStarted) > p.deadlockBudget {
			return xerrors.New(xerrors.Deadlock, "workstealing: worker %d found no work for %s", id, p.deadlockBudget)
		}

		xatomic.Yield()
	}
}

// randomVictim picks a uniformly random worker index different from
// self.
func randomVictim(self, numWorkers int) int {
	if numWorkers <= 1 {
		return self
	}
	v := rand.IntN(numWorkers - 1)
	if v >= self {
		v++
	}

	return v
}
