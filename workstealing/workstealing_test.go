package workstealing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosp/workstealing"
	"github.com/katalvlaran/paretosp/xerrors"
)

func TestRunExecutesAllTasks(t *testing.T) {
	pool := workstealing.New(4, 256)

	var mu sync.Mutex
	var sum int
	tasks := make([]workstealing.Task, 0, 1000)
	for i := 1; i <= 1000; i++ {
		i := i
		tasks = append(tasks, func() {
			mu.Lock()
			sum += i
			mu.Unlock()
		})
	}

	require.NoError(t, pool.Run(context.Background(), tasks))
	require.Equal(t, 500500, sum)
}

func TestRunSingleWorker(t *testing.T) {
	pool := workstealing.New(1, 64)
	var count int
	tasks := make([]workstealing.Task, 0, 50)
	for i := 0; i < 50; i++ {
		tasks = append(tasks, func() { count++ })
	}
	require.NoError(t, pool.Run(context.Background(), tasks))
	require.Equal(t, 50, count)
}

func TestRunDeadlockSuspicion(t *testing.T) {
	pool := workstealing.New(2, 8, workstealing.WithDeadlockBudget(20*time.Millisecond))

	blocked := make(chan struct{})
	tasks := []workstealing.Task{
		func() { <-blocked },
	}
	// The second worker has no work of its own and nothing to steal
	// while the first worker's single task is still running; it must
	// report a deadlock rather than spin forever.
	errCh := make(chan error, 1)
	go func() { errCh <- pool.Run(context.Background(), tasks) }()

	select {
	case err := <-errCh:
		close(blocked)
		t.Fatalf("expected the run to still be blocked on the long task, got %v", err)
	case <-time.After(100 * time.Millisecond):
	}
	close(blocked)

	err := <-errCh
	require.Error(t, err)
	var fault *xerrors.Fault
	require.ErrorAs(t, err, &fault)
	require.Equal(t, xerrors.Deadlock, fault.Kind)
}
