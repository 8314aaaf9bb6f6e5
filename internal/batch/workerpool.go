package batch

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Task func() error

// WorkerPool runs submitted tasks on a fixed number of goroutines.
// Task errors are logged, never propagated.
type WorkerPool struct {
	tasks  chan Task
	group  errgroup.Group
	closer sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{tasks: make(chan Task, size)}
	for i := 0; i < size; i++ {
		wp.group.Go(wp.worker)
	}
	return wp
}

func (wp *WorkerPool) worker() error {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
	return nil
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.closer.Do(func() {
		close(wp.tasks)
	})
	_ = wp.group.Wait()
}
