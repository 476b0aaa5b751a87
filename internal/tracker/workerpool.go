package tracker

import (
	"context"

	"go.uber.org/zap"
)

type Task func() error

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// WorkerPool bounds how many submissions are refreshed at once so a large
// campaign cannot saturate provider quotas in a single tick.
type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(workers int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, workers)}
	for i := 0; i < workers; i++ {
		go wp.run()
	}
	return wp
}

func (wp *WorkerPool) run() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("tracker task failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	close(wp.tasks)
}
