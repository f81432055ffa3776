package workers

import "context"

// Workers runs a fixed set of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the non-nil workers.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Len reports how many workers are grouped.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
