package workers

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/alimgiray/gfolio/pkg/logger"
)

// WorkerManager starts and stops a set of workers together
type WorkerManager struct {
	workers []Worker
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	log     *logrus.Entry
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager() *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers: make([]Worker, 0),
		ctx:     ctx,
		cancel:  cancel,
		log:     logger.WithComponent("workers"),
	}
}

// Add registers a worker to be started by StartAll
func (wm *WorkerManager) Add(worker Worker) {
	wm.workers = append(wm.workers, worker)
}

// StartAll starts every registered worker in its own goroutine
func (wm *WorkerManager) StartAll() error {
	for _, worker := range wm.workers {
		wm.startWorker(worker)
	}

	wm.log.WithField("count", len(wm.workers)).Info("Started workers")
	return nil
}

// StopAll gracefully stops all workers and waits for them to return
func (wm *WorkerManager) StopAll() error {
	wm.log.Info("Stopping all workers...")

	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			wm.log.WithError(err).WithField("worker", worker.GetWorkerID()).Warn("Error stopping worker")
		}
	}

	wm.wg.Wait()

	wm.log.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			wm.log.WithError(err).WithField("worker", worker.GetWorkerID()).Error("Worker stopped with error")
		}
	}()
}

// GetWorkerStatus returns whether each worker is running, by ID
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool, len(wm.workers))
	for _, worker := range wm.workers {
		status[worker.GetWorkerID()] = worker.IsRunning()
	}
	return status
}
