package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/pkg/logger"
)

// Refresher fetches and persists a new snapshot
type Refresher interface {
	Refresh(ctx context.Context) (*models.Snapshot, error)
}

// RefreshWorker keeps the snapshot cache warm by refreshing it on an
// interval shorter than the cache lifetime.
type RefreshWorker struct {
	*BaseWorker
	refresher Refresher
	interval  time.Duration
	log       *logrus.Entry

	statsMu     sync.Mutex
	lastRefresh time.Time
	failures    int
}

// NewRefreshWorker creates a worker that refreshes immediately and then
// every interval.
func NewRefreshWorker(workerID string, refresher Refresher, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: NewBaseWorker(workerID),
		refresher:  refresher,
		interval:   interval,
		log:        logger.WithComponent("refresh").WithField("worker", workerID),
	}
}

// Start begins the refresh loop
func (w *RefreshWorker) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)
	w.log.WithField("interval", w.interval.String()).Info("Refresh worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("Refresh worker stopping due to context cancellation")
			return ctx.Err()
		case <-w.StopChan:
			w.log.Info("Refresh worker stopping")
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	start := time.Now()
	snapshot, err := w.refresher.Refresh(ctx)

	w.statsMu.Lock()
	defer w.statsMu.Unlock()

	if err != nil {
		w.failures++
		w.log.WithError(err).WithField("failures", w.failures).Warn("Failed to refresh portfolio snapshot")
		return
	}

	w.failures = 0
	w.lastRefresh = time.Now()
	w.log.WithFields(logrus.Fields{
		"repos":       len(snapshot.Repos),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Refreshed portfolio snapshot")
}

// LastRefresh returns when the last successful refresh finished
func (w *RefreshWorker) LastRefresh() time.Time {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	return w.lastRefresh
}

// Failures returns the number of consecutive failed refreshes
func (w *RefreshWorker) Failures() int {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	return w.failures
}
