package flush

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single flush worker that polls for buffers with flushable work
// and processes one flush per poll.
type Worker struct {
	id       string
	podID    string
	config   *config.WorkerConfig
	buffers  *services.BufferService
	manager  *Manager
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentUserID    string
	flushesProcessed int
	lastActivity     time.Time
}

// NewWorker creates a new flush worker.
func NewWorker(id, podID string, cfg *config.WorkerConfig, buffers *services.BufferService, manager *Manager) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		config:       cfg,
		buffers:      buffers,
		manager:      manager,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// An in-flight flush runs to completion. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentUserID:    w.currentUserID,
		FlushesProcessed: w.flushesProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Flush worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Flush worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, flush worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNothingToFlush) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing flush", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, scans for a buffer with flushable work,
// and flushes it. Processes at most one buffer per poll so workers spread
// across users.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	active, err := w.buffers.ProcessingGroupCount(ctx)
	if err != nil {
		return fmt.Errorf("checking active flushes: %w", err)
	}
	if active >= w.config.MaxConcurrentFlushes {
		return ErrAtCapacity
	}

	// 2. Scan buffers oldest-first for one whose triggers fire.
	groups, err := w.buffers.IdleGroups(ctx)
	if err != nil {
		return fmt.Errorf("scanning idle buffers: %w", err)
	}

	for _, g := range groups {
		ids, err := w.manager.Candidates(ctx, g.UserID, g.BlobType)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			continue
		}

		log := slog.With("worker_id", w.id, "user_id", g.UserID, "blob_type", g.BlobType)
		log.Info("Flush claimed", "candidates", len(ids))

		w.setStatus(WorkerStatusWorking, g.UserID)

		// 3. Run the flush under its own timeout. Terminal status writes
		//    inside the manager use a background context, so a timeout here
		//    never strands entries in processing.
		flushCtx, cancel := context.WithTimeout(ctx, w.config.FlushTimeout)
		result, err := w.manager.Flush(flushCtx, g.UserID, g.BlobType, ids, nil)
		cancel()

		w.setStatus(WorkerStatusIdle, "")

		if err != nil {
			return fmt.Errorf("flushing buffer for user %s: %w", g.UserID, err)
		}
		if result == nil {
			// Concurrent flush claimed everything first; try the next buffer.
			continue
		}

		w.mu.Lock()
		w.flushesProcessed++
		w.mu.Unlock()

		log.Info("Flush complete", "entries", len(result.BufferIDs))
		return nil
	}

	return ErrNothingToFlush
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentUserID = userID
	w.lastActivity = time.Now()
}
