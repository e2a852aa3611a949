package flush

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
)

// WorkerPool manages a pool of flush workers plus the stuck-entry watchdog.
type WorkerPool struct {
	podID    string
	config   *config.WorkerConfig
	buffers  *services.BufferService
	manager  *Manager
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Watchdog state
	watchdog watchdogState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, cfg *config.WorkerConfig, buffers *services.BufferService, manager *Manager) *WorkerPool {
	return &WorkerPool{
		podID:   podID,
		config:  cfg,
		buffers: buffers,
		manager: manager,
		workers: make([]*Worker, 0, cfg.WorkerCount),
		stopCh:  make(chan struct{}),
	}
}

// Start spawns worker goroutines and the watchdog background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting flush worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.config, p.buffers, p.manager)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start the stuck-entry watchdog
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runWatchdog(ctx)
	}()

	slog.Info("Flush worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current flushes before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping flush worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal the watchdog to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Flush worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	pending, errP := p.buffers.IdleGroups(ctx)
	if errP != nil {
		slog.Error("Failed to query pending buffers for health check",
			"pod_id", p.podID, "error", errP)
	}

	activeFlushes, errA := p.buffers.ProcessingGroupCount(ctx)
	if errA != nil {
		slog.Error("Failed to query active flushes for health check",
			"pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errP == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeFlushes <= p.config.MaxConcurrentFlushes && dbHealthy

	p.watchdog.mu.Lock()
	lastStuckScan := p.watchdog.lastScan
	entriesReaped := p.watchdog.entriesReaped
	p.watchdog.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errP != nil {
			dbError = fmt.Sprintf("pending buffers query failed: %v", errP)
		} else if errA != nil {
			dbError = fmt.Sprintf("active flushes query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:      isHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		PodID:          p.podID,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		ActiveFlushes:  activeFlushes,
		MaxConcurrent:  p.config.MaxConcurrentFlushes,
		PendingBuffers: len(pending),
		WorkerStats:    workerStats,
		LastStuckScan:  lastStuckScan,
		EntriesReaped:  entriesReaped,
	}
}
