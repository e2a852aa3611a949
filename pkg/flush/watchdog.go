package flush

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
)

// watchdogState tracks stuck-entry scan metrics (thread-safe).
type watchdogState struct {
	mu            sync.Mutex
	lastScan      time.Time
	entriesReaped int
}

// runWatchdog periodically reaps processing entries whose flush died without
// reaching a terminal write. All replicas run this independently — the
// transition is idempotent.
func (p *WorkerPool) runWatchdog(ctx context.Context) {
	ticker := time.NewTicker(p.config.StuckScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.reapStuck(ctx); err != nil {
				slog.Error("Stuck-entry scan failed", "error", err)
			}
		}
	}
}

// reapStuck flips processing entries older than StuckThreshold to failed.
// A live flush cannot trip it: FlushTimeout bounds worker flushes well below
// the threshold.
func (p *WorkerPool) reapStuck(ctx context.Context) error {
	reaped, err := p.buffers.FailStuckProcessing(ctx, p.config.StuckThreshold)
	if err != nil {
		return err
	}

	p.watchdog.mu.Lock()
	p.watchdog.lastScan = time.Now()
	p.watchdog.entriesReaped += reaped
	p.watchdog.mu.Unlock()

	if reaped > 0 {
		slog.Warn("Reaped stuck buffer entries", "pod_id", p.podID, "count", reaped)
	}
	return nil
}

// RecoverStartupStuck performs a one-time scan at daemon startup, failing
// processing entries left behind by a previous run. Buffer entries carry no
// replica identity, so only entries older than stuckThreshold are touched —
// younger ones may belong to a live replica and age into the periodic scan
// if they do not.
func RecoverStartupStuck(ctx context.Context, buffers *services.BufferService, stuckThreshold time.Duration) (int, error) {
	reaped, err := buffers.FailStuckProcessing(ctx, stuckThreshold)
	if err != nil {
		return 0, err
	}
	if reaped > 0 {
		slog.Warn("Recovered stuck buffer entries from previous run", "count", reaped)
	}
	return reaped, nil
}
