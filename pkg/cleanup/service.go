// Package cleanup provides data retention for buffer entries, blob bodies,
// and event history.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes done/failed buffer entries past buffer_retention_days
//   - Deletes blob bodies no buffer entry references anymore
//   - Deletes event and gist rows past event_retention_days (when set)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	bufferService *services.BufferService
	blobService   *services.BlobService
	eventService  *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	bufferService *services.BufferService,
	blobService *services.BlobService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:        cfg,
		bufferService: bufferService,
		blobService:   blobService,
		eventService:  eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"buffer_retention_days", s.config.BufferRetentionDays,
		"event_retention_days", s.config.EventRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneBuffers(ctx)
	s.pruneEvents(ctx)
}

// pruneBuffers deletes terminal buffer entries past retention, then drops
// the blob bodies nothing references anymore. Uses a background context so
// an in-flight pass survives shutdown cancellation.
func (s *Service) pruneBuffers(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.BufferRetentionDays)

	blobIDs, err := s.bufferService.PruneTerminal(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: buffer prune failed", "error", err)
		return
	}
	if len(blobIDs) == 0 {
		return
	}
	slog.Info("Retention: pruned terminal buffer entries", "count", len(blobIDs))

	orphans, err := s.bufferService.OrphanBlobIDs(context.Background(), blobIDs)
	if err != nil {
		slog.Error("Retention: orphan scan failed", "error", err)
		return
	}
	if len(orphans) == 0 {
		return
	}

	deleted, err := s.blobService.DeleteBlobs(context.Background(), orphans)
	if err != nil {
		slog.Error("Retention: blob cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Retention: deleted orphaned blobs", "count", deleted)
	}
}

// pruneEvents deletes event history past retention. Disabled when
// event_retention_days is zero.
func (s *Service) pruneEvents(_ context.Context) {
	if s.config.EventRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.EventRetentionDays)

	count, err := s.eventService.PruneEvents(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: event prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old events", "count", count)
	}
}
