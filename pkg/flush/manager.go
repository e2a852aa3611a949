package flush

import (
	"context"
	"log/slog"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/extraction"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
)

// Manager orchestrates a single flush: evaluate triggers, claim idle
// entries, load the blob bodies, run extraction, and mark the entries
// terminal. Used inline by the façade and by the worker pool; stateless and
// safe for concurrent use.
type Manager struct {
	cfg      *config.Config
	buffers  *services.BufferService
	blobs    *services.BlobService
	pipeline *extraction.Pipeline
	logger   *slog.Logger
}

// NewManager wires the flush path to its collaborators.
func NewManager(cfg *config.Config, buffers *services.BufferService, blobs *services.BlobService, pipeline *extraction.Pipeline) *Manager {
	return &Manager{
		cfg:      cfg,
		buffers:  buffers,
		blobs:    blobs,
		pipeline: pipeline,
		logger:   slog.With("component", "flush"),
	}
}

// Candidates evaluates the flush triggers for one buffer and returns the
// idle prefix to flush. Empty when neither the token threshold nor the age
// trigger fires.
func (m *Manager) Candidates(ctx context.Context, userID string, blobType blob.BlobType) ([]string, error) {
	return m.buffers.FlushCandidates(ctx, userID, blobType, m.cfg.MaxChatBlobBufferTokenSize, m.cfg.MaxBufferAge)
}

// FlushIfReady flushes the candidate prefix when a trigger has fired.
// Returns (nil, nil) when the buffer is not ready.
func (m *Manager) FlushIfReady(ctx context.Context, userID string, blobType blob.BlobType, pc *models.ProfileConfig) (*Result, error) {
	ids, err := m.Candidates(ctx, userID, blobType)
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	return m.Flush(ctx, userID, blobType, ids, pc)
}

// FlushAll flushes everything idle for the buffer regardless of trigger
// state. Used for explicit session-end flushes. Returns (nil, nil) when the
// buffer is empty.
func (m *Manager) FlushAll(ctx context.Context, userID string, blobType blob.BlobType, pc *models.ProfileConfig) (*Result, error) {
	ids, err := m.buffers.IdleIDs(ctx, userID, blobType)
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	return m.Flush(ctx, userID, blobType, ids, pc)
}

// Flush claims the given entries and runs extraction over whatever was
// claimed. Entries a concurrent flush already took are dropped from the
// batch silently; (nil, nil) when nothing is left to claim. Terminal status
// writes use a background context so a cancelled flush cannot strand
// entries in processing.
func (m *Manager) Flush(ctx context.Context, userID string, blobType blob.BlobType, bufferIDs []string, pc *models.ProfileConfig) (*Result, error) {
	rows, err := m.buffers.ClaimProcessing(ctx, userID, bufferIDs)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	claimed := make([]string, len(rows))
	blobIDs := make([]string, len(rows))
	for i, row := range rows {
		claimed[i] = row.ID
		blobIDs[i] = row.BlobID
	}

	log := m.logger.With("user_id", userID, "blob_type", blobType)

	// Bodies load in a second query; batch order is the claim order.
	bodies, err := m.blobs.GetBlobs(ctx, userID, blobIDs)
	if err != nil {
		m.markFailed(claimed, log)
		return nil, err
	}

	batch := make([]*blob.Blob, 0, len(rows))
	for i, blobID := range blobIDs {
		b, ok := bodies[blobID]
		if !ok {
			log.Warn("Buffer entry references a missing blob, skipping",
				"buffer_id", claimed[i], "blob_id", blobID)
			continue
		}
		batch = append(batch, b)
	}

	result, err := m.pipeline.Extract(ctx, userID, batch, pc)
	if err != nil {
		m.markFailed(claimed, log)
		return nil, err
	}

	if err := m.buffers.MarkDone(context.Background(), claimed); err != nil {
		log.Error("Failed to mark flushed entries done", "error", err)
		return nil, err
	}

	log.Info("Buffer flushed",
		"entries", len(claimed),
		"profiles_added", len(result.AddIDs),
		"profiles_updated", len(result.UpdateIDs),
		"profiles_deleted", len(result.DeleteIDs))
	return &Result{
		UserID:     userID,
		BlobType:   blobType,
		BufferIDs:  claimed,
		Extraction: result,
	}, nil
}

// markFailed best-effort transitions claimed entries to failed. When even
// that write fails the entries stay in processing and the watchdog reaps
// them later.
func (m *Manager) markFailed(bufferIDs []string, log *slog.Logger) {
	if err := m.buffers.MarkFailed(context.Background(), bufferIDs); err != nil {
		log.Error("Failed to mark entries failed, watchdog will reap them",
			"entries", len(bufferIDs), "error", err)
	}
}
