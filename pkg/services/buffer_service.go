package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/blobrecord"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

// BufferService manages the per-user, per-blob-type ingestion queue backed
// by buffer_zone rows. Status is a one-way state machine: idle → processing
// → done|failed. The idle → processing transition is the only concurrency
// control flushes need: entries not in idle are dropped from a claim
// silently, so concurrent flushes of the same buffer see fewer rows, never
// corrupt ones.
type BufferService struct {
	client *ent.Client
}

// NewBufferService creates a new BufferService
func NewBufferService(client *ent.Client) *BufferService {
	return &BufferService{client: client}
}

// Insert persists the blob body and its buffer entry in one transaction.
// token_size is computed here, once, from the rendered blob text; it is
// never recomputed. Returns the buffer entry id.
func (s *BufferService) Insert(ctx context.Context, userID string, b *blob.Blob) (string, error) {
	if userID == "" {
		return "", NewValidationError("user_id", "required")
	}
	if err := b.Validate(); err != nil {
		return "", NewValidationError("blob", err.Error())
	}

	payload, err := b.PayloadJSON()
	if err != nil {
		return "", memerr.E(memerr.ErrInternal, "buffer.insert", err)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	tokenSize := blob.CountTokens(b.RenderText())

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", memerr.E(memerr.ErrServiceUnavailable, "buffer.insert", fmt.Errorf("failed to start transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.BlobRecord.Create().
		SetID(b.ID).
		SetUserID(userID).
		SetBlobType(blobrecord.BlobType(b.Type)).
		SetBlobData(payload).
		SetCreatedAt(b.CreatedAt).
		Save(ctx)
	if err != nil {
		return "", storageErr("buffer.insert", err)
	}

	bufferID := uuid.New().String()
	now := time.Now()
	_, err = tx.BufferEntry.Create().
		SetID(bufferID).
		SetUserID(userID).
		SetBlobID(b.ID).
		SetBlobType(bufferentry.BlobType(b.Type)).
		SetStatus(bufferentry.StatusIdle).
		SetTokenSize(tokenSize).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return "", storageErr("buffer.insert", err)
	}

	if err := tx.Commit(); err != nil {
		return "", memerr.E(memerr.ErrServiceUnavailable, "buffer.insert", fmt.Errorf("failed to commit transaction: %w", err))
	}
	return bufferID, nil
}

// Capacity returns the number of idle entries for the user and blob type.
func (s *BufferService) Capacity(ctx context.Context, userID string, blobType blob.BlobType) (int, error) {
	count, err := s.client.BufferEntry.Query().
		Where(
			bufferentry.UserIDEQ(userID),
			bufferentry.BlobTypeEQ(bufferentry.BlobType(blobType)),
			bufferentry.StatusEQ(bufferentry.StatusIdle),
		).
		Count(ctx)
	if err != nil {
		return 0, storageErr("buffer.capacity", err)
	}
	return count, nil
}

// IdleIDs returns the idle entry ids in insertion order.
func (s *BufferService) IdleIDs(ctx context.Context, userID string, blobType blob.BlobType) ([]string, error) {
	rows, err := s.queryIdleOrdered(ctx, userID, blobType)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}

// FlushCandidates returns the idle prefix whose summed token_size first
// exceeds tokenThreshold, plus any entries older than maxAge. Idle ordering
// is insertion order, so both conditions select a prefix; the result is the
// longer of the two. Empty when neither condition holds. maxAge <= 0
// disables the age trigger.
func (s *BufferService) FlushCandidates(ctx context.Context, userID string, blobType blob.BlobType, tokenThreshold int, maxAge time.Duration) ([]string, error) {
	rows, err := s.queryIdleOrdered(ctx, userID, blobType)
	if err != nil {
		return nil, err
	}

	prefixEnd := -1
	running := 0
	for i, row := range rows {
		running += row.TokenSize
		if running > tokenThreshold {
			prefixEnd = i
			break
		}
	}

	agedEnd := -1
	if maxAge > 0 {
		cutoff := time.Now().Add(-maxAge)
		for i, row := range rows {
			if row.CreatedAt.Before(cutoff) {
				agedEnd = i
			} else {
				break
			}
		}
	}

	end := prefixEnd
	if agedEnd > end {
		end = agedEnd
	}
	if end < 0 {
		return nil, nil
	}

	ids := make([]string, end+1)
	for i := 0; i <= end; i++ {
		ids[i] = rows[i].ID
	}
	return ids, nil
}

// ClaimProcessing atomically transitions the given entries from idle to
// processing using FOR UPDATE SKIP LOCKED, and returns the claimed rows in
// insertion order. Entries that are not idle (or are locked by a concurrent
// claim) are dropped silently.
func (s *BufferService) ClaimProcessing(ctx context.Context, userID string, bufferIDs []string) ([]*ent.BufferEntry, error) {
	if len(bufferIDs) == 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, memerr.E(memerr.ErrServiceUnavailable, "buffer.claim", fmt.Errorf("failed to start transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.BufferEntry.Query().
		Where(
			bufferentry.UserIDEQ(userID),
			bufferentry.IDIn(bufferIDs...),
			bufferentry.StatusEQ(bufferentry.StatusIdle),
		).
		Order(ent.Asc(bufferentry.FieldCreatedAt), ent.Asc(bufferentry.FieldID)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, storageErr("buffer.claim", err)
	}
	if len(rows) == 0 {
		if err := tx.Commit(); err != nil {
			return nil, memerr.E(memerr.ErrServiceUnavailable, "buffer.claim", fmt.Errorf("failed to commit claim: %w", err))
		}
		return nil, nil
	}

	claimedIDs := make([]string, len(rows))
	for i, row := range rows {
		claimedIDs[i] = row.ID
	}

	_, err = tx.BufferEntry.Update().
		Where(bufferentry.IDIn(claimedIDs...)).
		SetStatus(bufferentry.StatusProcessing).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, storageErr("buffer.claim", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, memerr.E(memerr.ErrServiceUnavailable, "buffer.claim", fmt.Errorf("failed to commit claim: %w", err))
	}
	return rows, nil
}

// MarkDone transitions processing entries to done. Entries in any other
// state are left untouched; done and failed are terminal.
func (s *BufferService) MarkDone(ctx context.Context, bufferIDs []string) error {
	return s.markTerminal(ctx, bufferIDs, bufferentry.StatusDone)
}

// MarkFailed transitions processing entries to failed.
func (s *BufferService) MarkFailed(ctx context.Context, bufferIDs []string) error {
	return s.markTerminal(ctx, bufferIDs, bufferentry.StatusFailed)
}

func (s *BufferService) markTerminal(ctx context.Context, bufferIDs []string, status bufferentry.Status) error {
	if len(bufferIDs) == 0 {
		return nil
	}
	_, err := s.client.BufferEntry.Update().
		Where(
			bufferentry.IDIn(bufferIDs...),
			bufferentry.StatusEQ(bufferentry.StatusProcessing),
		).
		SetStatus(status).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return storageErr("buffer.mark", err)
	}
	return nil
}

// FailStuckProcessing transitions entries that have sat in processing longer
// than stuckThreshold to failed. A cancelled flush leaves its entries in
// processing; this is the watchdog path that reaps them. Returns the number
// of entries reaped.
func (s *BufferService) FailStuckProcessing(ctx context.Context, stuckThreshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-stuckThreshold)
	count, err := s.client.BufferEntry.Update().
		Where(
			bufferentry.StatusEQ(bufferentry.StatusProcessing),
			bufferentry.UpdatedAtLT(cutoff),
		).
		SetStatus(bufferentry.StatusFailed).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, storageErr("buffer.fail_stuck", err)
	}
	return count, nil
}

// PruneTerminal deletes done and failed entries older than cutoff and
// returns the blob ids they referenced, so the retention daemon can drop
// blob bodies that no buffer entry references anymore.
func (s *BufferService) PruneTerminal(ctx context.Context, cutoff time.Time) ([]string, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, memerr.E(memerr.ErrServiceUnavailable, "buffer.prune", fmt.Errorf("failed to start transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.BufferEntry.Query().
		Where(
			bufferentry.StatusIn(bufferentry.StatusDone, bufferentry.StatusFailed),
			bufferentry.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, storageErr("buffer.prune", err)
	}
	if len(rows) == 0 {
		if err := tx.Commit(); err != nil {
			return nil, memerr.E(memerr.ErrServiceUnavailable, "buffer.prune", fmt.Errorf("failed to commit prune: %w", err))
		}
		return nil, nil
	}

	ids := make([]string, len(rows))
	blobIDs := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		blobIDs[i] = row.BlobID
	}

	_, err = tx.BufferEntry.Delete().
		Where(bufferentry.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return nil, storageErr("buffer.prune", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, memerr.E(memerr.ErrServiceUnavailable, "buffer.prune", fmt.Errorf("failed to commit prune: %w", err))
	}
	return blobIDs, nil
}

// BufferGroup identifies one per-user, per-blob-type buffer that has idle
// entries, with the age of its oldest entry for oldest-first scheduling.
type BufferGroup struct {
	UserID          string
	BlobType        blob.BlobType
	OldestCreatedAt time.Time
}

// IdleGroups returns the buffers that currently hold idle entries, oldest
// first. Flush workers scan this to find work.
func (s *BufferService) IdleGroups(ctx context.Context) ([]BufferGroup, error) {
	var rows []struct {
		UserID   string    `json:"user_id"`
		BlobType string    `json:"blob_type"`
		Oldest   time.Time `json:"oldest"`
	}
	err := s.client.BufferEntry.Query().
		Where(bufferentry.StatusEQ(bufferentry.StatusIdle)).
		GroupBy(bufferentry.FieldUserID, bufferentry.FieldBlobType).
		Aggregate(func(sel *sql.Selector) string {
			return sql.As(sql.Min(sel.C(bufferentry.FieldCreatedAt)), "oldest")
		}).
		Scan(ctx, &rows)
	if err != nil {
		return nil, storageErr("buffer.groups", err)
	}

	groups := make([]BufferGroup, len(rows))
	for i, row := range rows {
		groups[i] = BufferGroup{
			UserID:          row.UserID,
			BlobType:        blob.BlobType(row.BlobType),
			OldestCreatedAt: row.Oldest,
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].OldestCreatedAt.Before(groups[j].OldestCreatedAt)
	})
	return groups, nil
}

// ProcessingGroupCount returns the number of buffers with entries in
// processing, i.e. flushes in flight across all replicas.
func (s *BufferService) ProcessingGroupCount(ctx context.Context) (int, error) {
	var rows []struct {
		UserID   string `json:"user_id"`
		BlobType string `json:"blob_type"`
	}
	err := s.client.BufferEntry.Query().
		Where(bufferentry.StatusEQ(bufferentry.StatusProcessing)).
		GroupBy(bufferentry.FieldUserID, bufferentry.FieldBlobType).
		Scan(ctx, &rows)
	if err != nil {
		return 0, storageErr("buffer.processing", err)
	}
	return len(rows), nil
}

// OrphanBlobIDs returns blob ids from the given set that no buffer entry
// references anymore.
func (s *BufferService) OrphanBlobIDs(ctx context.Context, blobIDs []string) ([]string, error) {
	if len(blobIDs) == 0 {
		return nil, nil
	}

	rows, err := s.client.BufferEntry.Query().
		Where(bufferentry.BlobIDIn(blobIDs...)).
		Select(bufferentry.FieldBlobID).
		All(ctx)
	if err != nil {
		return nil, storageErr("buffer.orphans", err)
	}

	referenced := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		referenced[row.BlobID] = struct{}{}
	}

	var orphans []string
	for _, id := range blobIDs {
		if _, ok := referenced[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	return orphans, nil
}

func (s *BufferService) queryIdleOrdered(ctx context.Context, userID string, blobType blob.BlobType) ([]*ent.BufferEntry, error) {
	rows, err := s.client.BufferEntry.Query().
		Where(
			bufferentry.UserIDEQ(userID),
			bufferentry.BlobTypeEQ(bufferentry.BlobType(blobType)),
			bufferentry.StatusEQ(bufferentry.StatusIdle),
		).
		Order(ent.Asc(bufferentry.FieldCreatedAt), ent.Asc(bufferentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, storageErr("buffer.idle", err)
	}
	return rows, nil
}
