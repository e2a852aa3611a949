package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/eventgist"
	"github.com/AlwaysBluer/lindorm-memobase/ent/memoryevent"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/search"
)

// EventService manages the append-only event audit records and their
// retrieval-time gists. The events table is the system of record; the gist
// index only accelerates vector search.
type EventService struct {
	client *ent.Client
	index  search.GistIndex
}

// NewEventService creates a new EventService. index may be nil, in which
// case vector search is refused with a not-implemented error.
func NewEventService(client *ent.Client, index search.GistIndex) *EventService {
	return &EventService{client: client, index: index}
}

// PutEvent appends one audit record and returns its id.
func (s *EventService) PutEvent(ctx context.Context, userID string, data models.EventData, embedding []float32) (string, error) {
	if userID == "" {
		return "", NewValidationError("user_id", "required")
	}

	id := uuid.New().String()
	create := s.client.MemoryEvent.Create().
		SetID(id).
		SetUserID(userID).
		SetEventData(data).
		SetCreatedAt(time.Now())
	if len(embedding) > 0 {
		create = create.SetEmbedding(embedding)
	}

	if _, err := create.Save(ctx); err != nil {
		return "", storageErr("event.put", err)
	}
	return id, nil
}

// PutGist appends one gist under an existing event and indexes it for
// vector search when an embedding is present.
func (s *EventService) PutGist(ctx context.Context, userID, eventID, content string, embedding []float32) (string, error) {
	if userID == "" {
		return "", NewValidationError("user_id", "required")
	}
	if eventID == "" {
		return "", NewValidationError("event_id", "required")
	}

	id := uuid.New().String()
	createdAt := time.Now()
	create := s.client.EventGist.Create().
		SetID(id).
		SetUserID(userID).
		SetEventID(eventID).
		SetContent(content).
		SetCreatedAt(createdAt)
	if len(embedding) > 0 {
		create = create.SetEmbedding(embedding)
	}

	if _, err := create.Save(ctx); err != nil {
		return "", storageErr("gist.put", err)
	}

	if s.index != nil && len(embedding) > 0 {
		gist := models.Gist{
			ID:        id,
			UserID:    userID,
			EventID:   eventID,
			Content:   content,
			CreatedAt: createdAt,
		}
		if err := s.index.IndexGist(ctx, gist, embedding); err != nil {
			return "", err
		}
	}
	return id, nil
}

// RecentGists returns up to topk gists created within the last windowDays,
// newest first. windowDays <= 0 disables the window.
func (s *EventService) RecentGists(ctx context.Context, userID string, topk, windowDays int) ([]models.Gist, error) {
	if topk <= 0 {
		return nil, nil
	}

	q := s.client.EventGist.Query().
		Where(eventgist.UserIDEQ(userID))
	if windowDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -windowDays)
		q = q.Where(eventgist.CreatedAtGT(cutoff))
	}

	rows, err := q.
		Order(ent.Desc(eventgist.FieldCreatedAt)).
		Limit(topk).
		All(ctx)
	if err != nil {
		return nil, storageErr("gist.recent", err)
	}

	gists := make([]models.Gist, len(rows))
	for i, row := range rows {
		gists[i] = models.Gist{
			ID:        row.ID,
			UserID:    row.UserID,
			EventID:   row.EventID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
		}
	}
	return gists, nil
}

// SearchGists runs a vector search over the user's gists. Refused with a
// not-implemented error when event embedding is disabled; callers that can
// degrade should fall back to RecentGists themselves.
func (s *EventService) SearchGists(ctx context.Context, userID string, queryVec []float32, topk int, threshold float64, windowDays int) ([]models.GistHit, error) {
	if s.index == nil {
		return nil, memerr.Ef(memerr.ErrNotImplemented, "gist.search", "event embedding is disabled")
	}
	return s.index.SearchGists(ctx, userID, queryVec, topk, threshold, windowDays)
}

// GetEvents returns up to limit audit records created within the last
// windowDays, newest first. A user with no events gets an empty list.
func (s *EventService) GetEvents(ctx context.Context, userID string, windowDays, limit int) ([]models.Event, error) {
	q := s.client.MemoryEvent.Query().
		Where(memoryevent.UserIDEQ(userID))
	if windowDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -windowDays)
		q = q.Where(memoryevent.CreatedAtGT(cutoff))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.
		Order(ent.Desc(memoryevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storageErr("event.list", err)
	}

	events := make([]models.Event, len(rows))
	for i, row := range rows {
		events[i] = models.Event{
			ID:        row.ID,
			UserID:    row.UserID,
			Data:      row.EventData,
			CreatedAt: row.CreatedAt,
		}
	}
	return events, nil
}

// PruneEvents deletes audit records older than cutoff. Gists go with their
// parent via the cascading foreign key. Only the retention daemon calls
// this; the core never deletes events in-band.
func (s *EventService) PruneEvents(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.MemoryEvent.Delete().
		Where(memoryevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, storageErr("event.prune", err)
	}
	return count, nil
}
