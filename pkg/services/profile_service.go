package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/userprofile"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// ProfileService manages the durable user profile rows. All mutations are
// single-row; the merge planner produces an idempotent action list, so a
// failed batch is retried whole rather than per row.
type ProfileService struct {
	client *ent.Client
}

// NewProfileService creates a new ProfileService
func NewProfileService(client *ent.Client) *ProfileService {
	return &ProfileService{client: client}
}

// AddProfiles inserts new profile rows and returns their ids in input order.
// created_at and updated_at are stamped with the same instant.
func (s *ProfileService) AddProfiles(ctx context.Context, userID string, adds []models.AddProfile) ([]string, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	ids := make([]string, 0, len(adds))
	for _, add := range adds {
		now := time.Now()
		id := uuid.New().String()
		_, err := s.client.UserProfile.Create().
			SetID(id).
			SetUserID(userID).
			SetContent(add.Content).
			SetAttributes(add.Attributes).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return ids, storageErr("profile.add", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UpdateProfiles rewrites content (and attributes when provided) and bumps
// updated_at. Rows that no longer exist are skipped silently; the returned
// slice holds the ids that were actually applied.
func (s *ProfileService) UpdateProfiles(ctx context.Context, userID string, updates []models.UpdateProfile) ([]string, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	applied := make([]string, 0, len(updates))
	for _, upd := range updates {
		q := s.client.UserProfile.Update().
			Where(
				userprofile.IDEQ(upd.ProfileID),
				userprofile.UserIDEQ(userID),
			).
			SetContent(upd.Content).
			SetUpdatedAt(time.Now())
		if upd.Attributes != nil {
			q.SetAttributes(*upd.Attributes)
		}

		n, err := q.Save(ctx)
		if err != nil {
			return applied, storageErr("profile.update", err)
		}
		if n > 0 {
			applied = append(applied, upd.ProfileID)
		}
	}
	return applied, nil
}

// DeleteProfiles removes the given rows and returns how many existed.
func (s *ProfileService) DeleteProfiles(ctx context.Context, userID string, profileIDs []string) (int, error) {
	if userID == "" {
		return 0, NewValidationError("user_id", "required")
	}
	if len(profileIDs) == 0 {
		return 0, nil
	}

	count, err := s.client.UserProfile.Delete().
		Where(
			userprofile.UserIDEQ(userID),
			userprofile.IDIn(profileIDs...),
		).
		Exec(ctx)
	if err != nil {
		return 0, storageErr("profile.delete", err)
	}
	return count, nil
}

// ListProfiles returns the user's profile rows ordered by updated_at
// descending. limit <= 0 returns all rows.
func (s *ProfileService) ListProfiles(ctx context.Context, userID string, limit int) ([]models.ProfileEntry, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	q := s.client.UserProfile.Query().
		Where(userprofile.UserIDEQ(userID)).
		Order(ent.Desc(userprofile.FieldUpdatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, storageErr("profile.list", err)
	}

	entries := make([]models.ProfileEntry, len(rows))
	for i, row := range rows {
		entries[i] = profileEntryFromEnt(row)
	}
	return entries, nil
}

// ListProfilesByTopics returns the user's rows restricted to the given
// topics, ordered by updated_at descending. Empty topics means no filter.
func (s *ProfileService) ListProfilesByTopics(ctx context.Context, userID string, topics []string) ([]models.ProfileEntry, error) {
	entries, err := s.ListProfiles(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return entries, nil
	}

	allowed := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		allowed[t] = struct{}{}
	}
	filtered := entries[:0]
	for _, e := range entries {
		if _, ok := allowed[e.Attributes.Topic]; ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func profileEntryFromEnt(row *ent.UserProfile) models.ProfileEntry {
	return models.ProfileEntry{
		ID:         row.ID,
		UserID:     row.UserID,
		Content:    row.Content,
		Attributes: row.Attributes,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
