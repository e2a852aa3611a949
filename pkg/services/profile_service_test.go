package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

func TestProfileService_AddProfiles(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProfileService(client.Client)
	ctx := context.Background()

	t.Run("assigns ids and stamps both timestamps", func(t *testing.T) {
		ids, err := svc.AddProfiles(ctx, "u1", []models.AddProfile{
			{Content: "plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "music"}},
			{Content: "works as a nurse", Attributes: models.ProfileAttributes{Topic: "work", SubTopic: "title"}},
		})
		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])

		entries, err := svc.ListProfiles(ctx, "u1", 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, "u1", e.UserID)
			assert.WithinDuration(t, e.CreatedAt, e.UpdatedAt, time.Millisecond)
		}
	})

	t.Run("requires user id", func(t *testing.T) {
		_, err := svc.AddProfiles(ctx, "", []models.AddProfile{{Content: "x"}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		ids, err := svc.AddProfiles(ctx, "u-empty", nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestProfileService_UpdateProfiles(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProfileService(client.Client)
	ctx := context.Background()

	ids, err := svc.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "music"}},
	})
	require.NoError(t, err)
	profileID := ids[0]

	t.Run("rewrites content and bumps updated_at", func(t *testing.T) {
		before, err := svc.ListProfiles(ctx, "u1", 0)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		applied, err := svc.UpdateProfiles(ctx, "u1", []models.UpdateProfile{
			{ProfileID: profileID, Content: "plays jazz guitar and violin"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{profileID}, applied)

		after, err := svc.ListProfiles(ctx, "u1", 0)
		require.NoError(t, err)
		require.Len(t, after, 1)
		assert.Equal(t, "plays jazz guitar and violin", after[0].Content)
		assert.True(t, after[0].UpdatedAt.After(before[0].UpdatedAt))
		assert.Equal(t, before[0].CreatedAt.Unix(), after[0].CreatedAt.Unix())
		// Attributes untouched when not provided.
		assert.Equal(t, "interest", after[0].Attributes.Topic)
	})

	t.Run("rewrites attributes when provided", func(t *testing.T) {
		applied, err := svc.UpdateProfiles(ctx, "u1", []models.UpdateProfile{
			{
				ProfileID:  profileID,
				Content:    "plays violin",
				Attributes: &models.ProfileAttributes{Topic: "interest", SubTopic: "instruments"},
			},
		})
		require.NoError(t, err)
		require.Len(t, applied, 1)

		entries, err := svc.ListProfiles(ctx, "u1", 0)
		require.NoError(t, err)
		assert.Equal(t, "instruments", entries[0].Attributes.SubTopic)
	})

	t.Run("missing rows are skipped silently", func(t *testing.T) {
		applied, err := svc.UpdateProfiles(ctx, "u1", []models.UpdateProfile{
			{ProfileID: "nonexistent", Content: "x"},
			{ProfileID: profileID, Content: "still plays violin"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{profileID}, applied)
	})

	t.Run("cannot update another user's row", func(t *testing.T) {
		applied, err := svc.UpdateProfiles(ctx, "u2", []models.UpdateProfile{
			{ProfileID: profileID, Content: "hijacked"},
		})
		require.NoError(t, err)
		assert.Empty(t, applied)
	})
}

func TestProfileService_DeleteProfiles(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProfileService(client.Client)
	ctx := context.Background()

	ids, err := svc.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "a", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "a"}},
		{Content: "b", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "b"}},
	})
	require.NoError(t, err)

	t.Run("returns count of existing rows", func(t *testing.T) {
		count, err := svc.DeleteProfiles(ctx, "u1", []string{ids[0], "nonexistent"})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		entries, err := svc.ListProfiles(ctx, "u1", 0)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("scoped to the user", func(t *testing.T) {
		count, err := svc.DeleteProfiles(ctx, "u2", []string{ids[1]})
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("empty id list", func(t *testing.T) {
		count, err := svc.DeleteProfiles(ctx, "u1", nil)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestProfileService_ListProfiles(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProfileService(client.Client)
	ctx := context.Background()

	_, err := svc.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "first", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "a"}},
	})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = svc.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "second", Attributes: models.ProfileAttributes{Topic: "work", SubTopic: "b"}},
	})
	require.NoError(t, err)

	t.Run("ordered by updated_at descending", func(t *testing.T) {
		entries, err := svc.ListProfiles(ctx, "u1", 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "second", entries[0].Content)
		assert.Equal(t, "first", entries[1].Content)
	})

	t.Run("respects limit", func(t *testing.T) {
		entries, err := svc.ListProfiles(ctx, "u1", 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "second", entries[0].Content)
	})

	t.Run("unknown user yields empty list", func(t *testing.T) {
		entries, err := svc.ListProfiles(ctx, "ghost", 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("topic filter", func(t *testing.T) {
		entries, err := svc.ListProfilesByTopics(ctx, "u1", []string{"work"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "second", entries[0].Content)
	})
}
