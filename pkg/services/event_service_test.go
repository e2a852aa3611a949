package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/search"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

func TestEventService_PutEventAndGists(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client, search.NewPostgresIndex(client.Client))
	ctx := context.Background()

	eventID, err := svc.PutEvent(ctx, "u1", models.EventData{
		EventTip: "user plays jazz guitar",
		ProfileDelta: []models.AddProfile{
			{Content: "plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "music"}},
		},
	}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, eventID)

	gistID, err := svc.PutGist(ctx, "u1", eventID, "plays jazz guitar", []float32{1, 0, 0})
	require.NoError(t, err)
	require.NotEmpty(t, gistID)

	t.Run("events are listed newest first with audit payload", func(t *testing.T) {
		events, err := svc.GetEvents(ctx, "u1", 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, eventID, events[0].ID)
		assert.Equal(t, "user plays jazz guitar", events[0].Data.EventTip)
		require.Len(t, events[0].Data.ProfileDelta, 1)
	})

	t.Run("gist requires an existing event", func(t *testing.T) {
		_, err := svc.PutGist(ctx, "u1", "missing-event", "orphan", []float32{1, 0, 0})
		require.Error(t, err)
		assert.ErrorIs(t, err, memerr.ErrInternal)
	})
}

func TestEventService_RecentGists(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client, search.NewPostgresIndex(client.Client))
	ctx := context.Background()

	eventID, err := svc.PutEvent(ctx, "u1", models.EventData{EventTip: "batch"}, nil)
	require.NoError(t, err)

	var gistIDs []string
	for _, content := range []string{"first", "second", "third"} {
		id, err := svc.PutGist(ctx, "u1", eventID, content, nil)
		require.NoError(t, err)
		gistIDs = append(gistIDs, id)
		time.Sleep(5 * time.Millisecond)
	}

	t.Run("newest first", func(t *testing.T) {
		gists, err := svc.RecentGists(ctx, "u1", 10, 0)
		require.NoError(t, err)
		require.Len(t, gists, 3)
		assert.Equal(t, "third", gists[0].Content)
		assert.Equal(t, "first", gists[2].Content)
	})

	t.Run("respects topk", func(t *testing.T) {
		gists, err := svc.RecentGists(ctx, "u1", 2, 0)
		require.NoError(t, err)
		assert.Len(t, gists, 2)
	})

	t.Run("topk zero yields empty", func(t *testing.T) {
		gists, err := svc.RecentGists(ctx, "u1", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, gists)
	})

	t.Run("unknown user yields empty list, not an error", func(t *testing.T) {
		gists, err := svc.RecentGists(ctx, "ghost", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, gists)
	})
}

func TestEventService_SearchGists(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("disabled embeddings refuse with not-implemented", func(t *testing.T) {
		svc := NewEventService(client.Client, nil)
		_, err := svc.SearchGists(ctx, "u1", []float32{1, 0}, 10, 0.5, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, memerr.ErrNotImplemented)
	})

	t.Run("vector search through the index", func(t *testing.T) {
		svc := NewEventService(client.Client, search.NewPostgresIndex(client.Client))

		eventID, err := svc.PutEvent(ctx, "u1", models.EventData{EventTip: "batch"}, nil)
		require.NoError(t, err)
		matchID, err := svc.PutGist(ctx, "u1", eventID, "plays guitar", []float32{1, 0, 0})
		require.NoError(t, err)
		_, err = svc.PutGist(ctx, "u1", eventID, "lives in Berlin", []float32{0, 1, 0})
		require.NoError(t, err)

		hits, err := svc.SearchGists(ctx, "u1", []float32{1, 0, 0}, 10, 0.5, 30)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, matchID, hits[0].ID)
		assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)
	})

	t.Run("recent gists superset of zero-threshold search", func(t *testing.T) {
		svc := NewEventService(client.Client, search.NewPostgresIndex(client.Client))

		hits, err := svc.SearchGists(ctx, "u1", []float32{1, 0, 0}, 100, 0, 0)
		require.NoError(t, err)
		gists, err := svc.RecentGists(ctx, "u1", 100, 0)
		require.NoError(t, err)

		recent := make(map[string]struct{}, len(gists))
		for _, g := range gists {
			recent[g.ID] = struct{}{}
		}
		for _, h := range hits {
			assert.Contains(t, recent, h.ID)
		}
	})
}

func TestEventService_PruneEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client, search.NewPostgresIndex(client.Client))
	ctx := context.Background()

	eventID, err := svc.PutEvent(ctx, "u1", models.EventData{EventTip: "old batch"}, nil)
	require.NoError(t, err)
	_, err = svc.PutGist(ctx, "u1", eventID, "old gist", nil)
	require.NoError(t, err)

	// Nothing is old enough yet.
	count, err := svc.PruneEvents(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.PruneEvents(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The cascade removed the gist with its parent.
	gists, err := svc.RecentGists(ctx, "u1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, gists)
}
