package search

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

// createGistRow persists an event and one gist row the way the event store
// does, returning the gist id.
func createGistRow(t *testing.T, client *ent.Client, userID string, age time.Duration, embedding []float32) string {
	t.Helper()
	ctx := context.Background()

	eventID := uuid.New().String()
	_, err := client.MemoryEvent.Create().
		SetID(eventID).
		SetUserID(userID).
		SetEventData(models.EventData{EventTip: "test batch"}).
		SetCreatedAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)

	gistID := uuid.New().String()
	create := client.EventGist.Create().
		SetID(gistID).
		SetUserID(userID).
		SetEventID(eventID).
		SetContent("gist " + gistID[:8]).
		SetCreatedAt(time.Now().Add(-age))
	if embedding != nil {
		create = create.SetEmbedding(embedding)
	}
	_, err = create.Save(ctx)
	require.NoError(t, err)

	return gistID
}

func TestPostgresIndex_SearchGists(t *testing.T) {
	client := testdb.NewTestClient(t)
	idx := NewPostgresIndex(client.Client)
	ctx := context.Background()

	exact := createGistRow(t, client.Client, "u1", time.Hour, []float32{1, 0, 0})
	near := createGistRow(t, client.Client, "u1", time.Hour, []float32{0.9, 0.1, 0})
	createGistRow(t, client.Client, "u1", time.Hour, []float32{0, 1, 0})       // below threshold
	createGistRow(t, client.Client, "u1", time.Hour, nil)                      // no embedding
	createGistRow(t, client.Client, "u2", time.Hour, []float32{1, 0, 0})       // other user
	createGistRow(t, client.Client, "u1", 40*24*time.Hour, []float32{1, 0, 0}) // outside window

	hits, err := idx.SearchGists(ctx, "u1", []float32{1, 0, 0}, 10, 0.5, 30)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, exact, hits[0].ID)
	assert.Equal(t, near, hits[1].ID)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)

	for _, h := range hits {
		assert.Equal(t, "u1", h.UserID)
		assert.GreaterOrEqual(t, h.Similarity, 0.5)
		assert.NotEmpty(t, h.Content)
		assert.NotEmpty(t, h.EventID)
	}
}

func TestPostgresIndex_TopKAndDisabledWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	idx := NewPostgresIndex(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createGistRow(t, client.Client, "u1", time.Duration(i+1)*time.Hour, []float32{1, 0, 0})
	}
	old := createGistRow(t, client.Client, "u1", 400*24*time.Hour, []float32{1, 0, 0})

	hits, err := idx.SearchGists(ctx, "u1", []float32{1, 0, 0}, 3, 0, 0)
	require.NoError(t, err)
	assert.Len(t, hits, 3)

	// Window disabled includes the very old gist in the candidate set.
	hits, err = idx.SearchGists(ctx, "u1", []float32{1, 0, 0}, 10, 0, 0)
	require.NoError(t, err)
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}
	assert.Contains(t, ids, old)

	hits, err = idx.SearchGists(ctx, "u1", []float32{1, 0, 0}, 0, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestPostgresIndex_IndexGistIsNoOp(t *testing.T) {
	client := testdb.NewTestClient(t)
	idx := NewPostgresIndex(client.Client)

	err := idx.IndexGist(context.Background(), models.Gist{ID: "g1", UserID: "u1"}, []float32{1})
	require.NoError(t, err)
}
