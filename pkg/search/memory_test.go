package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

func indexTestGist(t *testing.T, idx GistIndex, userID, id string, age time.Duration, vec []float32) {
	t.Helper()
	err := idx.IndexGist(context.Background(), models.Gist{
		ID:        id,
		UserID:    userID,
		EventID:   "evt-" + id,
		Content:   "gist " + id,
		CreatedAt: time.Now().Add(-age),
	}, vec)
	require.NoError(t, err)
}

func TestMemoryIndex_ThresholdAndOrder(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()

	indexTestGist(t, idx, "u1", "exact", time.Hour, []float32{1, 0, 0})
	indexTestGist(t, idx, "u1", "close", time.Hour, []float32{0.9, 0.1, 0})
	indexTestGist(t, idx, "u1", "far", time.Hour, []float32{0, 1, 0})

	hits, err := idx.SearchGists(ctx, "u1", []float32{1, 0, 0}, 10, 0.5, 0)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "exact", hits[0].ID)
	assert.Equal(t, "close", hits[1].ID)
	assert.GreaterOrEqual(t, hits[0].Similarity, hits[1].Similarity)
	for _, h := range hits {
		assert.GreaterOrEqual(t, h.Similarity, 0.5)
	}
}

func TestMemoryIndex_WindowFilter(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()

	indexTestGist(t, idx, "u1", "recent", 24*time.Hour, []float32{1, 0})
	indexTestGist(t, idx, "u1", "ancient", 40*24*time.Hour, []float32{1, 0})

	hits, err := idx.SearchGists(ctx, "u1", []float32{1, 0}, 10, 0, 30)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "recent", hits[0].ID)

	// Window disabled returns both.
	hits, err = idx.SearchGists(ctx, "u1", []float32{1, 0}, 10, 0, 0)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestMemoryIndex_TopKTruncation(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		indexTestGist(t, idx, "u1", string(rune('a'+i)), time.Duration(i)*time.Minute, []float32{1, 0})
	}

	hits, err := idx.SearchGists(ctx, "u1", []float32{1, 0}, 3, 0, 0)
	require.NoError(t, err)
	assert.Len(t, hits, 3)

	hits, err = idx.SearchGists(ctx, "u1", []float32{1, 0}, 0, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestMemoryIndex_UserIsolation(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()

	indexTestGist(t, idx, "u1", "mine", time.Hour, []float32{1, 0})
	indexTestGist(t, idx, "u2", "theirs", time.Hour, []float32{1, 0})

	hits, err := idx.SearchGists(ctx, "u1", []float32{1, 0}, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "mine", hits[0].ID)
}

func TestMemoryIndex_SkipsEmptyEmbeddings(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()

	indexTestGist(t, idx, "u1", "embedded", time.Hour, []float32{1, 0})
	indexTestGist(t, idx, "u1", "bare", time.Hour, nil)

	hits, err := idx.SearchGists(ctx, "u1", []float32{1, 0}, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "embedded", hits[0].ID)
}
