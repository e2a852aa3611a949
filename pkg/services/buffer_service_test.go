package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

// chatBlobWithTokens builds a chat blob whose rendered text counts to
// roughly the requested token size (ASCII only, 4 chars per token).
func chatBlobWithTokens(userID string, tokens int) *blob.Blob {
	content := strings.Repeat("word", tokens-2) // leave room for "user: \n"
	return blob.NewChatBlob(userID, blob.Message{Role: blob.RoleUser, Content: content})
}

// createIdleEntry inserts an idle buffer row directly with a fixed
// created_at (the field is immutable, so tests cannot backdate it after the
// fact).
func createIdleEntry(t *testing.T, client *ent.Client, userID string, createdAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := client.BufferEntry.Create().
		SetID(id).
		SetUserID(userID).
		SetBlobID(uuid.New().String()).
		SetBlobType(bufferentry.BlobTypeChat).
		SetStatus(bufferentry.StatusIdle).
		SetTokenSize(20).
		SetCreatedAt(createdAt).
		SetUpdatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func TestBufferService_Insert(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := NewBufferService(client.Client)
	blobs := NewBlobService(client.Client)
	ctx := context.Background()

	t.Run("persists body and idle entry with token size", func(t *testing.T) {
		b := blob.NewChatBlob("u1", blob.Message{Role: blob.RoleUser, Content: "I play jazz guitar"})
		bufferID, err := buffers.Insert(ctx, "u1", b)
		require.NoError(t, err)
		require.NotEmpty(t, bufferID)
		require.NotEmpty(t, b.ID, "insert should assign the blob id")

		entry, err := client.Client.BufferEntry.Get(ctx, bufferID)
		require.NoError(t, err)
		assert.Equal(t, bufferentry.StatusIdle, entry.Status)
		assert.Equal(t, b.ID, entry.BlobID)
		assert.Equal(t, blob.CountTokens(b.RenderText()), entry.TokenSize)
		assert.Positive(t, entry.TokenSize)

		stored, err := blobs.GetBlob(ctx, "u1", b.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.Chat)
		assert.Equal(t, "I play jazz guitar", stored.Chat.Messages[0].Content)
	})

	t.Run("rejects invalid blobs", func(t *testing.T) {
		_, err := buffers.Insert(ctx, "u1", &blob.Blob{Type: blob.TypeChat})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestBufferService_CapacityAndIdleOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := NewBufferService(client.Client)
	ctx := context.Background()

	var inserted []string
	for i := 0; i < 3; i++ {
		b := blob.NewChatBlob("u1", blob.Message{Role: blob.RoleUser, Content: "message"})
		id, err := buffers.Insert(ctx, "u1", b)
		require.NoError(t, err)
		inserted = append(inserted, id)
		time.Sleep(5 * time.Millisecond)
	}

	count, err := buffers.Capacity(ctx, "u1", blob.TypeChat)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ids, err := buffers.IdleIDs(ctx, "u1", blob.TypeChat)
	require.NoError(t, err)
	assert.Equal(t, inserted, ids, "idle order is insertion order")

	// Other type and other user are isolated.
	count, err = buffers.Capacity(ctx, "u1", blob.TypeDoc)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = buffers.Capacity(ctx, "u2", blob.TypeChat)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBufferService_FlushCandidates(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := NewBufferService(client.Client)
	ctx := context.Background()

	// Each blob is ~50 tokens; threshold 600 stays above 10 of them.
	var inserted []string
	for i := 0; i < 10; i++ {
		id, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 50))
		require.NoError(t, err)
		inserted = append(inserted, id)
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("below threshold returns empty", func(t *testing.T) {
		ids, err := buffers.FlushCandidates(ctx, "u1", blob.TypeChat, 600, 0)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("crossing blob selects the exact prefix", func(t *testing.T) {
		id, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 120))
		require.NoError(t, err)
		inserted = append(inserted, id)

		ids, err := buffers.FlushCandidates(ctx, "u1", blob.TypeChat, 600, 0)
		require.NoError(t, err)
		assert.Equal(t, inserted, ids, "prefix includes the entry that crosses the threshold")
	})

	t.Run("age trigger selects old entries even under the token threshold", func(t *testing.T) {
		// created_at is immutable, so backdated entries are created directly.
		old1 := createIdleEntry(t, client.Client, "u2", time.Now().Add(-2*time.Hour))
		old2 := createIdleEntry(t, client.Client, "u2", time.Now().Add(-90*time.Minute))
		createIdleEntry(t, client.Client, "u2", time.Now())

		ids, err := buffers.FlushCandidates(ctx, "u2", blob.TypeChat, 100000, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, []string{old1, old2}, ids)
	})
}

func TestBufferService_ClaimProcessing(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := NewBufferService(client.Client)
	ctx := context.Background()

	var inserted []string
	for i := 0; i < 4; i++ {
		id, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 20))
		require.NoError(t, err)
		inserted = append(inserted, id)
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("claims idle entries in order", func(t *testing.T) {
		claimed, err := buffers.ClaimProcessing(ctx, "u1", inserted[:2])
		require.NoError(t, err)
		require.Len(t, claimed, 2)
		assert.Equal(t, inserted[0], claimed[0].ID)
		assert.Equal(t, inserted[1], claimed[1].ID)

		for _, id := range inserted[:2] {
			entry, err := client.Client.BufferEntry.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, bufferentry.StatusProcessing, entry.Status)
		}
	})

	t.Run("non-idle entries are dropped silently", func(t *testing.T) {
		claimed, err := buffers.ClaimProcessing(ctx, "u1", inserted)
		require.NoError(t, err)
		require.Len(t, claimed, 2, "already-processing entries are skipped")
		assert.Equal(t, inserted[2], claimed[0].ID)
		assert.Equal(t, inserted[3], claimed[1].ID)
	})

	t.Run("empty claim", func(t *testing.T) {
		claimed, err := buffers.ClaimProcessing(ctx, "u1", nil)
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})
}

func TestBufferService_ConcurrentClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := NewBufferService(client.Client)
	ctx := context.Background()

	var inserted []string
	for i := 0; i < 8; i++ {
		id, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 20))
		require.NoError(t, err)
		inserted = append(inserted, id)
	}

	const flushers = 4
	results := make([][]string, flushers)
	var wg sync.WaitGroup
	for i := 0; i < flushers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			claimed, err := buffers.ClaimProcessing(ctx, "u1", inserted)
			assert.NoError(t, err)
			ids := make([]string, len(claimed))
			for j, e := range claimed {
				ids[j] = e.ID
			}
			results[i] = ids
		}(i)
	}
	wg.Wait()

	// Every entry is claimed exactly once across all flushers.
	seen := make(map[string]int)
	for _, ids := range results {
		for _, id := range ids {
			seen[id]++
		}
	}
	assert.Len(t, seen, len(inserted))
	for id, n := range seen {
		assert.Equal(t, 1, n, "buffer %s double-claimed", id)
	}
}

func TestBufferService_TerminalTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := NewBufferService(client.Client)
	ctx := context.Background()

	id1, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 20))
	require.NoError(t, err)
	id2, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 20))
	require.NoError(t, err)

	_, err = buffers.ClaimProcessing(ctx, "u1", []string{id1, id2})
	require.NoError(t, err)

	require.NoError(t, buffers.MarkDone(ctx, []string{id1}))
	require.NoError(t, buffers.MarkFailed(ctx, []string{id2}))

	e1, err := client.Client.BufferEntry.Get(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, bufferentry.StatusDone, e1.Status)
	e2, err := client.Client.BufferEntry.Get(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, bufferentry.StatusFailed, e2.Status)

	t.Run("terminal entries never return to idle", func(t *testing.T) {
		claimed, err := buffers.ClaimProcessing(ctx, "u1", []string{id1, id2})
		require.NoError(t, err)
		assert.Empty(t, claimed)

		// MarkDone on a done entry is a no-op, not a flip-flop.
		require.NoError(t, buffers.MarkFailed(ctx, []string{id1}))
		e1, err := client.Client.BufferEntry.Get(ctx, id1)
		require.NoError(t, err)
		assert.Equal(t, bufferentry.StatusDone, e1.Status)
	})

	t.Run("idle entries are not marked directly", func(t *testing.T) {
		id3, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 20))
		require.NoError(t, err)
		require.NoError(t, buffers.MarkDone(ctx, []string{id3}))

		e3, err := client.Client.BufferEntry.Get(ctx, id3)
		require.NoError(t, err)
		assert.Equal(t, bufferentry.StatusIdle, e3.Status)
	})
}

func TestBufferService_FailStuckProcessing(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := NewBufferService(client.Client)
	ctx := context.Background()

	id1, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 20))
	require.NoError(t, err)
	id2, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 20))
	require.NoError(t, err)

	_, err = buffers.ClaimProcessing(ctx, "u1", []string{id1, id2})
	require.NoError(t, err)

	// Backdate one claim so it looks abandoned.
	_, err = client.Client.BufferEntry.UpdateOneID(id1).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	reaped, err := buffers.FailStuckProcessing(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	e1, err := client.Client.BufferEntry.Get(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, bufferentry.StatusFailed, e1.Status)
	e2, err := client.Client.BufferEntry.Get(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, bufferentry.StatusProcessing, e2.Status, "recent claims are left alone")
}

func TestBufferService_PruneTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := NewBufferService(client.Client)
	blobs := NewBlobService(client.Client)
	ctx := context.Background()

	b := chatBlobWithTokens("u1", 20)
	id1, err := buffers.Insert(ctx, "u1", b)
	require.NoError(t, err)
	id2, err := buffers.Insert(ctx, "u1", chatBlobWithTokens("u1", 20))
	require.NoError(t, err)

	_, err = buffers.ClaimProcessing(ctx, "u1", []string{id1})
	require.NoError(t, err)
	require.NoError(t, buffers.MarkDone(ctx, []string{id1}))

	// Backdate the done entry past the retention cutoff.
	_, err = client.Client.BufferEntry.UpdateOneID(id1).
		SetUpdatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	blobIDs, err := buffers.PruneTerminal(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, blobIDs)

	// The idle entry survives.
	ids, err := buffers.IdleIDs(ctx, "u1", blob.TypeChat)
	require.NoError(t, err)
	assert.Equal(t, []string{id2}, ids)

	t.Run("orphan detection and blob cleanup", func(t *testing.T) {
		orphans, err := buffers.OrphanBlobIDs(ctx, blobIDs)
		require.NoError(t, err)
		assert.Equal(t, blobIDs, orphans)

		deleted, err := blobs.DeleteBlobs(ctx, orphans)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)
	})
}
