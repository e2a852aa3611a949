package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

func TestBlobService_RoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewBlobService(client.Client)
	ctx := context.Background()

	t.Run("doc blob", func(t *testing.T) {
		b := &blob.Blob{
			UserID: "u1",
			Type:   blob.TypeDoc,
			Doc:    &blob.DocPayload{Title: "Notes", Content: "The user prefers dark roast coffee."},
		}
		id, err := svc.InsertBlob(ctx, "u1", b)
		require.NoError(t, err)

		got, err := svc.GetBlob(ctx, "u1", id)
		require.NoError(t, err)
		require.NotNil(t, got.Doc)
		assert.Equal(t, "Notes", got.Doc.Title)
		assert.Equal(t, blob.TypeDoc, got.Type)
	})

	t.Run("code blob", func(t *testing.T) {
		b := &blob.Blob{
			UserID: "u1",
			Type:   blob.TypeCode,
			Code:   &blob.CodePayload{Language: "go", Content: "func main() {}"},
		}
		id, err := svc.InsertBlob(ctx, "u1", b)
		require.NoError(t, err)

		got, err := svc.GetBlob(ctx, "u1", id)
		require.NoError(t, err)
		require.NotNil(t, got.Code)
		assert.Equal(t, "go", got.Code.Language)
	})

	t.Run("missing blob is not found", func(t *testing.T) {
		_, err := svc.GetBlob(ctx, "u1", "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, memerr.ErrNotFound)
	})

	t.Run("blobs are scoped to their user", func(t *testing.T) {
		b := blob.NewChatBlob("u1", blob.Message{Role: blob.RoleUser, Content: "hi"})
		id, err := svc.InsertBlob(ctx, "u1", b)
		require.NoError(t, err)

		_, err = svc.GetBlob(ctx, "u2", id)
		require.Error(t, err)
		assert.ErrorIs(t, err, memerr.ErrNotFound)
	})
}

func TestBlobService_GetBlobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewBlobService(client.Client)
	ctx := context.Background()

	b1 := blob.NewChatBlob("u1", blob.Message{Role: blob.RoleUser, Content: "one"})
	b2 := blob.NewChatBlob("u1", blob.Message{Role: blob.RoleUser, Content: "two"})
	_, err := svc.InsertBlob(ctx, "u1", b1)
	require.NoError(t, err)
	_, err = svc.InsertBlob(ctx, "u1", b2)
	require.NoError(t, err)

	got, err := svc.GetBlobs(ctx, "u1", []string{b1.ID, b2.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, got, 2, "missing ids are absent, not an error")
	assert.Equal(t, "one", got[b1.ID].Chat.Messages[0].Content)
	assert.Equal(t, "two", got[b2.ID].Chat.Messages[0].Content)

	empty, err := svc.GetBlobs(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
