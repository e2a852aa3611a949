package extraction

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
)

// chatBlobOfTokens builds a chat blob whose rendered size is close to the
// requested token count.
func chatBlobOfTokens(t *testing.T, tokens int) *blob.Blob {
	t.Helper()
	b := blob.NewChatBlob("u1", blob.Message{
		Role:    blob.RoleUser,
		Content: strings.Repeat("word", tokens-2),
	})
	got := blob.CountBlobTokens(b)
	require.InDelta(t, tokens, got, 3, "helper should produce roughly the requested size")
	return b
}

func TestSplitBatches(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, splitBatches(nil, 100))
	})

	t.Run("zero ceiling keeps one batch", func(t *testing.T) {
		blobs := []*blob.Blob{chatBlobOfTokens(t, 50), chatBlobOfTokens(t, 50)}
		batches := splitBatches(blobs, 0)
		require.Len(t, batches, 1)
		assert.Len(t, batches[0], 2)
	})

	t.Run("fits in one batch", func(t *testing.T) {
		blobs := []*blob.Blob{chatBlobOfTokens(t, 40), chatBlobOfTokens(t, 40)}
		batches := splitBatches(blobs, 100)
		require.Len(t, batches, 1)
	})

	t.Run("splits on blob boundaries", func(t *testing.T) {
		blobs := []*blob.Blob{
			chatBlobOfTokens(t, 60),
			chatBlobOfTokens(t, 60),
			chatBlobOfTokens(t, 60),
		}
		batches := splitBatches(blobs, 100)
		require.Len(t, batches, 3)
		for _, batch := range batches {
			assert.Len(t, batch, 1)
		}
	})

	t.Run("oversized blob forms its own group", func(t *testing.T) {
		big := chatBlobOfTokens(t, 300)
		small := chatBlobOfTokens(t, 20)
		batches := splitBatches([]*blob.Blob{small, big, small}, 100)
		require.Len(t, batches, 3)
		assert.Same(t, big, batches[1][0])
	})

	t.Run("order is preserved", func(t *testing.T) {
		blobs := []*blob.Blob{
			chatBlobOfTokens(t, 30),
			chatBlobOfTokens(t, 30),
			chatBlobOfTokens(t, 30),
			chatBlobOfTokens(t, 30),
		}
		batches := splitBatches(blobs, 70)
		var flat []*blob.Blob
		for _, batch := range batches {
			flat = append(flat, batch...)
		}
		require.Len(t, flat, len(blobs))
		for i := range blobs {
			assert.Same(t, blobs[i], flat[i])
		}
	})
}

func TestRenderConversation(t *testing.T) {
	t.Run("chat turns with timestamp and alias", func(t *testing.T) {
		ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
		b := blob.NewChatBlob("u1",
			blob.Message{Role: blob.RoleUser, Content: "I play jazz guitar", Alias: "Tom", CreatedAt: &ts},
			blob.Message{Role: blob.RoleAssistant, Content: "cool"},
		)

		cst := time.FixedZone("CST", 8*3600)
		rendered := renderConversation([]*blob.Blob{b}, cst)

		assert.Equal(t, "[2026-01-15 20:00] user (Tom): I play jazz guitar\nassistant: cool", rendered)
	})

	t.Run("doc and code blocks are fenced", func(t *testing.T) {
		doc := &blob.Blob{
			Type: blob.TypeDoc,
			Doc:  &blob.DocPayload{Title: "Notes", Content: "lives in Berlin"},
		}
		code := &blob.Blob{
			Type: blob.TypeCode,
			Code: &blob.CodePayload{Language: "go", Content: "package main"},
		}

		rendered := renderConversation([]*blob.Blob{doc, code}, time.UTC)

		assert.Contains(t, rendered, "```document Notes\nlives in Berlin\n```")
		assert.Contains(t, rendered, "```go\npackage main\n```")
	})

	t.Run("payload-less blobs are skipped", func(t *testing.T) {
		rendered := renderConversation([]*blob.Blob{{Type: blob.TypeChat}}, time.UTC)
		assert.Empty(t, rendered)
	})
}
