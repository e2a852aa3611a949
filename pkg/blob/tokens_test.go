package blob

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t", 0},
		{"short word", "hi", 1},
		{"exact group", "abcd", 1},
		{"partial group rounds up", "abcde", 2},
		{"cjk counts per rune", "你好", 2},
		// 7 non-CJK runes ("I like ") → 2 tokens, 2 CJK runes → 2 tokens.
		{"mixed", "I like 面条", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountTokens(tt.in))
		})
	}
}

func TestCountTokensDeterministic(t *testing.T) {
	s := "The quick brown fox jumps over the lazy dog. 我喜欢打网球。"
	first := CountTokens(s)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CountTokens(s))
	}
}

func TestCountBlobTokensUsesRoleRendering(t *testing.T) {
	b := NewChatBlob("u1",
		Message{Role: RoleUser, Content: "I play jazz guitar"},
		Message{Role: RoleAssistant, Content: "cool"},
	)

	rendered := b.RenderText()
	assert.Equal(t, "user: I play jazz guitar\nassistant: cool\n", rendered)
	assert.Equal(t, CountTokens(rendered), CountBlobTokens(b))
	assert.Positive(t, CountBlobTokens(b))
}

func TestCountBatchTokensIsSumOfParts(t *testing.T) {
	blobs := []*Blob{
		NewChatBlob("u1", Message{Role: RoleUser, Content: "first message"}),
		NewChatBlob("u1", Message{Role: RoleUser, Content: "second, longer message here"}),
	}
	assert.Equal(t, CountBlobTokens(blobs[0])+CountBlobTokens(blobs[1]), CountBatchTokens(blobs))
}

func TestTruncateTokens(t *testing.T) {
	t.Run("zero budget yields empty", func(t *testing.T) {
		assert.Equal(t, "", TruncateTokens("anything at all", 0))
		assert.Equal(t, "", TruncateTokens("anything at all", -1))
	})

	t.Run("fits untouched", func(t *testing.T) {
		s := "short"
		assert.Equal(t, s, TruncateTokens(s, 100))
	})

	t.Run("result respects the budget", func(t *testing.T) {
		s := strings.Repeat("word and more text ", 50)
		for _, budget := range []int{1, 3, 10, 40} {
			got := TruncateTokens(s, budget)
			assert.LessOrEqual(t, CountTokens(got), budget, "budget %d", budget)
			assert.NotEmpty(t, got)
		}
	})

	t.Run("cjk boundaries never overshoot", func(t *testing.T) {
		s := "abcde中文内容继续很长的句子"
		for budget := 1; budget < 10; budget++ {
			got := TruncateTokens(s, budget)
			assert.LessOrEqual(t, CountTokens(got), budget, "budget %d got %q", budget, got)
		}
	})
}

func TestBlobValidate(t *testing.T) {
	tests := []struct {
		name    string
		blob    *Blob
		wantErr bool
	}{
		{"valid chat", NewChatBlob("u1", Message{Role: RoleUser, Content: "hi"}), false},
		{"empty chat", &Blob{Type: TypeChat, Chat: &ChatPayload{}}, true},
		{"bad role", &Blob{Type: TypeChat, Chat: &ChatPayload{Messages: []Message{{Role: "bot", Content: "x"}}}}, true},
		{"valid doc", &Blob{Type: TypeDoc, Doc: &DocPayload{Content: "text"}}, false},
		{"doc without content", &Blob{Type: TypeDoc, Doc: &DocPayload{}}, true},
		{"valid code", &Blob{Type: TypeCode, Code: &CodePayload{Language: "go", Content: "package main"}}, false},
		{"unknown type", &Blob{Type: "image"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.blob.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	orig := NewChatBlob("u1",
		Message{Role: RoleUser, Content: "I moved to Berlin"},
		Message{Role: RoleAssistant, Content: "nice city"},
	)
	orig.ID = "blob-1"

	raw, err := orig.PayloadJSON()
	assert.NoError(t, err)

	got, err := FromPayloadJSON(orig.ID, orig.UserID, orig.Type, orig.CreatedAt, raw)
	assert.NoError(t, err)
	assert.Equal(t, orig.Chat.Messages, got.Chat.Messages)
	assert.Equal(t, orig.RenderText(), got.RenderText())
}
