package smartcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "actions and longer words",
			text: "The user is playing guitar",
			want: []string{"playing", "user", "guitar"},
		},
		{
			name: "stop words dropped",
			text: "the and with for",
			want: nil,
		},
		{
			name: "proper nouns kept",
			text: "moved to Berlin last May",
			want: []string{"moved", "berlin", "last", "may"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractKeywords(tt.text, 10)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima"
	got := extractKeywords(text, 10)
	assert.Len(t, got, 10)
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, []string{"guitar", "music", "jazz"},
		dedupe([]string{"guitar", "music", "guitar", "jazz", "music"}))
}

func TestKeywordRelevance(t *testing.T) {
	profile := &cachedProfile{
		topic:    "interest",
		subTopic: "music",
		keywords: []string{"plays", "jazz", "guitar", "interest", "music"},
	}

	t.Run("no keywords scores zero", func(t *testing.T) {
		assert.Zero(t, keywordRelevance(nil, profile))
		assert.Zero(t, keywordRelevance([]string{"guitar"}, &cachedProfile{}))
	})

	t.Run("disjoint sets score zero", func(t *testing.T) {
		assert.Zero(t, keywordRelevance([]string{"banking", "finance"}, profile))
	})

	t.Run("identical sets cap at one", func(t *testing.T) {
		// Jaccard is 1.0 and both boosts fire; the cap holds the score at 1.
		score := keywordRelevance([]string{"plays", "jazz", "guitar", "interest", "music"}, profile)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("sub-topic mention boosts", func(t *testing.T) {
		// One overlap out of six united keywords plus the 0.2 sub-topic boost.
		score := keywordRelevance([]string{"music", "tonight"}, profile)
		assert.InDelta(t, 1.0/6.0+0.2, score, 1e-9)
	})

	t.Run("topic mention boosts", func(t *testing.T) {
		score := keywordRelevance([]string{"interest"}, profile)
		assert.InDelta(t, 1.0/5.0+0.3, score, 1e-9)
	})
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "exact", truncateRunes("exact", 5))
	assert.Equal(t, "lon...", truncateRunes("longer", 3))
	// Multi-byte runes never split.
	assert.Equal(t, "héll...", truncateRunes("héllo wörld", 4))
}
