package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

func entry(id, topic, subTopic, content string) models.ProfileEntry {
	return models.ProfileEntry{
		ID:         id,
		Content:    content,
		Attributes: models.ProfileAttributes{Topic: topic, SubTopic: subTopic},
	}
}

func slotKeys(entries []models.ProfileEntry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Attributes.SlotKey())
	}
	return keys
}

func TestFilterTopics(t *testing.T) {
	entries := []models.ProfileEntry{
		entry("1", "career", "title", "nurse"),
		entry("2", "hobbies", "music", "plays guitar"),
		entry("3", "preferences", "food", "vegetarian"),
	}

	t.Run("empty whitelist keeps everything", func(t *testing.T) {
		assert.Len(t, filterTopics(entries, nil), 3)
	})

	t.Run("whitelist drops other topics", func(t *testing.T) {
		got := filterTopics(entries, []string{"career", "preferences"})
		assert.Equal(t, []string{"career::title", "preferences::food"}, slotKeys(got))
	})
}

func TestOrderByPreference(t *testing.T) {
	entries := []models.ProfileEntry{
		entry("1", "hobbies", "music", "plays guitar"),
		entry("2", "career", "title", "nurse"),
		entry("3", "preferences", "food", "vegetarian"),
		entry("4", "career", "employer", "city hospital"),
	}

	t.Run("preferred topics move to the front", func(t *testing.T) {
		got := orderByPreference(entries, []string{"career"})
		assert.Equal(t, []string{
			"career::title",
			"career::employer",
			"hobbies::music",
			"preferences::food",
		}, slotKeys(got))
	})

	t.Run("order within each group is stable", func(t *testing.T) {
		got := orderByPreference(entries, []string{"preferences", "career"})
		assert.Equal(t, []string{
			"preferences::food",
			"career::title",
			"career::employer",
			"hobbies::music",
		}, slotKeys(got))
	})

	t.Run("no preference leaves order untouched", func(t *testing.T) {
		got := orderByPreference(entries, nil)
		assert.Equal(t, slotKeys(entries), slotKeys(got))
	})
}

func TestCapSubtopics(t *testing.T) {
	entries := []models.ProfileEntry{
		entry("1", "career", "title", "nurse"),
		entry("2", "career", "employer", "city hospital"),
		entry("3", "career", "schedule", "night shifts"),
		entry("4", "hobbies", "music", "plays guitar"),
		entry("5", "hobbies", "sports", "runs marathons"),
	}

	t.Run("no caps keep everything", func(t *testing.T) {
		assert.Len(t, capSubtopics(entries, nil, 0), 5)
	})

	t.Run("global cap applies to every topic", func(t *testing.T) {
		got := capSubtopics(entries, nil, 1)
		assert.Equal(t, []string{"career::title", "hobbies::music"}, slotKeys(got))
	})

	t.Run("per-topic limit overrides the global cap", func(t *testing.T) {
		got := capSubtopics(entries, map[string]int{"career": 2}, 1)
		assert.Equal(t, []string{
			"career::title",
			"career::employer",
			"hobbies::music",
		}, slotKeys(got))
	})
}

func TestSelectCandidates(t *testing.T) {
	entries := []models.ProfileEntry{
		entry("1", "hobbies", "music", "plays jazz guitar on weekends"),
		entry("2", "career", "title", "works as a nurse"),
		entry("3", "career", "employer", "employed at the city hospital"),
	}

	t.Run("stages compose in order", func(t *testing.T) {
		got := selectCandidates(entries, models.ContextOptions{
			OnlyTopics:   []string{"career", "hobbies"},
			PreferTopics: []string{"career"},
			TopicLimits:  map[string]int{"career": 1},
		})
		assert.Equal(t, []string{"career::title", "hobbies::music"}, slotKeys(got))
	})

	t.Run("budget cut stops at the first overflowing row", func(t *testing.T) {
		perRow := profileTokens(entries[:1])
		require.Positive(t, perRow)

		opts := models.ContextOptions{MaxTokenSize: perRow * 2, ProfileEventRatio: 1.0}
		got := selectCandidates(entries, opts)
		assert.Less(t, len(got), len(entries))
		assert.LessOrEqual(t, profileTokens(got), perRow*2)
	})

	t.Run("zero budget disables the cut", func(t *testing.T) {
		got := selectCandidates(entries, models.ContextOptions{})
		assert.Len(t, got, 3)
	})
}
