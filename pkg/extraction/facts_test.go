package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

func taxonomyForTest() []models.UserProfileTopic {
	return []models.UserProfileTopic{
		{Topic: "interest", SubTopics: []models.SubTopic{{Name: "music"}, {Name: "sports"}}},
		{Topic: "work", SubTopics: []models.SubTopic{{Name: "title"}}},
	}
}

func TestValidateFacts(t *testing.T) {
	topics := taxonomyForTest()

	t.Run("drops empty memos and blank slots", func(t *testing.T) {
		facts := validateFacts([]models.FactCandidate{
			{Topic: "interest", SubTopic: "music", Memo: "  "},
			{Topic: "", SubTopic: "music", Memo: "plays guitar"},
			{Topic: "interest", SubTopic: "", Memo: "plays guitar"},
			{Topic: "interest", SubTopic: "music", Memo: "plays guitar"},
		}, topics, false, 10)

		require.Len(t, facts, 1)
		assert.Equal(t, "plays guitar", facts[0].Memo)
	})

	t.Run("strict mode drops unknown topics", func(t *testing.T) {
		facts := validateFacts([]models.FactCandidate{
			{Topic: "astrology", SubTopic: "sign", Memo: "is a libra"},
			{Topic: "work", SubTopic: "title", Memo: "works as a nurse"},
		}, topics, true, 10)

		require.Len(t, facts, 1)
		assert.Equal(t, "work", facts[0].Topic)
	})

	t.Run("unknown topics re-home under the fallback topic", func(t *testing.T) {
		facts := validateFacts([]models.FactCandidate{
			{Topic: "astrology", SubTopic: "sign", Memo: "is a libra"},
		}, topics, false, 10)

		require.Len(t, facts, 1)
		assert.Equal(t, fallbackTopic, facts[0].Topic)
		assert.Equal(t, "sign", facts[0].SubTopic)
	})

	t.Run("caps distinct sub-topics per topic", func(t *testing.T) {
		facts := validateFacts([]models.FactCandidate{
			{Topic: "interest", SubTopic: "music", Memo: "plays guitar"},
			{Topic: "interest", SubTopic: "sports", Memo: "runs marathons"},
			{Topic: "interest", SubTopic: "games", Memo: "plays chess"},
			{Topic: "interest", SubTopic: "music", Memo: "also plays violin"},
			{Topic: "work", SubTopic: "title", Memo: "works as a nurse"},
		}, topics, false, 2)

		require.Len(t, facts, 4)
		var subTopics []string
		for _, f := range facts {
			subTopics = append(subTopics, f.SubTopic)
		}
		// The third distinct sub-topic is dropped; repeats of kept ones pass.
		assert.Equal(t, []string{"music", "sports", "music", "title"}, subTopics)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		facts := validateFacts([]models.FactCandidate{
			{Topic: " interest ", SubTopic: " music ", Memo: " plays guitar "},
		}, topics, true, 10)

		require.Len(t, facts, 1)
		assert.Equal(t, "interest", facts[0].Topic)
		assert.Equal(t, "music", facts[0].SubTopic)
		assert.Equal(t, "plays guitar", facts[0].Memo)
	})
}

func TestSubTopicIndex(t *testing.T) {
	index := subTopicIndex([]models.UserProfileTopic{
		{Topic: "work", SubTopics: []models.SubTopic{
			{Name: "work_skills", UpdateDescription: "Merge new skills into the existing list"},
		}},
	})

	sub, ok := index["work::work_skills"]
	require.True(t, ok)
	assert.Equal(t, "Merge new skills into the existing list", sub.UpdateDescription)

	_, ok = index["work::unknown"]
	assert.False(t, ok)
}
