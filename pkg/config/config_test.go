package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

func TestProfileTopics_Resolution(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("nil per-call config returns builtin taxonomy", func(t *testing.T) {
		topics := cfg.ProfileTopics(nil)
		require.NotEmpty(t, topics)
		assert.Equal(t, "basic_info", topics[0].Topic)
	})

	t.Run("global additional topics append", func(t *testing.T) {
		withAdditional := DefaultConfig()
		withAdditional.AdditionalUserProfiles = []models.UserProfileTopic{
			{Topic: "gaming", SubTopics: []models.SubTopic{{Name: "rank"}}},
		}

		topics := withAdditional.ProfileTopics(nil)
		builtin := BuiltinProfileTopics("en")
		require.Len(t, topics, len(builtin)+1)
		assert.Equal(t, "gaming", topics[len(topics)-1].Topic)
	})

	t.Run("global overwrite replaces builtin taxonomy", func(t *testing.T) {
		withOverwrite := DefaultConfig()
		withOverwrite.OverwriteUserProfiles = []models.UserProfileTopic{
			{Topic: "only_topic", SubTopics: []models.SubTopic{{Name: "only_slot"}}},
		}

		topics := withOverwrite.ProfileTopics(nil)
		require.Len(t, topics, 1)
		assert.Equal(t, "only_topic", topics[0].Topic)
	})

	t.Run("per-call overwrite wins over everything", func(t *testing.T) {
		pc := &models.ProfileConfig{
			OverwriteUserProfiles: []models.UserProfileTopic{
				{Topic: "call_topic", SubTopics: []models.SubTopic{{Name: "slot"}}},
			},
		}

		topics := cfg.ProfileTopics(pc)
		require.Len(t, topics, 1)
		assert.Equal(t, "call_topic", topics[0].Topic)
	})

	t.Run("per-call additional appends to resolved taxonomy", func(t *testing.T) {
		pc := &models.ProfileConfig{
			AdditionalUserProfiles: []models.UserProfileTopic{
				{Topic: "call_extra", SubTopics: []models.SubTopic{{Name: "slot"}}},
			},
		}

		topics := cfg.ProfileTopics(pc)
		builtin := BuiltinProfileTopics("en")
		require.Len(t, topics, len(builtin)+1)
		assert.Equal(t, "call_extra", topics[len(topics)-1].Topic)
	})

	t.Run("per-call language switches builtin localization", func(t *testing.T) {
		pc := &models.ProfileConfig{Language: "zh"}
		topics := cfg.ProfileTopics(pc)
		require.NotEmpty(t, topics)
		// Same identifiers, localized descriptions
		assert.Equal(t, "basic_info", topics[0].Topic)
		assert.Equal(t, BuiltinProfileTopics("zh")[0].Description, topics[0].Description)
	})
}

func TestEffectiveOverrides(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "en", cfg.EffectiveLanguage(nil))
	assert.Equal(t, "zh", cfg.EffectiveLanguage(&models.ProfileConfig{Language: "zh"}))

	assert.False(t, cfg.StrictMode(nil))
	assert.True(t, cfg.StrictMode(&models.ProfileConfig{ProfileStrictMode: boolPtr(true)}))

	assert.True(t, cfg.ValidateMode(nil))
	assert.False(t, cfg.ValidateMode(&models.ProfileConfig{ProfileValidateMode: boolPtr(false)}))
}

func TestBuiltinProfileTopics_Localization(t *testing.T) {
	en := BuiltinProfileTopics("en")
	zh := BuiltinProfileTopics("zh")

	require.Equal(t, len(en), len(zh))
	for i := range en {
		// Slot identifiers must be stable across languages
		assert.Equal(t, en[i].Topic, zh[i].Topic)
		require.Equal(t, len(en[i].SubTopics), len(zh[i].SubTopics))
		for j := range en[i].SubTopics {
			assert.Equal(t, en[i].SubTopics[j].Name, zh[i].SubTopics[j].Name)
		}
	}

	// Unknown language falls back to English
	fallback := BuiltinProfileTopics("fr")
	assert.Equal(t, en[0].Description, fallback[0].Description)
}
