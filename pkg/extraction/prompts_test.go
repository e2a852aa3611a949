package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

func TestFormatTaxonomy(t *testing.T) {
	rendered := FormatTaxonomy([]models.UserProfileTopic{
		{
			Topic:       "interest",
			Description: "Hobbies the user volunteers",
			SubTopics: []models.SubTopic{
				{Name: "music", Description: "Genres or instruments"},
				{Name: "sports"},
			},
		},
	})

	assert.Contains(t, rendered, "- interest: Hobbies the user volunteers")
	assert.Contains(t, rendered, "  - music: Genres or instruments")
	assert.Contains(t, rendered, "  - sports")
	assert.NotContains(t, rendered, "sports:", "sub-topics without descriptions get no colon")
}

func TestFormatProfileDelta(t *testing.T) {
	rendered := FormatProfileDelta([]models.AddProfile{
		{Content: "plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "music"}},
		{Content: "works as a nurse", Attributes: models.ProfileAttributes{Topic: "work", SubTopic: "title"}},
	})

	assert.Equal(t, "- interest::music: plays jazz guitar\n- work::title: works as a nurse", rendered)
}

func TestPromptsFor(t *testing.T) {
	assert.Equal(t, promptsEN, promptsFor("en"))
	assert.Equal(t, promptsZH, promptsFor("zh"))
	assert.Equal(t, promptsEN, promptsFor(""), "unknown languages default to English")
	assert.Equal(t, promptsEN, promptsFor("fr"))
}

func TestOptionalPromptBlocks(t *testing.T) {
	assert.Empty(t, formatSlotInstruction(promptsEN, ""))
	assert.Contains(t, formatSlotInstruction(promptsEN, "merge skills"), "## Slot Instruction\nmerge skills")
	assert.Contains(t, formatSlotInstruction(promptsZH, "合并技能"), "## 槽位说明\n合并技能")

	assert.Empty(t, formatThemeRequirement(promptsEN, ""))
	assert.Contains(t, formatThemeRequirement(promptsEN, "focus on travel"), "Theme requirement: focus on travel")
}
