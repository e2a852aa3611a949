package retrieval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

func TestRenderContextLayout(t *testing.T) {
	profiles := []models.ProfileEntry{entry("1", "interest", "music", "plays guitar")}
	gists := []models.Gist{{ID: "g1", Content: "The user plays guitar."}}
	tail := []blob.Message{{Role: blob.RoleUser, Content: "hello"}}

	got := renderContext("", profiles, gists, tail, 1000)

	want := strings.Join([]string{
		"---",
		"# Memory",
		defaultAdvisory,
		"## User Current Profile:",
		"- interest::music: plays guitar",
		"## Past Events:",
		"The user plays guitar.",
		"## Current Session Context:",
		"user: hello",
		"---",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderContextOmitsEmptySections(t *testing.T) {
	got := renderContext("", nil, nil, nil, 1000)

	assert.NotContains(t, got, "## User Current Profile:")
	assert.NotContains(t, got, "## Past Events:")
	assert.NotContains(t, got, "## Current Session Context:")
	assert.True(t, strings.HasPrefix(got, "---\n# Memory\n"))
	assert.True(t, strings.HasSuffix(got, "---"))
}

func TestRenderContextProfilesOnly(t *testing.T) {
	profiles := []models.ProfileEntry{entry("1", "interest", "music", "plays guitar")}

	got := renderContext("", profiles, nil, nil, 1000)

	assert.Contains(t, got, "## User Current Profile:\n- interest::music: plays guitar\n")
	assert.NotContains(t, got, "## Past Events:")
	assert.NotContains(t, got, "## Current Session Context:")
}

func TestRenderContextCustomAdvisory(t *testing.T) {
	got := renderContext("Answer in French.", nil, nil, nil, 1000)
	assert.Contains(t, got, "# Memory\nAnswer in French.\n")
	assert.NotContains(t, got, defaultAdvisory)
}

func TestRenderContextHonorsTokenCap(t *testing.T) {
	profiles := []models.ProfileEntry{
		entry("1", "interest", "music", strings.Repeat("guitar ", 30)),
		entry("2", "work", "title", strings.Repeat("nurse ", 30)),
	}
	gists := []models.Gist{
		{ID: "g1", Content: strings.Repeat("event one ", 30)},
		{ID: "g2", Content: strings.Repeat("event two ", 30)},
	}
	tail := []blob.Message{
		{Role: blob.RoleUser, Content: strings.Repeat("old ", 30)},
		{Role: blob.RoleUser, Content: "latest"},
	}

	full := renderContext("", profiles, gists, tail, 100000)
	fullTokens := blob.CountTokens(full)
	require.Greater(t, fullTokens, 200)

	capped := renderContext("", profiles, gists, tail, fullTokens-1)
	assert.LessOrEqual(t, blob.CountTokens(capped), fullTokens-1)

	// Gists shed before profile rows, profile rows before the tail.
	assert.NotContains(t, capped, "event two")
	assert.Contains(t, capped, "guitar")
	assert.Contains(t, capped, "latest")

	tight := renderContext("", profiles, gists, tail, 60)
	assert.LessOrEqual(t, blob.CountTokens(tight), 60)
	assert.NotContains(t, tight, "event one")
	assert.Contains(t, tight, "latest", "the newest tail line survives longest")
}

func TestRenderContextZeroBudget(t *testing.T) {
	assert.Empty(t, renderContext("", nil, nil, nil, 0))
	assert.Empty(t, renderContext("", nil, nil, nil, -5))
}

func TestRenderContextNothingFits(t *testing.T) {
	profiles := []models.ProfileEntry{entry("1", "interest", "music", "plays guitar")}
	assert.Empty(t, renderContext("", profiles, nil, nil, 1))
}
