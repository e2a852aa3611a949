package smartcache

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// fakeMemory is a scriptable façade standing in for the real engine.
type fakeMemory struct {
	mu           sync.Mutex
	profiles     []models.ProfileEntry
	profileErr   error
	profileCalls int
	hits         []models.GistHit
	eventErr     error
	eventCalls   int
	lastQuery    string
	contextOut   string
	contextCalls int
}

func (f *fakeMemory) GetUserProfiles(_ context.Context, _ string, _ ...string) ([]models.ProfileEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profiles, nil
}

func (f *fakeMemory) SearchEvents(_ context.Context, _, query string, _ int, _ float64, _ int) ([]models.GistHit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eventCalls++
	f.lastQuery = query
	if f.eventErr != nil {
		return nil, f.eventErr
	}
	return f.hits, nil
}

func (f *fakeMemory) GetConversationContext(_ context.Context, _ string, _ []blob.Message, _ models.ContextOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contextCalls++
	return f.contextOut, nil
}

func (f *fakeMemory) profileCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profileCalls
}

func entry(topic, subTopic, content string) models.ProfileEntry {
	return models.ProfileEntry{
		Content:    content,
		Attributes: models.ProfileAttributes{Topic: topic, SubTopic: subTopic},
	}
}

func TestEnhancedContextRendersAllSections(t *testing.T) {
	mem := &fakeMemory{
		profiles: []models.ProfileEntry{entry("interest", "music", "Plays jazz guitar")},
		hits:     []models.GistHit{{Gist: models.Gist{Content: "The user played at a jam session."}, Similarity: 0.9}},
	}
	cache := New("u1", mem, Config{})
	defer cache.Close()

	history := []blob.Message{
		{Role: blob.RoleUser, Content: "hello there"},
		{Role: blob.RoleAssistant, Content: "hi, how can I help?"},
	}
	out, err := cache.EnhancedContext(context.Background(), "I love playing guitar music", history, 0)
	require.NoError(t, err)

	assert.Contains(t, out, "# Memory")
	assert.Contains(t, out, "## User Current Profile:")
	assert.Contains(t, out, "- interest::music: Plays jazz guitar")
	assert.Contains(t, out, "## Past Events:")
	assert.Contains(t, out, "The user played at a jam session.")
	assert.Contains(t, out, "## Current Session Context:")
	assert.Contains(t, out, "User: hello there")
	assert.Contains(t, out, "Assistant: hi, how can I help?")

	assert.Equal(t, "I love playing guitar music", mem.lastQuery,
		"the raw message drives the live event search")
	assert.Equal(t, 1, mem.profileCallCount(), "cold cache loads once")
}

func TestEnhancedContextFiltersIrrelevantProfiles(t *testing.T) {
	mem := &fakeMemory{
		profiles: []models.ProfileEntry{
			entry("interest", "music", "Plays jazz guitar"),
			entry("work", "title", "Data engineer at a bank"),
		},
	}
	cache := New("u1", mem, Config{})
	defer cache.Close()

	out, err := cache.EnhancedContext(context.Background(), "I love playing guitar music", nil, 0)
	require.NoError(t, err)

	assert.Contains(t, out, "Plays jazz guitar")
	assert.NotContains(t, out, "Data engineer", "unrelated profile never makes the context")
}

func TestEnhancedContextFallsBackWhenCacheCannotLoad(t *testing.T) {
	mem := &fakeMemory{
		profileErr: memerr.Ef(memerr.ErrServiceUnavailable, "profile.list", "database outage"),
		contextOut: "fallback context from the engine",
	}
	cache := New("u1", mem, Config{})
	defer cache.Close()

	out, err := cache.EnhancedContext(context.Background(), "anything", nil, 500)
	require.NoError(t, err)
	assert.Equal(t, "fallback context from the engine", out)
	assert.Equal(t, 1, mem.contextCalls)
	assert.Equal(t, 1, cache.Stats().Misses)
}

func TestEnhancedContextOmitsEventsOnSearchFailure(t *testing.T) {
	mem := &fakeMemory{
		profiles: []models.ProfileEntry{entry("interest", "music", "Plays jazz guitar")},
		eventErr: memerr.Ef(memerr.ErrNotImplemented, "llm.embed", "event embedding is disabled"),
	}
	cache := New("u1", mem, Config{})
	defer cache.Close()

	out, err := cache.EnhancedContext(context.Background(), "I love playing guitar music", nil, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "Plays jazz guitar")
	assert.NotContains(t, out, "## Past Events:")
	assert.Zero(t, mem.contextCalls, "a failed event search is not a fallback case")
}

func TestEnhancedContextSchedulesBackgroundRefresh(t *testing.T) {
	mem := &fakeMemory{
		profiles: []models.ProfileEntry{entry("interest", "music", "Plays jazz guitar")},
	}
	// A nanosecond interval makes the cache stale immediately after the
	// synchronous cold load.
	cache := New("u1", mem, Config{RefreshInterval: time.Nanosecond})

	_, err := cache.EnhancedContext(context.Background(), "playing guitar music", nil, 0)
	require.NoError(t, err)

	cache.Close()
	assert.Equal(t, 2, mem.profileCallCount(), "cold load plus one background refresh")
	assert.Equal(t, 2, cache.Stats().Refreshes)
}

func TestEnhancedContextTruncatesAtBudget(t *testing.T) {
	mem := &fakeMemory{
		profiles: []models.ProfileEntry{entry("interest", "music", "Plays jazz guitar")},
	}
	cache := New("u1", mem, Config{})
	defer cache.Close()

	out, err := cache.EnhancedContext(context.Background(), "playing guitar music", nil, 10)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "[Context truncated due to length]"), "got: %q", out)
}

func TestRefreshSwapsSnapshot(t *testing.T) {
	mem := &fakeMemory{
		profiles: []models.ProfileEntry{entry("interest", "music", "Plays jazz guitar")},
	}
	cache := New("u1", mem, Config{})
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Refresh(ctx))
	assert.Equal(t, 1, cache.Stats().CachedProfiles)

	mem.mu.Lock()
	mem.profiles = append(mem.profiles, entry("work", "title", "Data engineer"))
	mem.mu.Unlock()

	require.NoError(t, cache.Refresh(ctx))
	st := cache.Stats()
	assert.Equal(t, 2, st.CachedProfiles)
	assert.Equal(t, 2, st.Refreshes)
	assert.False(t, st.LastRefresh.IsZero())
}

func TestSessionSummaryTailAndClipping(t *testing.T) {
	long := strings.Repeat("x", 120)
	history := []blob.Message{
		{Role: blob.RoleUser, Content: "dropped one"},
		{Role: blob.RoleUser, Content: "dropped two"},
		{Role: blob.RoleUser, Content: "kept one"},
		{Role: blob.RoleAssistant, Content: "kept two"},
		{Role: blob.RoleUser, Content: "kept three"},
		{Role: blob.RoleAssistant, Content: "kept four"},
		{Role: blob.RoleUser, Content: "kept five"},
		{Role: blob.RoleAssistant, Content: long},
	}

	summary := sessionSummary(history, 6)
	assert.NotContains(t, summary, "dropped one")
	assert.NotContains(t, summary, "dropped two")
	assert.Contains(t, summary, "User: kept one")
	assert.Contains(t, summary, "Assistant: kept two")
	assert.Contains(t, summary, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, summary, strings.Repeat("x", 101))

	assert.Equal(t, "", sessionSummary(nil, 6))
}
