package memobase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/database"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/search"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

// scriptEntry is one canned completion: either a JSON payload or an error.
type scriptEntry struct {
	payload string
	err     error
}

// scriptedLLM plays back canned completions in call order and records every
// request. Embed returns deterministic vectors of embedDim; embedErrs, when
// set, is popped one entry per Embed call so tests can fault individual
// attempts.
type scriptedLLM struct {
	mu        sync.Mutex
	script    []scriptEntry
	calls     []llm.CompletionRequest
	embedDim  int
	embedErrs []error
	embeds    int
}

func (s *scriptedLLM) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if len(s.script) == 0 {
		return "", fmt.Errorf("unexpected completion call %d: %q", len(s.calls), req.Prompt)
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next.payload, next.err
}

func (s *scriptedLLM) CompleteJSON(ctx context.Context, req llm.CompletionRequest, out any) error {
	req.JSONMode = true
	text, err := s.Complete(ctx, req)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(text), out)
}

func (s *scriptedLLM) Embed(_ context.Context, _ llm.EmbedPhase, texts []string) ([][]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.embeds++
	if len(s.embedErrs) > 0 {
		next := s.embedErrs[0]
		s.embedErrs = s.embedErrs[1:]
		if next != nil {
			return nil, next
		}
	}
	if s.embedDim == 0 {
		return nil, memerr.Ef(memerr.ErrNotImplemented, "llm.embed", "event embedding is disabled")
	}
	vecs := make([][]float32, len(texts))
	for i := range texts {
		vec := make([]float32, s.embedDim)
		vec[0] = 1
		vecs[i] = vec
	}
	return vecs, nil
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *scriptedLLM) embedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.embeds
}

func (s *scriptedLLM) lastCall() llm.CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return llm.CompletionRequest{}
	}
	return s.calls[len(s.calls)-1]
}

// memobaseTestConfig lowers the flush threshold so tests cross it with small
// batches.
func memobaseTestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.MaxChatBlobBufferTokenSize = 50
	return cfg
}

func chatBlobOfTokens(userID string, n int) *blob.Blob {
	return blob.NewChatBlob(userID, blob.Message{Role: blob.RoleUser, Content: strings.Repeat("word", n)})
}

func docBlobOfTokens(userID string, n int) *blob.Blob {
	return &blob.Blob{
		Type:   blob.TypeDoc,
		UserID: userID,
		Doc:    &blob.DocPayload{Content: strings.Repeat("word", n)},
	}
}

type testEnv struct {
	client   *database.Client
	mb       *Memobase
	buffers  *services.BufferService
	profiles *services.ProfileService
}

func newTestMemobase(t *testing.T, cfg *config.Config, fake *scriptedLLM) *testEnv {
	client := testdb.NewTestClient(t)
	return &testEnv{
		client:   client,
		mb:       NewFromParts(cfg, client, fake, search.NewPostgresIndex(client.Client)),
		buffers:  services.NewBufferService(client.Client),
		profiles: services.NewProfileService(client.Client),
	}
}

func TestExtractMemoriesBuffersUntilThreshold(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	res, err := env.mb.ExtractMemories(ctx, "u1", []*blob.Blob{chatBlobOfTokens("u1", 10)}, nil)
	require.NoError(t, err)
	assert.Nil(t, res, "blob buffered, nothing flushed")

	capacity, err := env.buffers.Capacity(ctx, "u1", blob.TypeChat)
	require.NoError(t, err)
	assert.Equal(t, 1, capacity)
	assert.Zero(t, fake.callCount())
}

func TestExtractMemoriesFlushesWhenThresholdCrossed(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": [{"topic": "interest", "sub_topic": "music", "memo": "Plays jazz guitar"}]}`},
		{payload: `{"summary": "The user shared a hobby.", "gists": ["The user plays jazz guitar."]}`},
	}}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	res, err := env.mb.ExtractMemories(ctx, "u1", []*blob.Blob{
		chatBlobOfTokens("u1", 30),
		chatBlobOfTokens("u1", 30),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Len(t, res.AddIDs, 1)
	require.NotNil(t, res.EventID)

	entries, err := env.mb.GetUserProfiles(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Plays jazz guitar", entries[0].Content)
	assert.Equal(t, "interest", entries[0].Attributes.Topic)

	capacity, err := env.buffers.Capacity(ctx, "u1", blob.TypeChat)
	require.NoError(t, err)
	assert.Zero(t, capacity, "flushed entries left the idle pool")
}

func TestExtractMemoriesZeroBlobs(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestMemobase(t, memobaseTestConfig(), fake)

	res, err := env.mb.ExtractMemories(context.Background(), "u1", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Zero(t, fake.callCount())
}

func TestExtractMemoriesFlushesEachBlobType(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": [{"topic": "interest", "sub_topic": "music", "memo": "Plays jazz guitar"}]}`},
		{payload: `{"summary": "The user shared a hobby.", "gists": ["The user plays jazz guitar."]}`},
		{payload: `{"facts": [{"topic": "work", "sub_topic": "skills", "memo": "Writes design documents"}]}`},
		{payload: `{"summary": "The user shared working habits.", "gists": ["The user writes design documents."]}`},
	}}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	// Chat and doc blobs buffer separately; each buffer crosses the
	// threshold on its own and flushes in first-seen order.
	res, err := env.mb.ExtractMemories(ctx, "u1", []*blob.Blob{
		chatBlobOfTokens("u1", 60),
		docBlobOfTokens("u1", 60),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Len(t, res.AddIDs, 2, "both flushes contribute to the merged result")
	require.NotNil(t, res.EventID)

	for _, bt := range []blob.BlobType{blob.TypeChat, blob.TypeDoc} {
		capacity, err := env.buffers.Capacity(ctx, "u1", bt)
		require.NoError(t, err)
		assert.Zero(t, capacity, "buffer %s drained", bt)
	}
}

func TestFlushBufferFlushesIdleRegardlessOfTriggers(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": [{"topic": "basic_info", "sub_topic": "location", "memo": "Lives in Berlin"}]}`},
		{payload: `{"summary": "The user mentioned their city.", "gists": ["The user lives in Berlin."]}`},
	}}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	res, err := env.mb.ExtractMemories(ctx, "u1", []*blob.Blob{chatBlobOfTokens("u1", 10)}, nil)
	require.NoError(t, err)
	require.Nil(t, res, "below threshold, stays buffered")

	flushed, err := env.mb.FlushBuffer(ctx, "u1", blob.TypeChat)
	require.NoError(t, err)
	require.NotNil(t, flushed)
	assert.Len(t, flushed.AddIDs, 1)

	// A second explicit flush finds nothing.
	flushed, err = env.mb.FlushBuffer(ctx, "u1", blob.TypeChat)
	require.NoError(t, err)
	assert.Nil(t, flushed)
}

func TestGetUserProfilesTopicFilter(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	_, err := env.profiles.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "Plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "music"}},
		{Content: "Data engineer", Attributes: models.ProfileAttributes{Topic: "work", SubTopic: "title"}},
	})
	require.NoError(t, err)

	all, err := env.mb.GetUserProfiles(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	interests, err := env.mb.GetUserProfiles(ctx, "u1", "interest")
	require.NoError(t, err)
	require.Len(t, interests, 1)
	assert.Equal(t, "Plays jazz guitar", interests[0].Content)

	none, err := env.mb.GetUserProfiles(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, none, "users never see each other's profiles")
}

func TestGetEventsReturnsFlushedEvents(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": [{"topic": "interest", "sub_topic": "music", "memo": "Plays jazz guitar"}]}`},
		{payload: `{"summary": "The user shared a hobby.", "gists": ["The user plays jazz guitar."]}`},
	}}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	_, err := env.mb.ExtractMemories(ctx, "u1", []*blob.Blob{chatBlobOfTokens("u1", 60)}, nil)
	require.NoError(t, err)

	events, err := env.mb.GetEvents(ctx, "u1", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "The user shared a hobby.", events[0].Data.EventTip)
	require.Len(t, events[0].Data.ProfileDelta, 1)
	assert.Equal(t, "Plays jazz guitar", events[0].Data.ProfileDelta[0].Content)
}

func TestSearchEventsFindsSimilarGists(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": [{"topic": "interest", "sub_topic": "music", "memo": "Plays jazz guitar"}]}`},
		{payload: `{"summary": "The user shared a hobby.", "gists": ["The user plays jazz guitar."]}`},
	}}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	_, err := env.mb.ExtractMemories(ctx, "u1", []*blob.Blob{chatBlobOfTokens("u1", 60)}, nil)
	require.NoError(t, err)

	hits, err := env.mb.SearchEvents(ctx, "u1", "what instruments does the user play", 5, 0.5, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "The user plays jazz guitar.", hits[0].Content)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)

	// topk <= 0 short-circuits without touching the provider.
	before := fake.embedCount()
	hits, err = env.mb.SearchEvents(ctx, "u1", "anything", 0, 0.5, 0)
	require.NoError(t, err)
	assert.Nil(t, hits)
	assert.Equal(t, before, fake.embedCount())
}

func TestSearchEventsDisabledWithoutEmbedding(t *testing.T) {
	cfg := memobaseTestConfig()
	cfg.EnableEventEmbedding = false
	fake := &scriptedLLM{}
	env := newTestMemobase(t, cfg, fake)

	_, err := env.mb.SearchEvents(context.Background(), "u1", "anything", 5, 0.5, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrNotImplemented)
	assert.Equal(t, 1, fake.embedCount(), "not-implemented is never retried")
}

func TestSearchEventsRetriesTransientFailures(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": [{"topic": "interest", "sub_topic": "music", "memo": "Plays jazz guitar"}]}`},
		{payload: `{"summary": "The user shared a hobby.", "gists": ["The user plays jazz guitar."]}`},
	}}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	_, err := env.mb.ExtractMemories(ctx, "u1", []*blob.Blob{chatBlobOfTokens("u1", 60)}, nil)
	require.NoError(t, err)

	t.Run("recovers after one outage", func(t *testing.T) {
		before := fake.embedCount()
		fake.embedErrs = []error{
			memerr.Ef(memerr.ErrServiceUnavailable, "llm.embed", "provider timeout"),
			nil,
		}

		hits, err := env.mb.SearchEvents(ctx, "u1", "instruments", 5, 0.5, 0)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, before+2, fake.embedCount(), "one failed attempt plus one retry")
	})

	t.Run("gives up after bounded retries", func(t *testing.T) {
		before := fake.embedCount()
		outage := memerr.Ef(memerr.ErrServiceUnavailable, "llm.embed", "provider timeout")
		fake.embedErrs = []error{outage, outage, outage}

		_, err := env.mb.SearchEvents(ctx, "u1", "instruments", 5, 0.5, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, memerr.ErrServiceUnavailable)
		assert.Equal(t, before+3, fake.embedCount(), "initial attempt plus two retries")
	})
}

func TestGetConversationContextZeroBudget(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	_, err := env.profiles.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "Plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "music"}},
	})
	require.NoError(t, err)

	out, err := env.mb.GetConversationContext(ctx, "u1",
		[]blob.Message{{Role: blob.RoleUser, Content: "hi"}}, models.ContextOptions{})
	require.NoError(t, err)
	assert.Equal(t, "", out, "zero budget renders nothing even with stored memory")
	assert.Zero(t, fake.callCount())
}

func TestGetConversationContextRendersMemory(t *testing.T) {
	cfg := memobaseTestConfig()
	cfg.EnableEventEmbedding = false
	fake := &scriptedLLM{script: []scriptEntry{
		{payload: `{"facts": [{"topic": "interest", "sub_topic": "music", "memo": "Plays jazz guitar"}]}`},
		{payload: `{"summary": "The user shared a hobby.", "gists": ["The user plays jazz guitar."]}`},
	}}
	env := newTestMemobase(t, cfg, fake)
	ctx := context.Background()

	_, err := env.mb.ExtractMemories(ctx, "u1", []*blob.Blob{chatBlobOfTokens("u1", 60)}, nil)
	require.NoError(t, err)
	flushCalls := fake.callCount()

	opts := models.DefaultContextOptions()
	opts.FullProfileAndOnlySearchEvent = true
	conversation := []blob.Message{{Role: blob.RoleUser, Content: "hi again"}}

	out, err := env.mb.GetConversationContext(ctx, "u1", conversation, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "# Memory")
	assert.Contains(t, out, "- interest::music: Plays jazz guitar")
	assert.Contains(t, out, "## Past Events:")
	assert.Contains(t, out, "The user plays jazz guitar.")
	assert.Contains(t, out, "user: hi again")
	assert.Equal(t, flushCalls, fake.callCount(), "full-profile mode skips the filter call")
}

func TestSearchProfilesUsesSyntheticConversation(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	ids, err := env.profiles.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "Plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "music"}},
		{Content: "Data engineer", Attributes: models.ProfileAttributes{Topic: "work", SubTopic: "title"}},
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	fake.script = []scriptEntry{
		{payload: fmt.Sprintf(`{"reason": "query is about instruments", "profiles": ["%s"]}`, ids[0])},
	}

	entries, err := env.mb.SearchProfiles(ctx, "u1", "what instruments do they play", nil, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ids[0], entries[0].ID)
	assert.Contains(t, fake.lastCall().Prompt, "what instruments do they play",
		"the query reaches the filter as a synthetic conversation")
}

func TestSearchProfilesTopicNarrowing(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestMemobase(t, memobaseTestConfig(), fake)
	ctx := context.Background()

	ids, err := env.profiles.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "Plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: "music"}},
		{Content: "Data engineer", Attributes: models.ProfileAttributes{Topic: "work", SubTopic: "title"}},
	})
	require.NoError(t, err)

	// The filter answers with both ids, but only interest entries were
	// candidates; the foreign id is ignored.
	fake.script = []scriptEntry{
		{payload: fmt.Sprintf(`{"reason": "both look relevant", "profiles": ["%s", "%s"]}`, ids[0], ids[1])},
	}

	entries, err := env.mb.SearchProfiles(ctx, "u1", "tell me about them", []string{"interest"}, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "interest", entries[0].Attributes.Topic)
}

func TestSearchProfilesZeroMaxResults(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestMemobase(t, memobaseTestConfig(), fake)

	entries, err := env.mb.SearchProfiles(context.Background(), "u1", "anything", nil, 0)
	require.NoError(t, err)
	assert.Nil(t, entries)
	assert.Zero(t, fake.callCount())
}

func TestRetryReadPropagatesNonRetryable(t *testing.T) {
	calls := 0
	_, err := retryRead(context.Background(), slog.Default(), "op", func() (int, error) {
		calls++
		return 0, memerr.Ef(memerr.ErrUnprocessable, "op", "bad input")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrUnprocessable)
	assert.Equal(t, 1, calls)
}

func TestRetryReadStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := retryRead(ctx, slog.Default(), "op", func() (int, error) {
		calls++
		cancel()
		return 0, memerr.Ef(memerr.ErrServiceUnavailable, "op", "outage")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "no retry once the caller's context is gone")
	require.True(t, errors.Is(err, memerr.ErrServiceUnavailable))
}
