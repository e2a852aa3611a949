package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/search"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

// fakeLLM plays back canned completions and embeds deterministic vectors.
type fakeLLM struct {
	mu          sync.Mutex
	completions []string
	completeErr error
	calls       []llm.CompletionRequest
	embedDim    int
	embedPhases []llm.EmbedPhase
}

func (f *fakeLLM) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if f.completeErr != nil {
		return "", f.completeErr
	}
	if len(f.completions) == 0 {
		return "", fmt.Errorf("unexpected completion call: %q", req.Prompt)
	}
	next := f.completions[0]
	f.completions = f.completions[1:]
	return next, nil
}

func (f *fakeLLM) CompleteJSON(ctx context.Context, req llm.CompletionRequest, out any) error {
	req.JSONMode = true
	text, err := f.Complete(ctx, req)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(text), out)
}

func (f *fakeLLM) Embed(_ context.Context, phase llm.EmbedPhase, texts []string) ([][]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embedPhases = append(f.embedPhases, phase)
	vecs := make([][]float32, len(texts))
	for i := range texts {
		vec := make([]float32, f.embedDim)
		vec[0] = 1
		vecs[i] = vec
	}
	return vecs, nil
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestAssembler(t *testing.T, cfg *config.Config, fake *fakeLLM) (*Assembler, *services.ProfileService, *services.EventService) {
	client := testdb.NewTestClient(t)
	profiles := services.NewProfileService(client.Client)
	events := services.NewEventService(client.Client, search.NewPostgresIndex(client.Client))
	return NewAssembler(cfg, fake, profiles, events), profiles, events
}

func tailOf(contents ...string) []blob.Message {
	msgs := make([]blob.Message, 0, len(contents))
	for _, c := range contents {
		msgs = append(msgs, blob.Message{Role: blob.RoleUser, Content: c})
	}
	return msgs
}

func TestAssembler_PreferTopicsLeadTheProfileSection(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableEventEmbedding = false
	fake := &fakeLLM{}
	a, profiles, _ := newTestAssembler(t, cfg, fake)
	ctx := context.Background()

	_, err := profiles.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "hobbies", SubTopic: "music"}},
		{Content: "works as a nurse", Attributes: models.ProfileAttributes{Topic: "career", SubTopic: "title"}},
		{Content: "prefers vegetarian food", Attributes: models.ProfileAttributes{Topic: "preferences", SubTopic: "food"}},
	})
	require.NoError(t, err)

	opts := models.DefaultContextOptions()
	opts.MaxTokenSize = 500
	opts.PreferTopics = []string{"career"}
	opts.FullProfileAndOnlySearchEvent = true

	got, err := a.ConversationContext(ctx, "u1", tailOf("what should I cook tonight?"), opts)
	require.NoError(t, err)

	assert.LessOrEqual(t, blob.CountTokens(got), 500)
	career := strings.Index(got, "- career::title:")
	hobbies := strings.Index(got, "- hobbies::music:")
	prefs := strings.Index(got, "- preferences::food:")
	require.NotEqual(t, -1, career)
	require.NotEqual(t, -1, hobbies)
	require.NotEqual(t, -1, prefs)
	assert.Less(t, career, hobbies)
	assert.Less(t, career, prefs)

	assert.Zero(t, fake.callCount(), "full-profile mode never calls the model")
}

func TestAssembler_DisabledEmbeddingDegradesToRecentGists(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableEventEmbedding = false
	fake := &fakeLLM{}
	a, _, events := newTestAssembler(t, cfg, fake)
	ctx := context.Background()

	eventID, err := events.PutEvent(ctx, "u1", models.EventData{EventTip: "hobby noted"}, nil)
	require.NoError(t, err)
	_, err = events.PutGist(ctx, "u1", eventID, "The user plays jazz guitar.", nil)
	require.NoError(t, err)

	opts := models.DefaultContextOptions()
	opts.FullProfileAndOnlySearchEvent = true

	got, err := a.ConversationContext(ctx, "u1", tailOf("any hobby ideas?"), opts)
	require.NoError(t, err)

	assert.Contains(t, got, "The user plays jazz guitar.")
	assert.Zero(t, fake.callCount(), "no embedding and no filter calls without vectors")
}

func TestAssembler_VectorSearchSelectsSimilarGists(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableEventEmbedding = true
	fake := &fakeLLM{embedDim: 4}
	a, _, events := newTestAssembler(t, cfg, fake)
	ctx := context.Background()

	eventID, err := events.PutEvent(ctx, "u1", models.EventData{EventTip: "two gists"}, nil)
	require.NoError(t, err)
	_, err = events.PutGist(ctx, "u1", eventID, "The user plays jazz guitar.", []float32{1, 0, 0, 0})
	require.NoError(t, err)
	_, err = events.PutGist(ctx, "u1", eventID, "The user works night shifts.", []float32{0, 1, 0, 0})
	require.NoError(t, err)

	opts := models.DefaultContextOptions()
	opts.FullProfileAndOnlySearchEvent = true

	got, err := a.ConversationContext(ctx, "u1", tailOf("recommend me some music"), opts)
	require.NoError(t, err)

	assert.Contains(t, got, "The user plays jazz guitar.")
	assert.NotContains(t, got, "The user works night shifts.", "below the similarity threshold")
	require.Len(t, fake.embedPhases, 1)
	assert.Equal(t, llm.EmbedPhaseQuery, fake.embedPhases[0])
}

func TestAssembler_FilterNarrowsProfiles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableEventEmbedding = false
	fake := &fakeLLM{}
	a, profiles, _ := newTestAssembler(t, cfg, fake)
	ctx := context.Background()

	ids, err := profiles.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "hobbies", SubTopic: "music"}},
		{Content: "works as a nurse", Attributes: models.ProfileAttributes{Topic: "career", SubTopic: "title"}},
	})
	require.NoError(t, err)

	fake.completions = []string{
		fmt.Sprintf(`{"reason": "music question", "profiles": ["%s", "bogus-id"]}`, ids[0]),
	}

	got, err := a.RelevantProfiles(ctx, "u1", tailOf("recommend me some music"), models.DefaultContextOptions())
	require.NoError(t, err)

	require.Len(t, got, 1, "unknown ids are ignored")
	assert.Equal(t, ids[0], got[0].ID)

	require.Equal(t, 1, fake.callCount())
	prompt := fake.calls[0].Prompt
	assert.Contains(t, prompt, ids[0], "candidates are offered with their ids")
	assert.Contains(t, prompt, "recommend me some music")
}

func TestAssembler_FilterFailureKeepsAllCandidates(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableEventEmbedding = false
	fake := &fakeLLM{completeErr: memerr.Ef(memerr.ErrServiceUnavailable, "llm.complete", "timeout")}
	a, profiles, _ := newTestAssembler(t, cfg, fake)
	ctx := context.Background()

	_, err := profiles.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "hobbies", SubTopic: "music"}},
		{Content: "works as a nurse", Attributes: models.ProfileAttributes{Topic: "career", SubTopic: "title"}},
	})
	require.NoError(t, err)

	got, err := a.RelevantProfiles(ctx, "u1", tailOf("hello"), models.DefaultContextOptions())
	require.NoError(t, err, "a broken filter never fails retrieval")
	assert.Len(t, got, 2)
}

func TestAssembler_EmptyTailSkipsFilter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableEventEmbedding = false
	fake := &fakeLLM{}
	a, profiles, _ := newTestAssembler(t, cfg, fake)
	ctx := context.Background()

	_, err := profiles.AddProfiles(ctx, "u1", []models.AddProfile{
		{Content: "plays jazz guitar", Attributes: models.ProfileAttributes{Topic: "hobbies", SubTopic: "music"}},
	})
	require.NoError(t, err)

	got, err := a.ConversationContext(ctx, "u1", nil, models.DefaultContextOptions())
	require.NoError(t, err)

	assert.Contains(t, got, "- hobbies::music: plays jazz guitar")
	assert.Zero(t, fake.callCount())
}

func TestAssembler_ZeroBudgetYieldsEmptyString(t *testing.T) {
	cfg := config.DefaultConfig()
	fake := &fakeLLM{}
	a, _, _ := newTestAssembler(t, cfg, fake)

	opts := models.DefaultContextOptions()
	opts.MaxTokenSize = 0

	got, err := a.ConversationContext(context.Background(), "u1", tailOf("hello"), opts)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, fake.callCount())
}

func TestAssembler_ContextStaysInsideTightBudgets(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableEventEmbedding = false
	fake := &fakeLLM{}
	a, profiles, events := newTestAssembler(t, cfg, fake)
	ctx := context.Background()

	adds := make([]models.AddProfile, 0, 8)
	for i := 0; i < 8; i++ {
		adds = append(adds, models.AddProfile{
			Content:    fmt.Sprintf("durable fact number %d about this user that runs fairly long", i),
			Attributes: models.ProfileAttributes{Topic: "interest", SubTopic: fmt.Sprintf("slot_%d", i)},
		})
	}
	_, err := profiles.AddProfiles(ctx, "u1", adds)
	require.NoError(t, err)

	eventID, err := events.PutEvent(ctx, "u1", models.EventData{EventTip: "bulk"}, nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = events.PutGist(ctx, "u1", eventID, fmt.Sprintf("A fairly long event gist number %d about the user.", i), nil)
		require.NoError(t, err)
	}

	tail := tailOf("first message", "second message", "third message")
	for _, budget := range []int{60, 120, 240, 480} {
		opts := models.DefaultContextOptions()
		opts.MaxTokenSize = budget
		opts.FullProfileAndOnlySearchEvent = true

		got, err := a.ConversationContext(ctx, "u1", tail, opts)
		require.NoError(t, err)
		assert.LessOrEqual(t, blob.CountTokens(got), budget, "budget %d", budget)
	}
}
