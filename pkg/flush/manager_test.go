package flush

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/database"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/extraction"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/search"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

// scriptEntry is one canned completion: either a JSON payload or an error.
type scriptEntry struct {
	payload string
	err     error
}

// scriptedLLM plays back canned responses in call order and records every
// request. Embed returns deterministic vectors of embedDim.
type scriptedLLM struct {
	mu       sync.Mutex
	script   []scriptEntry
	calls    []llm.CompletionRequest
	embedDim int
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

// flushTestConfig uses a low token threshold so tests can cross it with
// small batches.
func flushTestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.MaxChatBlobBufferTokenSize = 50
	return cfg
}

// chatBlobOfTokens builds a chat blob of at least n rendered tokens.
func chatBlobOfTokens(userID string, n int) *blob.Blob {
	return blob.NewChatBlob(userID, blob.Message{Role: blob.RoleUser, Content: strings.Repeat("word", n)})
}

type testEnv struct {
	client  *database.Client
	buffers *services.BufferService
	blobs   *services.BlobService
	manager *Manager
}

// newTestManager wires a flush manager against a containerized database and
// the given script.
func newTestManager(t *testing.T, cfg *config.Config, fake *scriptedLLM) *testEnv {
	client := testdb.NewTestClient(t)
	buffers := services.NewBufferService(client.Client)
	blobs := services.NewBlobService(client.Client)
	profiles := services.NewProfileService(client.Client)
	events := services.NewEventService(client.Client, search.NewPostgresIndex(client.Client))
	pipeline := extraction.NewPipeline(cfg, fake, profiles, events)
	return &testEnv{
		client:  client,
		buffers: buffers,
		blobs:   blobs,
		manager: NewManager(cfg, buffers, blobs, pipeline),
	}
}

func (e *testEnv) entryStatus(t *testing.T, bufferID string) bufferentry.Status {
	t.Helper()
	row, err := e.client.BufferEntry.Get(context.Background(), bufferID)
	require.NoError(t, err)
	return row.Status
}

func TestManagerFlushIfReadyBelowThreshold(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestManager(t, flushTestConfig(), fake)
	ctx := context.Background()

	bufferID, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 10))
	require.NoError(t, err)

	res, err := env.manager.FlushIfReady(ctx, "u1", blob.TypeChat, nil)
	require.NoError(t, err)
	assert.Nil(t, res, "no trigger fired")
	assert.Equal(t, bufferentry.StatusIdle, env.entryStatus(t, bufferID))
	assert.Zero(t, fake.callCount(), "no extraction without a flush")
}

func TestManagerFlushIfReadyThresholdCrossing(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": [{"topic": "interest", "sub_topic": "music", "memo": "Plays jazz guitar"}]}`},
		{payload: `{"summary": "The user shared a hobby.", "gists": ["The user plays jazz guitar."]}`},
	}}
	env := newTestManager(t, flushTestConfig(), fake)
	ctx := context.Background()

	first, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 30))
	require.NoError(t, err)

	// Below threshold after the first insert.
	res, err := env.manager.FlushIfReady(ctx, "u1", blob.TypeChat, nil)
	require.NoError(t, err)
	require.Nil(t, res)

	second, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 30))
	require.NoError(t, err)

	// The second insert crosses it; both entries flush together.
	res, err = env.manager.FlushIfReady(ctx, "u1", blob.TypeChat, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, []string{first, second}, res.BufferIDs)
	require.NotNil(t, res.Extraction)
	assert.Len(t, res.Extraction.AddIDs, 1)

	assert.Equal(t, bufferentry.StatusDone, env.entryStatus(t, first))
	assert.Equal(t, bufferentry.StatusDone, env.entryStatus(t, second))

	capacity, err := env.buffers.Capacity(ctx, "u1", blob.TypeChat)
	require.NoError(t, err)
	assert.Zero(t, capacity, "flushed entries left the idle pool")
}

func TestManagerFlushAllIgnoresTriggers(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": []}`},
	}}
	env := newTestManager(t, flushTestConfig(), fake)
	ctx := context.Background()

	bufferID, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 5))
	require.NoError(t, err)

	res, err := env.manager.FlushAll(ctx, "u1", blob.TypeChat, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, []string{bufferID}, res.BufferIDs)
	assert.Equal(t, bufferentry.StatusDone, env.entryStatus(t, bufferID))

	// Flushing an empty buffer is a no-op.
	res, err = env.manager.FlushAll(ctx, "u1", blob.TypeChat, nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestManagerFlushMarksFailedOnPipelineError(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{err: memerr.Ef(memerr.ErrUnprocessable, "llm.complete_json", "malformed output")},
	}}
	env := newTestManager(t, flushTestConfig(), fake)
	ctx := context.Background()

	b := chatBlobOfTokens("u1", 60)
	bufferID, err := env.buffers.Insert(ctx, "u1", b)
	require.NoError(t, err)

	res, err := env.manager.FlushIfReady(ctx, "u1", blob.TypeChat, nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, bufferentry.StatusFailed, env.entryStatus(t, bufferID))

	// The blob body outlives the failed entry; retention owns its deletion.
	stored, err := env.blobs.GetBlob(ctx, "u1", b.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.Chat)
}

func TestManagerFlushClaimShrinks(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": []}`},
	}}
	env := newTestManager(t, flushTestConfig(), fake)
	ctx := context.Background()

	first, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 30))
	require.NoError(t, err)
	second, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 30))
	require.NoError(t, err)

	// A concurrent flush already took the first entry.
	claimed, err := env.buffers.ClaimProcessing(ctx, "u1", []string{first})
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	res, err := env.manager.Flush(ctx, "u1", blob.TypeChat, []string{first, second}, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, []string{second}, res.BufferIDs, "the batch shrinks to what was claimed")
	assert.Equal(t, bufferentry.StatusProcessing, env.entryStatus(t, first), "the foreign claim is untouched")
	assert.Equal(t, bufferentry.StatusDone, env.entryStatus(t, second))
}

func TestManagerFlushNothingClaimed(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	env := newTestManager(t, flushTestConfig(), fake)
	ctx := context.Background()

	bufferID, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 30))
	require.NoError(t, err)
	_, err = env.buffers.ClaimProcessing(ctx, "u1", []string{bufferID})
	require.NoError(t, err)

	res, err := env.manager.Flush(ctx, "u1", blob.TypeChat, []string{bufferID}, nil)
	require.NoError(t, err)
	assert.Nil(t, res, "everything was claimed elsewhere")
	assert.Zero(t, fake.callCount())
}
