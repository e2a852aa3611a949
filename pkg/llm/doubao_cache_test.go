package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

// doubaoTestServer emulates the Ark context-cache endpoints and records
// what it saw.
type doubaoTestServer struct {
	*httptest.Server

	mu             sync.Mutex
	contextCreates int
	contextChats   []doubaoChatRequest
	plainChats     []doubaoChatRequest
	failCreate     bool
}

func newDoubaoTestServer(t *testing.T) *doubaoTestServer {
	t.Helper()
	s := &doubaoTestServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		switch r.URL.Path {
		case "/context/create":
			s.contextCreates++
			if s.failCreate {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "context unavailable"})
				return
			}
			json.NewEncoder(w).Encode(doubaoContextResponse{ID: "ctx-123"})
		case "/context/chat/completions":
			var req doubaoChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			s.contextChats = append(s.contextChats, req)
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"content": "cached reply"}},
				},
			})
		case "/chat/completions":
			var req doubaoChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			s.plainChats = append(s.plainChats, req)
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"content": "plain reply"}},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func newTestDoubaoCompleter(t *testing.T, baseURL string) *doubaoCacheCompleter {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.LLMStyle = "doubao_cache"
	cfg.LLMAPIKey = "test-key"
	cfg.LLMBaseURL = baseURL

	completer, err := newDoubaoCacheCompleter(cfg)
	require.NoError(t, err)
	return completer.(*doubaoCacheCompleter)
}

func TestDoubaoCache_ReusesContextAcrossCalls(t *testing.T) {
	server := newDoubaoTestServer(t)
	completer := newTestDoubaoCompleter(t, server.URL)

	req := CompletionRequest{
		System:    "extract user facts",
		Prompt:    "turn one",
		Model:     "doubao-pro",
		MaxTokens: 128,
	}

	text, err := completer.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "cached reply", text)

	req.Prompt = "turn two"
	_, err = completer.Complete(context.Background(), req)
	require.NoError(t, err)

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Equal(t, 1, server.contextCreates, "same model and system prompt should create one context")
	require.Len(t, server.contextChats, 2)

	first := server.contextChats[0]
	assert.Equal(t, "ctx-123", first.ContextID)
	assert.Equal(t, "doubao-pro", first.Model)
	require.Len(t, first.Messages, 1, "system prompt should live in the context, not the message list")
	assert.Equal(t, "user", first.Messages[0].Role)
	assert.Equal(t, "turn one", first.Messages[0].Content)
	assert.Empty(t, server.plainChats)
}

func TestDoubaoCache_NewContextPerSystemPrompt(t *testing.T) {
	server := newDoubaoTestServer(t)
	completer := newTestDoubaoCompleter(t, server.URL)

	_, err := completer.Complete(context.Background(), CompletionRequest{
		System: "prompt a", Prompt: "x", Model: "m",
	})
	require.NoError(t, err)
	_, err = completer.Complete(context.Background(), CompletionRequest{
		System: "prompt b", Prompt: "x", Model: "m",
	})
	require.NoError(t, err)

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Equal(t, 2, server.contextCreates)
}

func TestDoubaoCache_FallsBackWhenContextCreateFails(t *testing.T) {
	server := newDoubaoTestServer(t)
	server.failCreate = true
	completer := newTestDoubaoCompleter(t, server.URL)

	text, err := completer.Complete(context.Background(), CompletionRequest{
		System: "extract user facts",
		Prompt: "hello",
		Model:  "doubao-pro",
	})
	require.NoError(t, err)
	assert.Equal(t, "plain reply", text)

	server.mu.Lock()
	defer server.mu.Unlock()
	require.Len(t, server.plainChats, 1)
	req := server.plainChats[0]
	assert.Empty(t, req.ContextID)
	require.Len(t, req.Messages, 2, "fallback should inline the system prompt")
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "extract user facts", req.Messages[0].Content)
}

func TestDoubaoCache_NoSystemSkipsContext(t *testing.T) {
	server := newDoubaoTestServer(t)
	completer := newTestDoubaoCompleter(t, server.URL)

	_, err := completer.Complete(context.Background(), CompletionRequest{
		Prompt: "hello", Model: "doubao-pro",
	})
	require.NoError(t, err)

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Zero(t, server.contextCreates)
	require.Len(t, server.plainChats, 1)
}

func TestDoubaoCache_JSONModeSetsResponseFormat(t *testing.T) {
	server := newDoubaoTestServer(t)
	completer := newTestDoubaoCompleter(t, server.URL)

	_, err := completer.Complete(context.Background(), CompletionRequest{
		Prompt: "extract", Model: "m", JSONMode: true,
	})
	require.NoError(t, err)

	server.mu.Lock()
	defer server.mu.Unlock()
	require.Len(t, server.plainChats, 1)
	require.NotNil(t, server.plainChats[0].ResponseFormat)
	assert.Equal(t, "json_object", server.plainChats[0].ResponseFormat.Type)
}

func TestDoubaoCache_HTTPErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	t.Cleanup(server.Close)

	completer := newTestDoubaoCompleter(t, server.URL)
	_, err := completer.Complete(context.Background(), CompletionRequest{Prompt: "hi", Model: "m"})
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
	assert.Contains(t, httpErr.Body, "rate limited")
}

func TestNewDoubaoCacheCompleter_Validation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LLMStyle = "doubao_cache"
	cfg.LLMAPIKey = ""
	cfg.LLMBaseURL = "https://ark.example.com/api/v3"

	_, err := newDoubaoCacheCompleter(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrConfig)

	cfg.LLMAPIKey = "key"
	cfg.LLMBaseURL = ""
	_, err = newDoubaoCacheCompleter(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrConfig)
}
