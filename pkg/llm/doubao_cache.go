package llm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

const (
	// doubaoContextTTL is how long the provider keeps a cached prefix alive.
	doubaoContextTTL = 86400

	doubaoRequestTimeout = 120 * time.Second
)

// doubaoCacheCompleter talks to the Ark chat API and caches the system
// prompt server-side through the context endpoints. Extraction reuses the
// same long system prompt across many calls, so prefix caching cuts both
// latency and cost. Cache setup failures fall back to plain completions.
type doubaoCacheCompleter struct {
	apiBase string
	apiKey  string
	client  *http.Client

	mu       sync.Mutex
	contexts map[string]string // cache key -> provider context id
}

func newDoubaoCacheCompleter(cfg *config.Config) (Completer, error) {
	if cfg.LLMAPIKey == "" {
		return nil, memerr.Ef(memerr.ErrConfig, "llm.new", "llm_api_key is required for the doubao_cache style")
	}
	if cfg.LLMBaseURL == "" {
		return nil, memerr.Ef(memerr.ErrConfig, "llm.new", "llm_base_url is required for the doubao_cache style")
	}
	return &doubaoCacheCompleter{
		apiBase:  strings.TrimRight(cfg.LLMBaseURL, "/"),
		apiKey:   cfg.LLMAPIKey,
		client:   &http.Client{Timeout: doubaoRequestTimeout},
		contexts: make(map[string]string),
	}, nil
}

func (c *doubaoCacheCompleter) Name() string { return "doubao_cache" }

type doubaoMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type doubaoResponseFormat struct {
	Type string `json:"type"`
}

type doubaoChatRequest struct {
	Model          string                `json:"model"`
	Messages       []doubaoMessage       `json:"messages"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	ContextID      string                `json:"context_id,omitempty"`
	ResponseFormat *doubaoResponseFormat `json:"response_format,omitempty"`
}

type doubaoChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type doubaoContextRequest struct {
	Model    string          `json:"model"`
	Messages []doubaoMessage `json:"messages"`
	Mode     string          `json:"mode"`
	TTL      int             `json:"ttl"`
}

type doubaoContextResponse struct {
	ID string `json:"id"`
}

func (c *doubaoCacheCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := doubaoChatRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &doubaoResponseFormat{Type: "json_object"}
	}

	endpoint := "/chat/completions"
	if req.System != "" {
		if id, err := c.contextID(ctx, req.Model, req.System); err == nil {
			chatReq.ContextID = id
			endpoint = "/context/chat/completions"
		}
		// On context failure the system prompt rides in the message list
		// against the plain endpoint instead.
	}

	if chatReq.ContextID == "" && req.System != "" {
		chatReq.Messages = append(chatReq.Messages, doubaoMessage{Role: "system", Content: req.System})
	}
	for _, m := range req.History {
		chatReq.Messages = append(chatReq.Messages, doubaoMessage{Role: m.Role, Content: m.Content})
	}
	if req.Prompt != "" {
		chatReq.Messages = append(chatReq.Messages, doubaoMessage{Role: "user", Content: req.Prompt})
	}

	var resp doubaoChatResponse
	if err := c.post(ctx, endpoint, chatReq, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// contextID returns the provider context for (model, system), creating it on
// first use. The id is cached until the process restarts; an expired id
// surfaces as a request error and the caller falls back to the plain
// endpoint on the next call via invalidation.
func (c *doubaoCacheCompleter) contextID(ctx context.Context, model, system string) (string, error) {
	key := contextCacheKey(model, system)

	c.mu.Lock()
	id, ok := c.contexts[key]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	var resp doubaoContextResponse
	err := c.post(ctx, "/context/create", doubaoContextRequest{
		Model:    model,
		Messages: []doubaoMessage{{Role: "system", Content: system}},
		Mode:     "common_prefix",
		TTL:      doubaoContextTTL,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("context create returned empty id")
	}

	c.mu.Lock()
	c.contexts[key] = resp.ID
	c.mu.Unlock()
	return resp.ID, nil
}

func (c *doubaoCacheCompleter) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return &HTTPError{Status: httpResp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func contextCacheKey(model, system string) string {
	sum := sha256.Sum256([]byte(system))
	return model + ":" + hex.EncodeToString(sum[:])
}

// HTTPError carries a non-2xx provider response.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if len(e.Body) > 200 {
		return fmt.Sprintf("provider returned status %d: %s...", e.Status, e.Body[:200])
	}
	return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Body)
}
