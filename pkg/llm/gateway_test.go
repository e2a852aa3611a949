package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

// fakeCompleter returns scripted responses in order and records the requests
// it received.
type fakeCompleter struct {
	responses []string
	errs      []error
	calls     []CompletionRequest
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(_ context.Context, req CompletionRequest) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

type fakeEmbedder struct {
	dim   int
	calls [][]string
	err   error
}

func (f *fakeEmbedder) Embed(_ context.Context, _ EmbedPhase, texts []string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = make([]float32, f.dim)
	}
	return out, nil
}

func testGatewayConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.BestLLMModel = "test-model"
	cfg.EmbeddingDim = 3
	cfg.EmbeddingMaxTokenSize = 8
	return cfg
}

func TestGateway_CompleteAppliesDefaults(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"hello"}}
	gw := NewFromParts(testGatewayConfig(), completer, nil)

	text, err := gw.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	require.Len(t, completer.calls, 1)
	assert.Equal(t, "test-model", completer.calls[0].Model)
	assert.Equal(t, DefaultMaxTokens, completer.calls[0].MaxTokens)
}

func TestGateway_CompleteKeepsExplicitModel(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"ok"}}
	gw := NewFromParts(testGatewayConfig(), completer, nil)

	_, err := gw.Complete(context.Background(), CompletionRequest{
		Prompt:    "hi",
		Model:     "other-model",
		MaxTokens: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "other-model", completer.calls[0].Model)
	assert.Equal(t, 42, completer.calls[0].MaxTokens)
}

func TestGateway_CompleteWrapsAdapterErrors(t *testing.T) {
	completer := &fakeCompleter{errs: []error{errors.New("connection refused")}}
	gw := NewFromParts(testGatewayConfig(), completer, nil)

	_, err := gw.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrServiceUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGateway_CompleteJSONFirstTry(t *testing.T) {
	completer := &fakeCompleter{responses: []string{`{"name":"alice"}`}}
	gw := NewFromParts(testGatewayConfig(), completer, nil)

	var out struct {
		Name string `json:"name"`
	}
	err := gw.CompleteJSON(context.Background(), CompletionRequest{Prompt: "extract"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Name)

	require.Len(t, completer.calls, 1)
	assert.True(t, completer.calls[0].JSONMode)
}

func TestGateway_CompleteJSONReformatRetry(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		"Sure! The user's name is alice.",
		`{"name":"alice"}`,
	}}
	gw := NewFromParts(testGatewayConfig(), completer, nil)

	var out struct {
		Name string `json:"name"`
	}
	err := gw.CompleteJSON(context.Background(), CompletionRequest{
		Prompt: "extract",
		System: "long system prompt",
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Name)

	require.Len(t, completer.calls, 2)
	retry := completer.calls[1]
	assert.Empty(t, retry.System, "reformat retry should not resend the original system prompt")
	assert.Contains(t, retry.Prompt, "alice", "reformat retry should carry the original output")
	assert.True(t, retry.JSONMode)
}

func TestGateway_CompleteJSONUnprocessableAfterRetry(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"no json here", "still no json"}}
	gw := NewFromParts(testGatewayConfig(), completer, nil)

	var out map[string]any
	err := gw.CompleteJSON(context.Background(), CompletionRequest{Prompt: "extract"}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrUnprocessable)
	assert.Len(t, completer.calls, 2)
}

func TestGateway_CompleteJSONTransportErrorOnRetry(t *testing.T) {
	completer := &fakeCompleter{
		responses: []string{"not json", ""},
		errs:      []error{nil, errors.New("timeout")},
	}
	gw := NewFromParts(testGatewayConfig(), completer, nil)

	var out map[string]any
	err := gw.CompleteJSON(context.Background(), CompletionRequest{Prompt: "extract"}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrServiceUnavailable)
}

func TestGateway_EmbedDisabled(t *testing.T) {
	completer := &fakeCompleter{}
	gw := NewFromParts(testGatewayConfig(), completer, nil)

	_, err := gw.Embed(context.Background(), EmbedPhaseQuery, []string{"hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrNotImplemented)
}

func TestGateway_EmbedEmptyInput(t *testing.T) {
	embedder := &fakeEmbedder{dim: 3}
	gw := NewFromParts(testGatewayConfig(), &fakeCompleter{}, embedder)

	vectors, err := gw.Embed(context.Background(), EmbedPhaseIndex, nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
	assert.Empty(t, embedder.calls)
}

func TestGateway_EmbedTruncatesLongTexts(t *testing.T) {
	embedder := &fakeEmbedder{dim: 3}
	cfg := testGatewayConfig()
	gw := NewFromParts(cfg, &fakeCompleter{}, embedder)

	long := strings.Repeat("abcd", 100)
	vectors, err := gw.Embed(context.Background(), EmbedPhaseIndex, []string{long, "short"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)

	require.Len(t, embedder.calls, 1)
	sent := embedder.calls[0]
	assert.Less(t, len(sent[0]), len(long), "long input should be truncated before the provider call")
	assert.Equal(t, "short", sent[1])
}

func TestGateway_EmbedDimensionMismatch(t *testing.T) {
	embedder := &fakeEmbedder{dim: 5}
	gw := NewFromParts(testGatewayConfig(), &fakeCompleter{}, embedder)

	_, err := gw.Embed(context.Background(), EmbedPhaseQuery, []string{"hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrConfig)
	assert.Contains(t, err.Error(), "dimensions")
}

func TestGateway_EmbedCountMismatch(t *testing.T) {
	embedder := &countMismatchEmbedder{}
	gw := NewFromParts(testGatewayConfig(), &fakeCompleter{}, embedder)

	_, err := gw.Embed(context.Background(), EmbedPhaseQuery, []string{"a", "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrInternal)
}

type countMismatchEmbedder struct{}

func (countMismatchEmbedder) Embed(_ context.Context, _ EmbedPhase, _ []string) ([][]float32, error) {
	return [][]float32{{0, 0, 0}}, nil
}

func TestNew_UnknownStyle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LLMStyle = "anthropic"
	cfg.LLMAPIKey = "sk-test"

	_, err := New(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrConfig)
	assert.Contains(t, err.Error(), "anthropic")
}

func TestNew_UnknownEmbeddingProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LLMAPIKey = "sk-test"
	cfg.EnableEventEmbedding = true
	cfg.EmbeddingProvider = "cohere"
	cfg.EmbeddingAPIKey = "key"

	_, err := New(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrConfig)
}

func TestParseJSONResponse(t *testing.T) {
	type payload struct {
		Topic string `json:"topic"`
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain object",
			input: `{"topic":"work"}`,
			want:  "work",
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"topic\":\"work\"}\n```",
			want:  "work",
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"topic\":\"work\"}\n```",
			want:  "work",
		},
		{
			name:  "prose around object",
			input: "Here is the result:\n{\"topic\":\"work\"}\nHope that helps!",
			want:  "work",
		},
		{
			name:  "leading whitespace",
			input: "\n\n  {\"topic\":\"work\"}",
			want:  "work",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no json at all",
			input:   "I could not find any facts.",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			input:   `{"topic":"work"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out payload
			err := parseJSONResponse(tt.input, &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Topic)
		})
	}
}

func TestParseJSONResponse_Array(t *testing.T) {
	var out []int
	err := parseJSONResponse("The values are: [1, 2, 3]", &out)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestHTTPError_TruncatesLongBodies(t *testing.T) {
	err := &HTTPError{Status: 500, Body: strings.Repeat("x", 500)}
	msg := err.Error()
	assert.Contains(t, msg, "500")
	assert.Less(t, len(msg), 300)
	assert.True(t, strings.HasSuffix(msg, "..."), fmt.Sprintf("expected truncation marker, got %q", msg))
}
