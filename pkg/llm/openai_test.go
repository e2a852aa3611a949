package llm

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

type fakeChatClient struct {
	requests []openai.ChatCompletionRequest
	response openai.ChatCompletionResponse
	err      error
}

func (f *fakeChatClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	return f.response, f.err
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestOpenAICompleter_MessageOrder(t *testing.T) {
	client := &fakeChatClient{response: chatResponse("done")}
	completer := &openAICompleter{client: client}

	text, err := completer.Complete(context.Background(), CompletionRequest{
		System: "you are an extractor",
		History: []Message{
			{Role: "user", Content: "I live in Berlin"},
			{Role: "assistant", Content: "Noted"},
		},
		Prompt:    "extract facts",
		Model:     "gpt-4o-mini",
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, "done", text)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 256, req.MaxTokens)
	require.Len(t, req.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, "you are an extractor", req.Messages[0].Content)
	assert.Equal(t, "I live in Berlin", req.Messages[1].Content)
	assert.Equal(t, "Noted", req.Messages[2].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[3].Role)
	assert.Equal(t, "extract facts", req.Messages[3].Content)
	assert.Nil(t, req.ResponseFormat)
}

func TestOpenAICompleter_JSONMode(t *testing.T) {
	client := &fakeChatClient{response: chatResponse(`{}`)}
	completer := &openAICompleter{client: client}

	_, err := completer.Complete(context.Background(), CompletionRequest{
		Prompt:   "extract",
		Model:    "gpt-4o-mini",
		JSONMode: true,
	})
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	require.NotNil(t, client.requests[0].ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, client.requests[0].ResponseFormat.Type)
}

func TestOpenAICompleter_NoChoices(t *testing.T) {
	client := &fakeChatClient{response: openai.ChatCompletionResponse{}}
	completer := &openAICompleter{client: client}

	_, err := completer.Complete(context.Background(), CompletionRequest{Prompt: "hi", Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAICompleter_SkipsEmptySystem(t *testing.T) {
	client := &fakeChatClient{response: chatResponse("ok")}
	completer := &openAICompleter{client: client}

	_, err := completer.Complete(context.Background(), CompletionRequest{Prompt: "hi", Model: "m"})
	require.NoError(t, err)
	require.Len(t, client.requests[0].Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, client.requests[0].Messages[0].Role)
}

func TestNewOpenAICompleter_RequiresAPIKey(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LLMAPIKey = ""

	_, err := newOpenAICompleter(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrConfig)
}

func TestNewOpenAIEmbedder_RequiresAPIKey(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EmbeddingAPIKey = ""

	_, err := newOpenAIEmbedder(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrConfig)
}

type fakeEmbeddingClient struct {
	requests []openai.EmbeddingRequest
	response openai.EmbeddingResponse
	err      error
}

func (f *fakeEmbeddingClient) CreateEmbeddings(_ context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	f.requests = append(f.requests, conv.Convert())
	return f.response, f.err
}

func TestOpenAIEmbedder_RequestShape(t *testing.T) {
	client := &fakeEmbeddingClient{
		response: openai.EmbeddingResponse{
			Data: []openai.Embedding{
				{Embedding: []float32{0.1, 0.2}},
				{Embedding: []float32{0.3, 0.4}},
			},
		},
	}
	embedder := &openAIEmbedder{client: client, model: "text-embedding-3-small", dim: 2}

	vectors, err := embedder.Embed(context.Background(), EmbedPhaseIndex, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{0.1, 0.2}, vectors[0])

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, openai.EmbeddingModel("text-embedding-3-small"), req.Model)
	assert.Equal(t, 2, req.Dimensions)
}

func TestOpenAIEmbedder_TransportError(t *testing.T) {
	client := &fakeEmbeddingClient{err: context.DeadlineExceeded}
	embedder := &openAIEmbedder{client: client, model: "m", dim: 2}

	_, err := embedder.Embed(context.Background(), EmbedPhaseQuery, []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, memerr.ErrServiceUnavailable)
}
