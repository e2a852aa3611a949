package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

// ChatClient is the subset of the OpenAI client used for completions.
// Tests substitute a fake.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// EmbeddingClient is the subset of the OpenAI client used for embeddings.
type EmbeddingClient interface {
	CreateEmbeddings(ctx context.Context, req openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

type openAICompleter struct {
	client ChatClient
}

func newOpenAICompleter(cfg *config.Config) (Completer, error) {
	if cfg.LLMAPIKey == "" {
		return nil, memerr.Ef(memerr.ErrConfig, "llm.new", "llm_api_key is required for the openai style")
	}
	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		clientCfg.BaseURL = cfg.LLMBaseURL
	}
	return &openAICompleter{client: openai.NewClientWithConfig(clientCfg)}, nil
}

func (c *openAICompleter) Name() string { return "openai" }

func (c *openAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := buildChatMessages(req)

	apiReq := openai.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}
	if req.JSONMode {
		apiReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// buildChatMessages flattens a CompletionRequest into the OpenAI message
// list: system first, then history, then the prompt as the final user turn.
func buildChatMessages(req CompletionRequest) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.History {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	if req.Prompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: req.Prompt,
		})
	}
	return messages
}

type openAIEmbedder struct {
	client EmbeddingClient
	model  string
	dim    int
}

func newOpenAIEmbedder(cfg *config.Config) (Embedder, error) {
	if cfg.EmbeddingAPIKey == "" {
		return nil, memerr.Ef(memerr.ErrConfig, "llm.new", "embedding_api_key is required when event embedding is enabled")
	}
	clientCfg := openai.DefaultConfig(cfg.EmbeddingAPIKey)
	if cfg.EmbeddingBaseURL != "" {
		clientCfg.BaseURL = cfg.EmbeddingBaseURL
	}
	return &openAIEmbedder{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.EmbeddingModel,
		dim:    cfg.EmbeddingDim,
	}, nil
}

func (e *openAIEmbedder) Embed(ctx context.Context, phase EmbedPhase, texts []string) ([][]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      texts,
		Model:      openai.EmbeddingModel(e.model),
		Dimensions: e.dim,
	})
	if err != nil {
		return nil, memerr.E(memerr.ErrServiceUnavailable, "llm.embed", err)
	}
	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}
