// Package llm provides the completion and embedding gateway. Provider
// adapters are selected by config.llm_style at construction time; callers see
// a uniform surface with typed errors.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

// DefaultMaxTokens bounds completion output when the caller does not.
const DefaultMaxTokens = 1024

// Message is one turn of completion history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest contains the input for one completion call.
type CompletionRequest struct {
	Prompt  string
	System  string
	History []Message

	// Model overrides the configured default when non-empty.
	Model string

	// MaxTokens caps the response; zero applies DefaultMaxTokens.
	MaxTokens int

	// JSONMode asks the provider for structured output. Set by
	// CompleteJSON; plain Complete callers leave it false.
	JSONMode bool
}

// EmbedPhase distinguishes indexing-time from query-time embedding calls.
// Providers that train asymmetric models need the distinction; symmetric
// providers ignore it.
type EmbedPhase string

const (
	EmbedPhaseIndex EmbedPhase = "index"
	EmbedPhaseQuery EmbedPhase = "query"
)

// Completer is implemented by provider adapters.
type Completer interface {
	// Complete returns the raw text of one completion.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Name returns the adapter identifier (the llm_style it serves).
	Name() string
}

// Embedder is implemented by embedding provider adapters.
type Embedder interface {
	Embed(ctx context.Context, phase EmbedPhase, texts []string) ([][]float32, error)
}

// Service is the gateway surface consumed by the extraction and retrieval
// pipelines.
type Service interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	CompleteJSON(ctx context.Context, req CompletionRequest, out any) error
	Embed(ctx context.Context, phase EmbedPhase, texts []string) ([][]float32, error)
}

// Gateway wires a Completer and an Embedder behind the Service surface.
type Gateway struct {
	completer Completer
	embedder  Embedder
	cfg       *config.Config
	logger    *slog.Logger
}

// New builds the gateway for the configured llm_style and embedding
// provider. An unknown style is a configuration error.
func New(cfg *config.Config) (*Gateway, error) {
	completer, err := newCompleter(cfg)
	if err != nil {
		return nil, err
	}

	var embedder Embedder
	if cfg.EnableEventEmbedding {
		embedder, err = newEmbedder(cfg)
		if err != nil {
			return nil, err
		}
	}

	return &Gateway{
		completer: completer,
		embedder:  embedder,
		cfg:       cfg,
		logger:    slog.With("component", "llm", "style", completer.Name()),
	}, nil
}

// NewFromParts builds a gateway around explicit adapters (useful for testing).
func NewFromParts(cfg *config.Config, completer Completer, embedder Embedder) *Gateway {
	return &Gateway{
		completer: completer,
		embedder:  embedder,
		cfg:       cfg,
		logger:    slog.With("component", "llm", "style", completer.Name()),
	}
}

// Complete runs one completion. Adapter failures surface as
// service-unavailable so callers can apply bounded retries.
func (g *Gateway) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if req.Model == "" {
		req.Model = g.cfg.BestLLMModel
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = DefaultMaxTokens
	}

	text, err := g.completer.Complete(ctx, req)
	if err != nil {
		g.logger.Error("Completion failed", "model", req.Model, "error", err)
		return "", memerr.E(memerr.ErrServiceUnavailable, "llm.complete", err)
	}
	return text, nil
}

// CompleteJSON runs one completion in JSON mode and decodes the result into
// out. A response that does not parse triggers a single reformat attempt;
// a second parse failure is an unprocessable error.
func (g *Gateway) CompleteJSON(ctx context.Context, req CompletionRequest, out any) error {
	req.JSONMode = true

	text, err := g.Complete(ctx, req)
	if err != nil {
		return err
	}

	if perr := parseJSONResponse(text, out); perr == nil {
		return nil
	}

	g.logger.Warn("Response was not valid JSON, requesting reformat", "model", req.Model)

	reformat := req
	reformat.System = ""
	reformat.History = nil
	reformat.Prompt = fmt.Sprintf(
		"Reformat the following content as a single valid JSON object. Reply with JSON only, no prose.\n\n%s",
		text)

	text, err = g.Complete(ctx, reformat)
	if err != nil {
		return err
	}
	if perr := parseJSONResponse(text, out); perr != nil {
		return memerr.E(memerr.ErrUnprocessable, "llm.complete_json", perr)
	}
	return nil
}

// Embed converts texts to vectors. Texts longer than the configured
// embedding window are truncated before the call. Returns a
// not-implemented error when event embedding is disabled.
func (g *Gateway) Embed(ctx context.Context, phase EmbedPhase, texts []string) ([][]float32, error) {
	if g.embedder == nil {
		return nil, memerr.Ef(memerr.ErrNotImplemented, "llm.embed", "event embedding is disabled")
	}
	if len(texts) == 0 {
		return nil, nil
	}

	clipped := make([]string, len(texts))
	for i, t := range texts {
		clipped[i] = blob.TruncateTokens(t, g.cfg.EmbeddingMaxTokenSize)
	}

	vectors, err := g.embedder.Embed(ctx, phase, clipped)
	if err != nil {
		g.logger.Error("Embedding failed", "phase", phase, "count", len(texts), "error", err)
		return nil, err
	}

	if len(vectors) != len(texts) {
		return nil, memerr.Ef(memerr.ErrInternal, "llm.embed",
			"provider returned %d vectors for %d inputs", len(vectors), len(texts))
	}
	for _, v := range vectors {
		if len(v) != g.cfg.EmbeddingDim {
			return nil, memerr.Ef(memerr.ErrConfig, "llm.embed",
				"embedding_dim is %d but provider returned %d dimensions", g.cfg.EmbeddingDim, len(v))
		}
	}
	return vectors, nil
}
