// Package search provides the vector index over event gists. Three backends
// implement the same surface: a Postgres scan that scores in process, a
// Qdrant collection for deployments with a dedicated vector store, and an
// in-memory index for tests.
package search

import (
	"context"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// GistIndex is the retrieval surface over embedded gists.
type GistIndex interface {
	// IndexGist makes a persisted gist searchable. The gist row itself is
	// owned by the event store; the index only holds the vector and enough
	// payload to answer searches.
	IndexGist(ctx context.Context, gist models.Gist, embedding []float32) error

	// SearchGists returns gists created within the last windowDays whose
	// cosine similarity to queryVec is at least threshold, sorted by
	// similarity descending with created_at descending as tiebreak,
	// truncated to topk. Gists without embeddings are skipped.
	// windowDays <= 0 disables the window.
	SearchGists(ctx context.Context, userID string, queryVec []float32, topk int, threshold float64, windowDays int) ([]models.GistHit, error)
}

// NewGistIndex builds the index selected by config.search_store.
func NewGistIndex(ctx context.Context, cfg *config.Config, client *ent.Client) (GistIndex, error) {
	switch cfg.SearchStore {
	case "postgres":
		return NewPostgresIndex(client), nil
	case "qdrant":
		idx, err := NewQdrantIndex(cfg.Qdrant, cfg.EmbeddingDim)
		if err != nil {
			return nil, err
		}
		if err := idx.EnsureCollection(ctx); err != nil {
			return nil, err
		}
		return idx, nil
	case "memory":
		return NewMemoryIndex(), nil
	default:
		return nil, memerr.Ef(memerr.ErrConfig, "search.new", "unsupported search_store %q", cfg.SearchStore)
	}
}
