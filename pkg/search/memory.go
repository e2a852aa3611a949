package search

import (
	"context"
	"sync"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// MemoryIndex is an in-process gist index for tests and single-node
// experiments. Not durable.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries map[string][]memoryEntry // user id -> indexed gists
}

type memoryEntry struct {
	gist      models.Gist
	embedding []float32
}

// NewMemoryIndex creates an empty in-process index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{entries: make(map[string][]memoryEntry)}
}

// IndexGist records the gist and its vector.
func (idx *MemoryIndex) IndexGist(_ context.Context, gist models.Gist, embedding []float32) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	vec := make([]float32, len(embedding))
	copy(vec, embedding)
	idx.entries[gist.UserID] = append(idx.entries[gist.UserID], memoryEntry{gist: gist, embedding: vec})
	return nil
}

// SearchGists scores the user's indexed gists in process.
func (idx *MemoryIndex) SearchGists(_ context.Context, userID string, queryVec []float32, topk int, threshold float64, windowDays int) ([]models.GistHit, error) {
	if topk <= 0 {
		return nil, nil
	}

	var cutoff time.Time
	if windowDays > 0 {
		cutoff = time.Now().AddDate(0, 0, -windowDays)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var hits []models.GistHit
	for _, e := range idx.entries[userID] {
		if len(e.embedding) == 0 {
			continue
		}
		if windowDays > 0 && !e.gist.CreatedAt.After(cutoff) {
			continue
		}
		sim := Cosine(queryVec, e.embedding)
		if sim < threshold {
			continue
		}
		hits = append(hits, models.GistHit{Gist: e.gist, Similarity: sim})
	}

	sortHits(hits)
	if len(hits) > topk {
		hits = hits[:topk]
	}
	return hits, nil
}
