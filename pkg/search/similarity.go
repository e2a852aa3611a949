package search

import (
	"math"
	"sort"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// Cosine returns the cosine similarity of two vectors, or 0 when either has
// zero magnitude or the lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// sortHits orders hits by similarity descending, breaking ties by
// created_at descending.
func sortHits(hits []models.GistHit) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		return hits[i].CreatedAt.After(hits[j].CreatedAt)
	})
}
