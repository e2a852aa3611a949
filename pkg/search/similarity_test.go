package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{
			name: "identical vectors",
			a:    []float32{1, 2, 3},
			b:    []float32{1, 2, 3},
			want: 1,
		},
		{
			name: "orthogonal vectors",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0,
		},
		{
			name: "opposite vectors",
			a:    []float32{1, 0},
			b:    []float32{-1, 0},
			want: -1,
		},
		{
			name: "zero vector",
			a:    []float32{0, 0},
			b:    []float32{1, 1},
			want: 0,
		},
		{
			name: "length mismatch",
			a:    []float32{1, 2},
			b:    []float32{1, 2, 3},
			want: 0,
		},
		{
			name: "empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosine_ScaleInvariant(t *testing.T) {
	a := []float32{0.3, 0.7, 0.1}
	scaled := []float32{0.6, 1.4, 0.2}
	assert.InDelta(t, 1, Cosine(a, scaled), 1e-6)
}

func TestSortHits_TiebreakByRecency(t *testing.T) {
	older := time.Now().Add(-2 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)

	hits := []models.GistHit{
		{Gist: models.Gist{ID: "low", CreatedAt: newer}, Similarity: 0.5},
		{Gist: models.Gist{ID: "tie-old", CreatedAt: older}, Similarity: 0.9},
		{Gist: models.Gist{ID: "tie-new", CreatedAt: newer}, Similarity: 0.9},
	}
	sortHits(hits)

	assert.Equal(t, "tie-new", hits[0].ID)
	assert.Equal(t, "tie-old", hits[1].ID)
	assert.Equal(t, "low", hits[2].ID)
}
