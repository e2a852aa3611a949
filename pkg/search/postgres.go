package search

import (
	"context"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/eventgist"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// PostgresIndex scores gists in process over rows already persisted in the
// event_gists table. Suits deployments without a dedicated vector store;
// the window filter keeps the scan bounded.
type PostgresIndex struct {
	client *ent.Client
}

// NewPostgresIndex creates an index over the event_gists table.
func NewPostgresIndex(client *ent.Client) *PostgresIndex {
	return &PostgresIndex{client: client}
}

// IndexGist is a no-op: the event store already persists the embedding on
// the gist row, which is exactly what SearchGists scans.
func (idx *PostgresIndex) IndexGist(_ context.Context, _ models.Gist, _ []float32) error {
	return nil
}

// SearchGists loads embedded gists in the window and scores them in process.
func (idx *PostgresIndex) SearchGists(ctx context.Context, userID string, queryVec []float32, topk int, threshold float64, windowDays int) ([]models.GistHit, error) {
	if topk <= 0 {
		return nil, nil
	}

	q := idx.client.EventGist.Query().
		Where(
			eventgist.UserIDEQ(userID),
			eventgist.EmbeddingNotNil(),
		)
	if windowDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -windowDays)
		q = q.Where(eventgist.CreatedAtGT(cutoff))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, memerr.E(memerr.ErrServiceUnavailable, "search.gists", err)
	}

	hits := make([]models.GistHit, 0, len(rows))
	for _, row := range rows {
		if len(row.Embedding) == 0 {
			continue
		}
		sim := Cosine(queryVec, row.Embedding)
		if sim < threshold {
			continue
		}
		hits = append(hits, models.GistHit{
			Gist: models.Gist{
				ID:        row.ID,
				UserID:    row.UserID,
				EventID:   row.EventID,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
			},
			Similarity: sim,
		})
	}

	sortHits(hits)
	if len(hits) > topk {
		hits = hits[:topk]
	}
	return hits, nil
}
