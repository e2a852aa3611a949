package search

import (
	"context"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// QdrantIndex keeps gist vectors in a Qdrant collection. Point ids are the
// gist ids; the payload carries what SearchGists needs to build hits without
// a second lookup against the event store.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
	dim        int
}

// NewQdrantIndex connects to the configured Qdrant deployment.
func NewQdrantIndex(cfg *config.QdrantConfig, dim int) (*QdrantIndex, error) {
	if cfg == nil {
		return nil, memerr.Ef(memerr.ErrConfig, "search.new", "qdrant configuration is required for the qdrant search store")
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, memerr.E(memerr.ErrConfig, "search.new", err)
	}

	return &QdrantIndex{
		client:     client,
		collection: cfg.CollectionPrefix + "_event_gists",
		dim:        dim,
	}, nil
}

// EnsureCollection creates the gist collection if it does not exist yet.
func (idx *QdrantIndex) EnsureCollection(ctx context.Context) error {
	exists, err := idx.client.CollectionExists(ctx, idx.collection)
	if err != nil {
		return memerr.E(memerr.ErrServiceUnavailable, "search.ensure", err)
	}
	if exists {
		return nil
	}

	err = idx.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: idx.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(idx.dim),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return memerr.E(memerr.ErrServiceUnavailable, "search.ensure", err)
	}
	return nil
}

// IndexGist upserts one gist point.
func (idx *QdrantIndex) IndexGist(ctx context.Context, gist models.Gist, embedding []float32) error {
	if len(embedding) != idx.dim {
		return memerr.Ef(memerr.ErrConfig, "search.index",
			"embedding has %d dimensions, collection expects %d", len(embedding), idx.dim)
	}

	_, err := idx.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: idx.collection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(gist.ID),
				Vectors: qdrant.NewVectors(embedding...),
				Payload: qdrant.NewValueMap(map[string]any{
					"user_id":    gist.UserID,
					"event_id":   gist.EventID,
					"content":    gist.Content,
					"created_at": gist.CreatedAt.Unix(),
				}),
			},
		},
		Wait: qdrant.PtrOf(true),
	})
	if err != nil {
		return memerr.E(memerr.ErrServiceUnavailable, "search.index", err)
	}
	return nil
}

// SearchGists runs a filtered vector query against the gist collection.
func (idx *QdrantIndex) SearchGists(ctx context.Context, userID string, queryVec []float32, topk int, threshold float64, windowDays int) ([]models.GistHit, error) {
	if topk <= 0 {
		return nil, nil
	}

	must := []*qdrant.Condition{
		qdrant.NewMatch("user_id", userID),
	}
	if windowDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -windowDays).Unix()
		must = append(must, qdrant.NewRange("created_at", &qdrant.Range{
			Gt: qdrant.PtrOf(float64(cutoff)),
		}))
	}

	points, err := idx.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: idx.collection,
		Query:          qdrant.NewQuery(queryVec...),
		Filter:         &qdrant.Filter{Must: must},
		ScoreThreshold: qdrant.PtrOf(float32(threshold)),
		Limit:          qdrant.PtrOf(uint64(topk)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, memerr.E(memerr.ErrServiceUnavailable, "search.gists", err)
	}

	hits := make([]models.GistHit, 0, len(points))
	for _, p := range points {
		hit, err := hitFromPoint(userID, p)
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}

	// Qdrant returns score order; re-sort to apply the created_at tiebreak.
	sortHits(hits)
	return hits, nil
}

func hitFromPoint(userID string, p *qdrant.ScoredPoint) (models.GistHit, error) {
	id := p.GetId().GetUuid()
	if id == "" {
		return models.GistHit{}, memerr.Ef(memerr.ErrInternal, "search.gists", "point has no uuid id")
	}

	payload := p.GetPayload()
	content := payload["content"].GetStringValue()
	eventID := payload["event_id"].GetStringValue()
	createdAt := time.Unix(payload["created_at"].GetIntegerValue(), 0)

	return models.GistHit{
		Gist: models.Gist{
			ID:        id,
			UserID:    userID,
			EventID:   eventID,
			Content:   content,
			CreatedAt: createdAt,
		},
		Similarity: float64(p.GetScore()),
	}, nil
}
