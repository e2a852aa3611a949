package retrieval

import (
	"context"
	"strings"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// searchTopK is how many gists the event stage pulls before the token budget
// trims them down.
const searchTopK = 60

// packLatestChat builds the event search query from the newest tail message
// contents.
func packLatestChat(tail []blob.Message, chatNum int) string {
	if len(tail) > chatNum {
		tail = tail[len(tail)-chatNum:]
	}
	parts := make([]string, 0, len(tail))
	for _, m := range tail {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, "\n")
}

// fetchGists retrieves the gists for the event section: similarity search
// over the tail when embeddings are on, recency otherwise, truncated to the
// token budget the profile section left over. Failures degrade to an empty
// section.
func (a *Assembler) fetchGists(ctx context.Context, userID string, tail []blob.Message, opts models.ContextOptions, budget int) []models.Gist {
	if budget <= 0 {
		return nil
	}

	gists := a.searchOrRecent(ctx, userID, tail, opts)
	kept, used := truncateGists(gists, budget)

	if opts.FillWindowWithEvents && used < budget {
		kept = a.fillWithRecent(ctx, userID, kept, opts, budget-used)
	}
	return kept
}

func (a *Assembler) searchOrRecent(ctx context.Context, userID string, tail []blob.Message, opts models.ContextOptions) []models.Gist {
	if a.cfg.EnableEventEmbedding && len(tail) > 0 {
		query := packLatestChat(tail, 3)
		hits, err := a.searchGists(ctx, userID, query, opts)
		if err == nil {
			gists := make([]models.Gist, 0, len(hits))
			for _, h := range hits {
				gists = append(gists, h.Gist)
			}
			return gists
		}
		a.logger.Warn("Event search failed, falling back to recent gists",
			"user_id", userID,
			"error", err)
	}

	gists, err := a.events.RecentGists(ctx, userID, searchTopK, opts.TimeRangeInDays)
	if err != nil {
		a.logger.Warn("Recent gist lookup failed, dropping event section",
			"user_id", userID,
			"error", err)
		return nil
	}
	return gists
}

func (a *Assembler) searchGists(ctx context.Context, userID, query string, opts models.ContextOptions) ([]models.GistHit, error) {
	vecs, err := a.llm.Embed(ctx, llm.EmbedPhaseQuery, []string{query})
	if err != nil {
		return nil, err
	}
	return a.events.SearchGists(ctx, userID, vecs[0], searchTopK, opts.EventSimilarityThreshold, opts.TimeRangeInDays)
}

// truncateGists keeps the longest prefix whose rendered contents stay inside
// the budget, and reports the tokens it used.
func truncateGists(gists []models.Gist, budget int) ([]models.Gist, int) {
	used := 0
	for i, g := range gists {
		cost := blob.CountTokens(g.Content)
		if used+cost > budget {
			return gists[:i], used
		}
		used += cost
	}
	return gists, used
}

// fillWithRecent tops the event section up with recency-ordered gists that
// the similarity search did not surface.
func (a *Assembler) fillWithRecent(ctx context.Context, userID string, kept []models.Gist, opts models.ContextOptions, residual int) []models.Gist {
	recent, err := a.events.RecentGists(ctx, userID, searchTopK, opts.TimeRangeInDays)
	if err != nil {
		a.logger.Warn("Gap-fill lookup failed, keeping search results only",
			"user_id", userID,
			"error", err)
		return kept
	}
	seen := make(map[string]struct{}, len(kept))
	for _, g := range kept {
		seen[g.ID] = struct{}{}
	}
	for _, g := range recent {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		cost := blob.CountTokens(g.Content)
		if cost > residual {
			break
		}
		kept = append(kept, g)
		residual -= cost
	}
	return kept
}
