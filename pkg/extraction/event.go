package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// eventResponse is the wire shape of the event synthesis call.
type eventResponse struct {
	Summary string   `json:"summary"`
	Gists   []string `json:"gists"`
}

// synthesizeEvent persists the audit event and its retrieval gists for an
// applied plan. Best-effort by contract: any failure logs and returns nil so
// the batch still reports success with its profile mutations intact.
func (p *Pipeline) synthesizeEvent(ctx context.Context, userID, conversation string, plan *models.MergeAddResult, audit *models.MergePlanAudit, pc *models.ProfileConfig) *string {
	delta := make([]models.AddProfile, 0, len(plan.Add)+len(plan.UpdateDelta))
	delta = append(delta, plan.Add...)
	delta = append(delta, plan.UpdateDelta...)
	if len(delta) == 0 {
		// Nothing extractable changed (e.g. a repair-only plan); an event
		// would have no retrieval value.
		return nil
	}

	ps := promptsFor(p.cfg.EffectiveLanguage(pc))
	theme := ""
	if pc != nil {
		theme = pc.EventThemeRequirement
	}

	var out eventResponse
	err := p.completeJSON(ctx, llm.CompletionRequest{
		System: ps.eventSystem,
		Prompt: fmt.Sprintf(ps.eventUser,
			conversation, FormatProfileDelta(delta), formatThemeRequirement(ps, theme)),
		Model:     p.cfg.SummaryLLMModel,
		MaxTokens: eventMaxTokens,
	}, &out)
	if err != nil {
		p.logger.Warn("Event synthesis failed, keeping profile mutations without an event",
			"user_id", userID, "error", err)
		return nil
	}

	gists := cleanGists(out.Gists)
	if len(gists) == 0 {
		// The model produced no usable gists; fall back to the raw delta so
		// the batch is still retrievable.
		for _, d := range delta {
			gists = append(gists, d.Content)
		}
	}

	data := models.EventData{
		ProfileDelta: delta,
		EventTip:     strings.TrimSpace(out.Summary),
		MergePlan:    audit,
	}

	eventVec, gistVecs := p.embedEvent(ctx, data.EventTip, gists)

	eventID, err := retryOnce(ctx, func() (string, error) {
		return p.events.PutEvent(ctx, userID, data, eventVec)
	})
	if err != nil {
		p.logger.Warn("Failed to persist event", "user_id", userID, "error", err)
		return nil
	}

	for i, g := range gists {
		var vec []float32
		if gistVecs != nil {
			vec = gistVecs[i]
		}
		if _, gerr := p.events.PutGist(ctx, userID, eventID, g, vec); gerr != nil {
			p.logger.Warn("Failed to persist event gist",
				"user_id", userID, "event_id", eventID, "error", gerr)
		}
	}

	return &eventID
}

// embedEvent embeds the event tip and gists in one indexing call. Returns
// nils when embedding is disabled or fails; the event is stored without
// vectors and its gists surface only through recency reads.
func (p *Pipeline) embedEvent(ctx context.Context, tip string, gists []string) ([]float32, [][]float32) {
	texts := make([]string, 0, len(gists)+1)
	texts = append(texts, tip)
	texts = append(texts, gists...)

	vecs, err := retryOnce(ctx, func() ([][]float32, error) {
		return p.llm.Embed(ctx, llm.EmbedPhaseIndex, texts)
	})
	if err != nil {
		if !errors.Is(err, memerr.ErrNotImplemented) {
			p.logger.Warn("Embedding failed, storing event without vectors", "error", err)
		}
		return nil, nil
	}
	return vecs[0], vecs[1:]
}

// cleanGists trims gist strings and drops empties.
func cleanGists(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, g := range raw {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		out = append(out, g)
	}
	return out
}
