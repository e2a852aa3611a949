package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// fallbackTopic homes facts whose topic is outside the taxonomy when strict
// mode is off. It exists in the built-in taxonomy for every language.
const fallbackTopic = "interest"

// factList is the wire shape of the fact extraction response.
type factList struct {
	Facts []models.FactCandidate `json:"facts"`
}

// extractFacts runs the fact extraction call and validates the candidates
// against the taxonomy.
func (p *Pipeline) extractFacts(ctx context.Context, conversation string, topics []models.UserProfileTopic, pc *models.ProfileConfig) ([]models.FactCandidate, error) {
	ps := promptsFor(p.cfg.EffectiveLanguage(pc))

	var out factList
	err := p.completeJSON(ctx, llm.CompletionRequest{
		System:    ps.factSystem,
		Prompt:    fmt.Sprintf(ps.factUser, FormatTaxonomy(topics), conversation),
		MaxTokens: factMaxTokens,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to extract facts: %w", err)
	}

	facts := validateFacts(out.Facts, topics, p.cfg.StrictMode(pc), p.cfg.MaxProfileSubtopics)
	if dropped := len(out.Facts) - len(facts); dropped > 0 {
		p.logger.Debug("Dropped fact candidates during validation",
			"returned", len(out.Facts), "kept", len(facts))
	}
	return facts, nil
}

// validateFacts enforces the taxonomy rules on raw candidates, preserving
// order: empty memos are dropped, unknown topics are dropped in strict mode
// and re-homed under the fallback topic otherwise, and the number of distinct
// sub-topics per topic is capped at maxSubtopics.
func validateFacts(cands []models.FactCandidate, topics []models.UserProfileTopic, strict bool, maxSubtopics int) []models.FactCandidate {
	known := make(map[string]bool, len(topics))
	for _, t := range topics {
		known[t.Topic] = true
	}

	subSeen := make(map[string]map[string]struct{})
	out := make([]models.FactCandidate, 0, len(cands))
	for _, c := range cands {
		c.Topic = strings.TrimSpace(c.Topic)
		c.SubTopic = strings.TrimSpace(c.SubTopic)
		c.Memo = strings.TrimSpace(c.Memo)
		if c.Memo == "" || c.Topic == "" || c.SubTopic == "" {
			continue
		}

		if !known[c.Topic] {
			if strict {
				continue
			}
			c.Topic = fallbackTopic
		}

		seen := subSeen[c.Topic]
		if seen == nil {
			seen = make(map[string]struct{})
			subSeen[c.Topic] = seen
		}
		if _, ok := seen[c.SubTopic]; !ok {
			if maxSubtopics > 0 && len(seen) >= maxSubtopics {
				continue
			}
			seen[c.SubTopic] = struct{}{}
		}

		out = append(out, c)
	}
	return out
}

// subTopicIndex maps slot keys to their taxonomy entries so the merge planner
// can look up per-slot update instructions.
func subTopicIndex(topics []models.UserProfileTopic) map[string]models.SubTopic {
	index := make(map[string]models.SubTopic)
	for _, t := range topics {
		for _, sub := range t.SubTopics {
			attr := models.ProfileAttributes{Topic: t.Topic, SubTopic: sub.Name}
			index[attr.SlotKey()] = sub
		}
	}
	return index
}
