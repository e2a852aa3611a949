// Package retrieval assembles the token-bounded memory context injected into
// LLM prompts: a filtered slice of the user profile, a set of relevant event
// gists, and the live conversation tail, rendered into a fixed template.
package retrieval

import (
	"fmt"
	"sort"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// profileLine renders one profile row the way the context template shows it.
func profileLine(e models.ProfileEntry) string {
	return fmt.Sprintf("- %s: %s", e.Attributes.SlotKey(), e.Content)
}

// profileTokens is the token cost of a set of rows as rendered.
func profileTokens(entries []models.ProfileEntry) int {
	total := 0
	for _, e := range entries {
		total += blob.CountTokens(profileLine(e))
	}
	return total
}

// selectCandidates narrows the full profile list to the rows worth offering
// to the filter stage: topic whitelist, preference ordering, per-topic caps,
// then a cumulative token cut at the profile share of the budget. A budget
// of zero or less disables the token cut.
func selectCandidates(entries []models.ProfileEntry, opts models.ContextOptions) []models.ProfileEntry {
	out := filterTopics(entries, opts.OnlyTopics)
	out = orderByPreference(out, opts.PreferTopics)
	out = capSubtopics(out, opts.TopicLimits, opts.MaxSubtopicSize)

	budget := int(float64(opts.MaxTokenSize) * opts.ProfileEventRatio)
	if budget <= 0 {
		return out
	}
	used := 0
	for i, e := range out {
		used += blob.CountTokens(profileLine(e))
		if used > budget {
			return out[:i]
		}
	}
	return out
}

func filterTopics(entries []models.ProfileEntry, only []string) []models.ProfileEntry {
	if len(only) == 0 {
		return entries
	}
	allowed := make(map[string]struct{}, len(only))
	for _, t := range only {
		allowed[t] = struct{}{}
	}
	out := make([]models.ProfileEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := allowed[e.Attributes.Topic]; ok {
			out = append(out, e)
		}
	}
	return out
}

// orderByPreference moves rows of preferred topics to the front, in the
// order the preference list gives them. Rows keep their relative order
// within each group.
func orderByPreference(entries []models.ProfileEntry, prefer []string) []models.ProfileEntry {
	if len(prefer) == 0 {
		return entries
	}
	rank := make(map[string]int, len(prefer))
	for i, t := range prefer {
		rank[t] = i
	}
	out := make([]models.ProfileEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		ri, ok := rank[out[i].Attributes.Topic]
		if !ok {
			ri = len(prefer)
		}
		rj, ok := rank[out[j].Attributes.Topic]
		if !ok {
			rj = len(prefer)
		}
		return ri < rj
	})
	return out
}

// capSubtopics keeps at most limits[topic] rows per topic, falling back to
// the global cap for topics without an explicit limit. Zero caps mean
// unlimited.
func capSubtopics(entries []models.ProfileEntry, limits map[string]int, globalCap int) []models.ProfileEntry {
	if len(limits) == 0 && globalCap <= 0 {
		return entries
	}
	kept := make(map[string]int, len(limits))
	out := make([]models.ProfileEntry, 0, len(entries))
	for _, e := range entries {
		limit := globalCap
		if l, ok := limits[e.Attributes.Topic]; ok {
			limit = l
		}
		if limit > 0 && kept[e.Attributes.Topic] >= limit {
			continue
		}
		kept[e.Attributes.Topic]++
		out = append(out, e)
	}
	return out
}
