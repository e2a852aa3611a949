package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

const filterMaxTokens = 512

// filterPrompts holds the localized templates for the profile filter.
type filterPrompts struct {
	system string
	// user: %s = candidate list, %s = recent conversation.
	user string
}

func filterPromptsFor(language string) filterPrompts {
	if language == "zh" {
		return filterPromptsZH
	}
	return filterPromptsEN
}

var filterPromptsEN = filterPrompts{
	system: `You select which memory entries are relevant to an ongoing conversation. You are strict: an entry is relevant only if it would change how a good assistant replies to the latest messages.`,

	user: `Below are memory entries about the user, each tagged with an id:

%s

Recent conversation:

%s

Pick the entries relevant to the conversation. Respond with JSON only, no other text:
{"reason": "<one sentence>", "profiles": ["<id>", ...]}

Return an empty list when nothing is relevant.`,
}

var filterPromptsZH = filterPrompts{
	system: `你负责从用户的记忆条目中挑选与当前对话相关的条目。标准要严格：只有会影响助手如何回应最新消息的条目才算相关。`,

	user: `以下是关于用户的记忆条目，每条带有一个 id：

%s

最近的对话：

%s

请挑选与对话相关的条目。只输出 JSON，不要输出其他内容：
{"reason": "<一句话理由>", "profiles": ["<id>", ...]}

没有相关条目时返回空列表。`,
}

type filterResponse struct {
	Reason   string   `json:"reason"`
	Profiles []string `json:"profiles"`
}

// filterByConversation asks the model which candidates matter to the tail.
// Any failure keeps the unfiltered candidates; relevance filtering is never
// worth losing the whole context over.
func (a *Assembler) filterByConversation(ctx context.Context, candidates []models.ProfileEntry, tail []blob.Message, opts models.ContextOptions) []models.ProfileEntry {
	if len(candidates) == 0 || len(tail) == 0 {
		return candidates
	}
	ps := filterPromptsFor(a.cfg.EffectiveLanguage(nil))

	var out filterResponse
	err := a.llm.CompleteJSON(ctx, llm.CompletionRequest{
		System:    ps.system,
		Prompt:    fmt.Sprintf(ps.user, formatCandidates(candidates), formatTail(tail, opts.MaxPreviousChats)),
		MaxTokens: filterMaxTokens,
	}, &out)
	if err != nil {
		a.logger.Warn("Profile filter failed, keeping unfiltered candidates",
			"error", err,
			"candidates", len(candidates))
		return candidates
	}

	selected := make(map[string]struct{}, len(out.Profiles))
	for _, id := range out.Profiles {
		selected[strings.TrimSpace(id)] = struct{}{}
	}
	filtered := make([]models.ProfileEntry, 0, len(out.Profiles))
	for _, c := range candidates {
		if _, ok := selected[c.ID]; ok {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func formatCandidates(candidates []models.ProfileEntry) string {
	var sb strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&sb, "- [%s] %s: %s\n", c.ID, c.Attributes.SlotKey(), c.Content)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatTail renders the last maxChats tail messages for the filter prompt.
func formatTail(tail []blob.Message, maxChats int) string {
	if maxChats > 0 && len(tail) > maxChats {
		tail = tail[len(tail)-maxChats:]
	}
	var sb strings.Builder
	for _, m := range tail {
		fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
	}
	return strings.TrimRight(sb.String(), "\n")
}
