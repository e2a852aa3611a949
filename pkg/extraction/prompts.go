// Package extraction implements the flush-time pipeline: a batch of buffered
// blobs becomes candidate profile facts, a merge plan against the existing
// profile, applied mutations, and a best-effort audit event with gists.
package extraction

import (
	"fmt"
	"strings"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// promptSet holds the localized templates for one prompt language.
// Placeholders are documented per template.
type promptSet struct {
	factSystem string
	// factUser: %s = taxonomy block, %s = conversation block.
	factUser string

	mergeSystem string
	// mergeUser: %s = slot key, %s = existing memo, %s = new observation,
	// %s = optional slot instruction block (empty or "\n## Slot Instruction\n...").
	mergeUser string

	confirmSystem string
	// confirmUser: %s = memo about to be deleted, %s = contradicting statement.
	confirmUser string

	eventSystem string
	// eventUser: %s = conversation block, %s = change list,
	// %s = optional theme requirement block.
	eventUser string

	// Localized labels for optional prompt blocks.
	slotInstructionHeader string
	themeRequirementLabel string
}

// promptsFor selects the template set for a resolved language, defaulting to
// English for anything unrecognized.
func promptsFor(language string) promptSet {
	if language == "zh" {
		return promptsZH
	}
	return promptsEN
}

var promptsEN = promptSet{
	factSystem: `You are a memory extraction assistant. You read a conversation and distill durable facts about the user. You only record what the user states or clearly implies about themselves, never what the assistant says.`,

	factUser: `Extract facts about the user from the conversation below.

## Topic Taxonomy
Classify every fact into one of these topics and sub-topics:

%s

## Rules
- Record facts about the user only; skip greetings, small talk, and general knowledge.
- Each memo is one short, self-contained sentence in third person.
- Prefer an existing sub-topic; use a new sub_topic name under a listed topic only when none fits.
- Skip anything already obvious from the taxonomy structure itself.

## Conversation
%s

Reply with a JSON object of the form {"facts": [{"topic": "...", "sub_topic": "...", "memo": "..."}]}. Reply with an empty list when the conversation holds no durable user facts.`,

	mergeSystem: `You maintain a long-term user memory store. Given an existing memo and a new observation for the same slot, you decide how the memo changes.`,

	mergeUser: `The memory slot %s already holds a memo, and a new observation arrived.

## Existing memo
%s

## New observation
%s
%s
## Decision
Pick exactly one action:
- "append" when the observation adds information to the memo; return the merged memo.
- "replace" when the observation supersedes the memo; return the replacement memo.
- "keep" when the observation adds nothing new; memo may be empty.
- "delete" when the observation contradicts the memo and invalidates it entirely.

Reply with a JSON object of the form {"action": "append|replace|keep|delete", "memo": "..."}.`,

	confirmSystem: `You validate memory deletions. A memo is only deleted when new information truly invalidates it, not when it is merely refined or extended.`,

	confirmUser: `A user memo is about to be deleted because a new statement appears to contradict it.

## Memo
%s

## New statement
%s

Confirm the memo is genuinely invalidated rather than refined, narrowed, or extended.

Reply with a JSON object of the form {"confirm": true|false, "reason": "..."}.`,

	eventSystem: `You summarize what changed in a user's long-term memory after one conversation batch.`,

	eventUser: `## Conversation
%s

## Memory changes
%s

Write a one-or-two sentence summary of what this conversation revealed about the user, plus one short standalone gist per memory change. Each gist states a single fact in third person and must be understandable without the conversation.%s

Reply with a JSON object of the form {"summary": "...", "gists": ["...", "..."]}.`,

	slotInstructionHeader: "Slot Instruction",
	themeRequirementLabel: "Theme requirement",
}

var promptsZH = promptSet{
	factSystem: `你是一个记忆提取助手。你阅读一段对话，提炼关于用户的长期事实。只记录用户自己陈述或明确暗示的信息，不记录助手所说的内容。`,

	factUser: `从下面的对话中提取关于用户的事实。

## 主题分类
把每条事实归入以下主题和子主题之一：

%s

## 规则
- 只记录关于用户的事实；跳过寒暄、客套和通用知识。
- 每条 memo 是一句简短、独立完整的第三人称描述。
- 优先使用已有子主题；仅在都不合适时才在已列主题下新建 sub_topic。

## 对话
%s

以 JSON 对象回复，格式为 {"facts": [{"topic": "...", "sub_topic": "...", "memo": "..."}]}。若对话不含长期事实则返回空列表。`,

	mergeSystem: `你负责维护用户的长期记忆。给定同一槽位的已有记录和新观察，你决定记录如何变化。`,

	mergeUser: `记忆槽位 %s 已有一条记录，现在出现了新的观察。

## 已有记录
%s

## 新观察
%s
%s
## 决策
从以下动作中选择一个：
- "append"：新观察补充了信息，返回合并后的记录。
- "replace"：新观察取代旧记录，返回替换后的记录。
- "keep"：新观察没有新信息，memo 可为空。
- "delete"：新观察与旧记录矛盾，旧记录完全失效。

以 JSON 对象回复，格式为 {"action": "append|replace|keep|delete", "memo": "..."}。`,

	confirmSystem: `你负责复核记忆删除。只有当新信息确实推翻了旧记录时才删除，仅是细化或扩展时不删除。`,

	confirmUser: `因为下面的新陈述疑似与一条用户记录矛盾，该记录即将被删除。

## 记录
%s

## 新陈述
%s

请确认该记录是被真正推翻，而不是被细化、收窄或扩展。

以 JSON 对象回复，格式为 {"confirm": true|false, "reason": "..."}。`,

	eventSystem: `你负责总结一批对话处理后用户长期记忆发生了什么变化。`,

	eventUser: `## 对话
%s

## 记忆变化
%s

用一到两句话总结这段对话透露了用户的什么信息，并为每条记忆变化写一条简短独立的 gist。每条 gist 用第三人称陈述一个事实，脱离对话也能看懂。%s

以 JSON 对象回复，格式为 {"summary": "...", "gists": ["...", "..."]}。`,

	slotInstructionHeader: "槽位说明",
	themeRequirementLabel: "主题要求",
}

// FormatTaxonomy renders the topic taxonomy for the fact extraction prompt.
// Sub-topics are indented under their topic; descriptions follow the name
// when present.
func FormatTaxonomy(topics []models.UserProfileTopic) string {
	var sb strings.Builder
	for _, topic := range topics {
		sb.WriteString("- ")
		sb.WriteString(topic.Topic)
		if topic.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(topic.Description)
		}
		sb.WriteString("\n")
		for _, sub := range topic.SubTopics {
			sb.WriteString("  - ")
			sb.WriteString(sub.Name)
			if sub.Description != "" {
				sb.WriteString(": ")
				sb.WriteString(sub.Description)
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatProfileDelta renders planned memory changes for the event prompt, one
// bullet per change in the same topic::sub_topic notation the context
// assembler uses.
func FormatProfileDelta(delta []models.AddProfile) string {
	var sb strings.Builder
	for _, d := range delta {
		sb.WriteString("- ")
		sb.WriteString(d.Attributes.SlotKey())
		sb.WriteString(": ")
		sb.WriteString(d.Content)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatSlotInstruction renders the optional per-slot merge instruction block
// from the taxonomy's update description. Returns "" when the slot has none.
func formatSlotInstruction(ps promptSet, instruction string) string {
	if instruction == "" {
		return ""
	}
	return fmt.Sprintf("\n## %s\n%s\n", ps.slotInstructionHeader, instruction)
}

// formatThemeRequirement renders the optional event theme block appended to
// the event prompt.
func formatThemeRequirement(ps promptSet, requirement string) string {
	if requirement == "" {
		return ""
	}
	return fmt.Sprintf("\n\n%s: %s", ps.themeRequirementLabel, requirement)
}
