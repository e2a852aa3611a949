package extraction

import (
	"strings"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
)

// splitBatches partitions blobs into consecutive groups whose token totals
// stay at or below ceiling, splitting only on blob boundaries. A single blob
// above the ceiling still forms its own group. A non-positive ceiling keeps
// everything in one batch.
func splitBatches(blobs []*blob.Blob, ceiling int) [][]*blob.Blob {
	if len(blobs) == 0 {
		return nil
	}
	if ceiling <= 0 {
		return [][]*blob.Blob{blobs}
	}

	var (
		batches [][]*blob.Blob
		current []*blob.Blob
		used    int
	)
	for _, b := range blobs {
		size := blob.CountBlobTokens(b)
		if len(current) > 0 && used+size > ceiling {
			batches = append(batches, current)
			current = nil
			used = 0
		}
		current = append(current, b)
		used += size
	}
	return append(batches, current)
}

// renderConversation renders a batch for prompting. Chat turns become
// speaker-tagged lines, with the turn timestamp in the configured timezone
// when present; doc and code payloads become fenced blocks.
func renderConversation(blobs []*blob.Blob, loc *time.Location) string {
	var sb strings.Builder
	for _, b := range blobs {
		switch b.Type {
		case blob.TypeChat:
			if b.Chat == nil {
				continue
			}
			for _, m := range b.Chat.Messages {
				writeChatLine(&sb, m, loc)
			}
		case blob.TypeDoc:
			if b.Doc == nil {
				continue
			}
			sb.WriteString("```document")
			if b.Doc.Title != "" {
				sb.WriteString(" ")
				sb.WriteString(b.Doc.Title)
			}
			sb.WriteString("\n")
			sb.WriteString(b.Doc.Content)
			sb.WriteString("\n```\n")
		case blob.TypeCode:
			if b.Code == nil {
				continue
			}
			sb.WriteString("```")
			if b.Code.Language != "" {
				sb.WriteString(b.Code.Language)
			}
			sb.WriteString("\n")
			sb.WriteString(b.Code.Content)
			sb.WriteString("\n```\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// writeChatLine renders one chat turn as
// "[2006-01-02 15:04] role (alias): content\n", dropping the bracketed
// timestamp when the turn carries none and the alias when unset.
func writeChatLine(sb *strings.Builder, m blob.Message, loc *time.Location) {
	if m.CreatedAt != nil {
		sb.WriteString("[")
		sb.WriteString(m.CreatedAt.In(loc).Format("2006-01-02 15:04"))
		sb.WriteString("] ")
	}
	sb.WriteString(m.Role)
	if m.Alias != "" {
		sb.WriteString(" (")
		sb.WriteString(m.Alias)
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(m.Content)
	sb.WriteString("\n")
}
