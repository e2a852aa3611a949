package retrieval

import (
	"fmt"
	"strings"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// defaultAdvisory is the sentence under "# Memory" unless the caller
// customizes it. Integrators parse the surrounding template, so the section
// headers and delimiters below are a stable contract.
const defaultAdvisory = "Unless the user has relevant queries, do not actively mention those memories in the conversation."

const (
	contextDelimiter = "---"
	memoryHeader     = "# Memory"
	profileHeader    = "## User Current Profile:"
	eventsHeader     = "## Past Events:"
	sessionHeader    = "## Current Session Context:"
)

// renderContext produces the final context string, never exceeding maxTokens.
// When the assembled sections overflow, it sheds content from the back:
// trailing gists first, then trailing profile rows, then the oldest tail
// messages. An empty string means nothing fit.
func renderContext(advisory string, profiles []models.ProfileEntry, gists []models.Gist, tail []blob.Message, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	if advisory == "" {
		advisory = defaultAdvisory
	}
	for {
		s := renderOnce(advisory, profiles, gists, tail)
		if blob.CountTokens(s) <= maxTokens {
			return s
		}
		switch {
		case len(gists) > 0:
			gists = gists[:len(gists)-1]
		case len(profiles) > 0:
			profiles = profiles[:len(profiles)-1]
		case len(tail) > 0:
			tail = tail[1:]
		default:
			return ""
		}
	}
}

// renderOnce assembles one candidate rendering. Sections with no content are
// omitted entirely, header included, so downstream parsers never see an empty
// "## Past Events:" block.
func renderOnce(advisory string, profiles []models.ProfileEntry, gists []models.Gist, tail []blob.Message) string {
	var sb strings.Builder
	sb.WriteString(contextDelimiter + "\n")
	sb.WriteString(memoryHeader + "\n")
	sb.WriteString(advisory + "\n")

	if len(profiles) > 0 {
		sb.WriteString(profileHeader + "\n")
		for _, e := range profiles {
			sb.WriteString(profileLine(e) + "\n")
		}
	}

	if len(gists) > 0 {
		sb.WriteString(eventsHeader + "\n")
		for _, g := range gists {
			sb.WriteString(g.Content + "\n")
		}
	}

	if len(tail) > 0 {
		sb.WriteString(sessionHeader + "\n")
		for _, m := range tail {
			fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
		}
	}

	sb.WriteString(contextDelimiter)
	return sb.String()
}
