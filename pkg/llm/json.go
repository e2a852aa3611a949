package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseJSONResponse decodes a model response into out, tolerating the common
// decorations models add around JSON: markdown code fences and leading or
// trailing prose. It first tries the text as-is, then a fence-stripped form,
// then the outermost brace-delimited slice.
func parseJSONResponse(text string, out any) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("empty response")
	}

	if err := json.Unmarshal([]byte(trimmed), out); err == nil {
		return nil
	}

	if stripped := stripCodeFence(trimmed); stripped != trimmed {
		if err := json.Unmarshal([]byte(stripped), out); err == nil {
			return nil
		}
		trimmed = stripped
	}

	start := strings.IndexAny(trimmed, "{[")
	if start < 0 {
		return fmt.Errorf("no JSON object in response")
	}
	var end int
	if trimmed[start] == '{' {
		end = strings.LastIndex(trimmed, "}")
	} else {
		end = strings.LastIndex(trimmed, "]")
	}
	if end <= start {
		return fmt.Errorf("unterminated JSON in response")
	}

	if err := json.Unmarshal([]byte(trimmed[start:end+1]), out); err != nil {
		return fmt.Errorf("failed to parse response as JSON: %w", err)
	}
	return nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	rest := strings.TrimPrefix(text, "```")
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		rest = rest[idx+1:]
	}
	if idx := strings.LastIndex(rest, "```"); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}
