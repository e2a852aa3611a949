package smartcache

import (
	"math"
	"regexp"
	"strings"
)

// Keyword extraction is deliberately cheap: action words, longer words, and
// proper nouns carry most of the matching signal, and the scoring below is
// tolerant of noise.
var keywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\w+ing\b`),
	regexp.MustCompile(`(?i)\b\w{4,}\b`),
	regexp.MustCompile(`\b[A-Z][a-z]+\b`),
}

var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {}, "and": {}, "or": {},
	"but": {}, "in": {}, "with": {}, "to": {}, "for": {}, "of": {}, "as": {},
	"by": {},
}

// extractKeywords pulls up to max lowercase keywords out of text, dropping
// stop words and anything shorter than three characters. First occurrence
// wins, so order tracks appearance per pattern.
func extractKeywords(text string, max int) []string {
	if text == "" {
		return nil
	}

	var raw []string
	for _, p := range keywordPatterns {
		raw = append(raw, p.FindAllString(text, -1)...)
	}

	seen := make(map[string]struct{}, len(raw))
	keywords := make([]string, 0, len(raw))
	for _, kw := range raw {
		kw = strings.ToLower(kw)
		if len(kw) <= 2 {
			continue
		}
		if _, stop := stopWords[kw]; stop {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}

// dedupe keeps the first occurrence of each keyword.
func dedupe(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// keywordRelevance scores one profile against the message keywords: Jaccard
// similarity over the two keyword sets, boosted when the topic (+0.3) or
// sub-topic (+0.2) is mentioned directly. Scores cap at 1.0.
func keywordRelevance(messageKeywords []string, p *cachedProfile) float64 {
	if len(messageKeywords) == 0 || len(p.keywords) == 0 {
		return 0
	}

	msgSet := make(map[string]struct{}, len(messageKeywords))
	for _, kw := range messageKeywords {
		msgSet[kw] = struct{}{}
	}
	profSet := make(map[string]struct{}, len(p.keywords))
	for _, kw := range p.keywords {
		profSet[kw] = struct{}{}
	}

	intersection := 0
	for kw := range msgSet {
		if _, ok := profSet[kw]; ok {
			intersection++
		}
	}
	union := len(msgSet) + len(profSet) - intersection
	if union == 0 {
		return 0
	}
	score := float64(intersection) / float64(union)

	topic := strings.ToLower(p.topic)
	subTopic := strings.ToLower(p.subTopic)
	for _, kw := range messageKeywords {
		if strings.Contains(topic, kw) {
			score += 0.3
			break
		}
	}
	for _, kw := range messageKeywords {
		if strings.Contains(subTopic, kw) {
			score += 0.2
			break
		}
	}
	return math.Min(score, 1.0)
}
