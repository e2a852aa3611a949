package blob

import (
	"strings"
	"unicode"
)

// Token accounting must be pure and deterministic: the buffer, the summary
// truncation, and the context assembler all rely on the same counts. CJK
// runes approximate one token each; other text averages four characters per
// token, matching the behavior of common BPE vocabularies closely enough for
// budgeting.
const charsPerToken = 4

// CountTokens estimates the token count of s. The empty and all-whitespace
// strings count as zero.
func CountTokens(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var cjk, other int
	for _, r := range s {
		if isCJK(r) {
			cjk++
		} else {
			other++
		}
	}
	tokens := cjk
	if other > 0 {
		tokens += (other + charsPerToken - 1) / charsPerToken
	}
	return tokens
}

// CountBlobTokens counts the blob rendered the same way the extraction
// pipeline will see it.
func CountBlobTokens(b *Blob) int {
	return CountTokens(b.RenderText())
}

// CountBatchTokens sums the rendered token counts of a batch.
func CountBatchTokens(blobs []*Blob) int {
	total := 0
	for _, b := range blobs {
		total += CountBlobTokens(b)
	}
	return total
}

// TruncateTokens cuts s on a rune boundary so that CountTokens of the result
// does not exceed maxTokens. maxTokens <= 0 yields the empty string. The cut
// point is found with CountTokens itself, so the two can never disagree.
func TruncateTokens(s string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	if CountTokens(s) <= maxTokens {
		return s
	}
	runes := []rune(strings.TrimSpace(s))
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if CountTokens(string(runes[:mid])) <= maxTokens {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return strings.TrimRightFunc(string(runes[:lo]), unicode.IsSpace)
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}
