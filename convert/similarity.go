package convert

import (
	"regexp"
	"strings"
)

var comparisonPunct = regexp.MustCompile(`[.,;:!?"']`)

// normalizeForComparison strips the formatting differences that do not
// carry meaning: case, punctuation, and whitespace shape.
func normalizeForComparison(text string) string {
	text = strings.ToLower(text)
	text = normalizeWhitespace(text)
	return strings.TrimSpace(comparisonPunct.ReplaceAllString(text, ""))
}

// Similarity estimates semantic overlap between two texts as the Jaccard
// index of their token sets: token presence, not frequency. The result
// is in [0, 1]; two texts with no tokens at all are vacuously identical.
//
// This is the basis for the round-trip drift guarantees: it is
// deliberately insensitive to word order and repetition, since symbol
// compression reshuffles both.
func Similarity(a, b string) float64 {
	tokensA := tokenSet(normalizeForComparison(a))
	tokensB := tokenSet(normalizeForComparison(b))

	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 1.0
	}

	intersection := 0
	for tok := range tokensA {
		if tokensB[tok] {
			intersection++
		}
	}
	union := len(tokensA) + len(tokensB) - intersection
	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(text) {
		set[tok] = true
	}
	return set
}
