package convert

import (
	"regexp"
	"strings"
)

// Word-boundary repair and whitespace normalization for expanded prose.
var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

	// Joiner prose words that tend to come out of adjacent symbol
	// expansions glued to their neighbors.
	joinerWords = regexp.MustCompile(`([a-zA-Z])( )(for all|exists|implies|and|or|not|if|then|else|in|defined as|identical to|true|false|lambda|function|returns|boolean|integer|string|natural|real|proves|therefore|yields)( )`)

	whitespaceRun    = regexp.MustCompile(`\s+`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,;:!?])`)
	spaceAfterOpen   = regexp.MustCompile(`([(\[{])\s+`)
	spaceBeforeClose = regexp.MustCompile(`\s+([)\]}])`)
)

// Expand converts symbolic text back to prose. Every registered symbol
// is replaced by its primary pattern, longest symbol first so that "∃!"
// expands as a unit before "∃" is considered. Glyphs the table does not
// register pass through unchanged.
//
// Applied to text with no remaining registered symbols, Expand is a
// no-op beyond whitespace normalization.
func (e *Engine) Expand(symbolic string) string {
	result := symbolic

	for _, exp := range e.table.Expansions() {
		// Padding keeps adjacent expansions from fusing into one token.
		result = strings.ReplaceAll(result, exp.Symbol, " "+exp.Primary+" ")
	}

	result = repairWordBoundaries(result)
	return normalizeWhitespace(result)
}

// repairWordBoundaries inserts spaces where expansion concatenated words
// together, e.g. "adminimpliesallow" after camel-cased symbol output.
func repairWordBoundaries(text string) string {
	text = camelBoundary.ReplaceAllString(text, "$1 $2")
	text = joinerWords.ReplaceAllString(text, "$1 $3 ")
	return text
}

// normalizeWhitespace collapses runs to single spaces, strips space
// before punctuation and inside brackets, and trims the ends.
func normalizeWhitespace(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = spaceAfterOpen.ReplaceAllString(text, "$1")
	text = spaceBeforeClose.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
