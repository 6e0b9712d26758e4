// Package convert implements the bidirectional mapping engine: greedy
// longest-match substitution from prose into symbols, inverse expansion
// from symbols back into prose, and the token-set similarity estimate
// used to judge round-trip fidelity.
//
// Both directions are total functions over arbitrary text. They never
// fail; unrecognizable input degrades to a zero-confidence outcome or
// passes through unchanged.
package convert

import (
	"regexp"
	"sort"
	"strings"

	"github.com/teranos/sigil/sym"
)

// Outcome is the result of one forward conversion. It is produced once
// and never mutated.
type Outcome struct {
	SymbolicText  string   `json:"symbolic_text"`
	MappedChars   int      `json:"mapped_chars"`
	UnmappedWords []string `json:"unmapped_words"`
	Confidence    float64  `json:"confidence"`
}

// Engine converts against one immutable symbol table. Engines are
// stateless beyond the shared read-only table and safe for concurrent
// use.
type Engine struct {
	table *sym.Table
}

// New returns an engine backed by the given table.
func New(table *sym.Table) *Engine {
	return &Engine{table: table}
}

// Default returns an engine backed by the builtin table.
func Default() *Engine {
	return New(sym.Default())
}

// Table returns the engine's symbol table.
func (e *Engine) Table() *sym.Table {
	return e.table
}

// Structural rewrites applied after table substitution. They run last so
// they can rely on stable symbol output.
var (
	// Operators that absorb surrounding whitespace: "x ≜ y" -> "x≜y".
	operatorSpacing []*regexp.Regexp

	// Assignment idioms rewritten into the canonical X≜Y form.
	constAssign  = regexp.MustCompile(`(?i)const\s+(\w+)\s*=\s*(\S+)`)
	defineAssign = regexp.MustCompile(`(?i)define\s+(\w+)\s+as\s+(\S+)`)
	letAssign    = regexp.MustCompile(`(?i)let\s+(\w+)\s*=\s*(\S+)`)

	// Alphabetic tokens of length >= 3 are unmapped-word candidates.
	wordToken = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// tightOperators is the fixed operator set whose spacing collapses.
var tightOperators = []string{"≜", "≔", "⇒", "∈", "→", "⇔", "∧", "∨"}

// stopwords are short function words excluded from the unmapped list.
var stopwords = map[string]bool{
	"the": true, "with": true, "that": true, "this": true, "from": true,
	"into": true, "when": true, "where": true, "which": true, "what": true,
}

func init() {
	operatorSpacing = make([]*regexp.Regexp, len(tightOperators))
	for i, op := range tightOperators {
		operatorSpacing[i] = regexp.MustCompile(`\s*` + regexp.QuoteMeta(op) + `\s*`)
	}
}

// Forward converts prose to symbolic text. The table substitution is a
// fold over the longest-pattern-first matcher index, threading the
// working text through each step: a longer pattern consumed early
// removes its span from candidacy for any shorter pattern inside it, so
// no span is counted twice.
func (e *Engine) Forward(text string) Outcome {
	working := text
	mapped := 0

	for _, m := range e.table.Matchers() {
		for _, re := range m.Regexes {
			for _, match := range re.FindAllString(working, -1) {
				mapped += len(match)
			}
			working = re.ReplaceAllLiteralString(working, m.Symbol)
		}
	}

	working = collapseOperatorSpacing(working)
	working = rewriteAssignments(working)
	working = strings.TrimSpace(working)

	return Outcome{
		SymbolicText:  working,
		MappedChars:   mapped,
		UnmappedWords: findUnmappedWords(working),
		Confidence:    confidence(len(text), mapped),
	}
}

// confidence is the mapped fraction of the input, clamped to [0, 1].
// Empty input is vacuously fully mapped. The clamp is load-bearing: a
// span can be re-counted when a rewrite re-exposes text to a later
// matcher, pushing the raw ratio past 1.
func confidence(inputLen, mappedChars int) float64 {
	if inputLen == 0 {
		return 1.0
	}
	c := float64(mappedChars) / float64(inputLen)
	if c > 1.0 {
		return 1.0
	}
	return c
}

func collapseOperatorSpacing(text string) string {
	for i, re := range operatorSpacing {
		text = re.ReplaceAllLiteralString(text, tightOperators[i])
	}
	return text
}

func rewriteAssignments(text string) string {
	text = constAssign.ReplaceAllString(text, "$1≜$2")
	text = defineAssign.ReplaceAllString(text, "$1≜$2")
	text = letAssign.ReplaceAllString(text, "$1≜$2")
	return text
}

// findUnmappedWords collects the alphabetic tokens that survived
// substitution, lowercased, deduplicated, and sorted.
func findUnmappedWords(text string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, w := range wordToken.FindAllString(text, -1) {
		lower := strings.ToLower(w)
		if stopwords[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		words = append(words, lower)
	}
	sort.Strings(words)
	return words
}
