// Package sym defines the symbol dictionary for sigil: the bidirectional
// mapping between prose phrases and symbolic notation, and the derived
// lookup indexes the conversion engine matches against.
//
// A Table is immutable once constructed. The builtin table is built once
// on first use; alternate tables (test fixtures, lexicon overlays) are
// distinct instances built through New and never touch the builtin.
package sym

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/logger"
)

// Entry maps one symbol to the prose phrases that stand for it.
type Entry struct {
	Symbol   string   `json:"symbol" yaml:"symbol" toml:"symbol"`
	Patterns []string `json:"patterns" yaml:"patterns" toml:"patterns"`
	Category Category `json:"category" yaml:"category" toml:"category"`
}

// maxPatternLen returns the length of the entry's longest pattern.
func (e Entry) maxPatternLen() int {
	max := 0
	for _, p := range e.Patterns {
		if len(p) > max {
			max = len(p)
		}
	}
	return max
}

// Matcher is one entry compiled for the forward pass: the symbol plus a
// case-insensitive word-boundary regexp per pattern.
type Matcher struct {
	Symbol  string
	Regexes []*regexp.Regexp
}

// Expansion is one entry prepared for the reverse pass: the symbol plus
// the primary prose phrase it expands to.
type Expansion struct {
	Symbol  string
	Primary string
}

// Table holds the entries and every index derived from them. All fields
// are fixed at construction; methods are safe for concurrent use.
type Table struct {
	entries []Entry

	patternToSymbol map[string]string // lowercased pattern -> symbol
	symbolToPrimary map[string]string // symbol -> first pattern of first-declared entry
	matchers        []Matcher         // longest-max-pattern-first
	expansions      []Expansion       // symbol byte length descending
	ambiguous       []string          // symbols declared by more than one entry
	mappingCount    int
}

// New builds a Table from entries, validating the table-authoring
// invariants: every entry has at least one pattern and a known category,
// no two entries declare the same pattern, and every pattern compiles
// into a word-boundary matcher.
//
// A symbol appearing in more than one entry is allowed; its primary
// expansion is taken from the first-declared entry and the symbol is
// reported by Ambiguous and logged as a warning.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries:         entries,
		patternToSymbol: make(map[string]string),
		symbolToPrimary: make(map[string]string),
	}

	seenSymbols := make(map[string]bool)
	for _, e := range entries {
		if len(e.Patterns) == 0 {
			return nil, errors.Wrapf(errors.ErrEmptyPatterns, "symbol %q", e.Symbol)
		}
		if !e.Category.Valid() {
			return nil, errors.Wrapf(errors.ErrUnknownCategory, "symbol %q declares category %q", e.Symbol, e.Category)
		}

		for _, p := range e.Patterns {
			norm := strings.ToLower(p)
			if owner, dup := t.patternToSymbol[norm]; dup {
				return nil, errors.WithHint(
					errors.Wrapf(errors.ErrDuplicatePattern, "pattern %q declared for both %q and %q", p, owner, e.Symbol),
					"a pattern may belong to exactly one symbol; remove it from one entry")
			}
			t.patternToSymbol[norm] = e.Symbol
		}
		t.mappingCount += len(e.Patterns)

		if seenSymbols[e.Symbol] {
			t.ambiguous = append(t.ambiguous, e.Symbol)
		} else {
			seenSymbols[e.Symbol] = true
			// First declaration wins the primary expansion.
			t.symbolToPrimary[e.Symbol] = e.Patterns[0]
		}
	}

	if err := t.compileMatchers(); err != nil {
		return nil, err
	}
	t.buildExpansions()

	for _, s := range t.ambiguous {
		logger.Warnw("Symbol declared by more than one entry; first declaration wins expansion",
			logger.FieldSymbol, s)
	}

	return t, nil
}

// compileMatchers builds the forward-pass index: entries sorted by their
// longest pattern descending, each pattern compiled case-insensitively at
// word boundaries. The ordering is load-bearing: "for all" must be
// consumed before "all" ever gets a chance to match.
func (t *Table) compileMatchers() error {
	ordered := make([]Entry, len(t.entries))
	copy(ordered, t.entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].maxPatternLen() > ordered[j].maxPatternLen()
	})

	t.matchers = make([]Matcher, 0, len(ordered))
	for _, e := range ordered {
		m := Matcher{Symbol: e.Symbol, Regexes: make([]*regexp.Regexp, 0, len(e.Patterns))}
		for _, p := range e.Patterns {
			re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
			if err != nil {
				return errors.Wrapf(errors.ErrBadPattern, "pattern %q for symbol %q: %v", p, e.Symbol, err)
			}
			m.Regexes = append(m.Regexes, re)
		}
		t.matchers = append(t.matchers, m)
	}
	return nil
}

// buildExpansions builds the reverse-pass index: one expansion per
// distinct symbol, sorted by symbol byte length descending so that "∃!"
// is replaced before "∃" can corrupt it.
func (t *Table) buildExpansions() {
	t.expansions = make([]Expansion, 0, len(t.symbolToPrimary))
	seen := make(map[string]bool)
	for _, e := range t.entries {
		if seen[e.Symbol] {
			continue
		}
		seen[e.Symbol] = true
		t.expansions = append(t.expansions, Expansion{Symbol: e.Symbol, Primary: t.symbolToPrimary[e.Symbol]})
	}
	sort.SliceStable(t.expansions, func(i, j int) bool {
		return len(t.expansions[i].Symbol) > len(t.expansions[j].Symbol)
	})
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the process-wide table built from Builtin. The build
// happens once; a failure is a table-authoring bug and panics before any
// conversion is served.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := New(Builtin)
		if err != nil {
			panic(fmt.Sprintf("sym: builtin table is invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Matchers returns the forward-pass index, longest-max-pattern-first.
// The returned slice is shared and must not be modified.
func (t *Table) Matchers() []Matcher {
	return t.matchers
}

// Expansions returns the reverse-pass index, symbol length descending.
// The returned slice is shared and must not be modified.
func (t *Table) Expansions() []Expansion {
	return t.expansions
}

// ProseToSymbol looks up the symbol for a prose pattern. The lookup is
// case-insensitive and ignores surrounding whitespace.
func (t *Table) ProseToSymbol(pattern string) (string, bool) {
	s, ok := t.patternToSymbol[strings.ToLower(strings.TrimSpace(pattern))]
	return s, ok
}

// SymbolToProse looks up the primary prose phrase for a symbol.
func (t *Table) SymbolToProse(symbol string) (string, bool) {
	p, ok := t.symbolToPrimary[symbol]
	return p, ok
}

// SymbolsByCategory returns the symbols of every entry in the given
// category, in declaration order.
func (t *Table) SymbolsByCategory(cat Category) []string {
	var symbols []string
	for _, e := range t.entries {
		if e.Category == cat {
			symbols = append(symbols, e.Symbol)
		}
	}
	return symbols
}

// Categories returns the distinct categories used by the table's
// entries, sorted by name.
func (t *Table) Categories() []Category {
	seen := make(map[Category]bool)
	for _, e := range t.entries {
		seen[e.Category] = true
	}
	cats := make([]Category, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// MappingCount returns the total number of registered (symbol, pattern)
// pairs.
func (t *Table) MappingCount() int {
	return t.mappingCount
}

// Entries returns a copy of the table's entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Ambiguous returns the symbols declared by more than one entry, in the
// order their second declaration was seen.
func (t *Table) Ambiguous() []string {
	out := make([]string, len(t.ambiguous))
	copy(out, t.ambiguous)
	return out
}
