package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sigil/display"
	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/sym"
)

var lexiconCategory string

// LexiconCmd represents the lexicon command
var LexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Σ Inspect the mapping table",
	Long: `Σ lexicon — Inspect the prose/notation mapping table

Lists every symbol with its category, primary prose pattern, and
alternate patterns. Overlay files from the configuration are merged
into the builtin table before listing.

Examples:
  sigil lexicon                    # Full table
  sigil lexicon --category logic   # One category
  sigil lexicon --json             # Machine-readable dump`,
	RunE: runLexicon,
}

func init() {
	LexiconCmd.Flags().StringVarP(&lexiconCategory, "category", "c", "", "Only show one mapping category")
}

type lexiconEntry struct {
	Symbol   string   `json:"symbol"`
	Category string   `json:"category"`
	Primary  string   `json:"primary"`
	Patterns []string `json:"patterns"`
}

func runLexicon(cmd *cobra.Command, args []string) error {
	engine, _, err := loadEngine()
	if err != nil {
		return err
	}
	table := engine.Table()

	var filter sym.Category
	if lexiconCategory != "" {
		filter = sym.Category(lexiconCategory)
		if !filter.Valid() {
			return errors.Newf("unknown category %q (known: %s)",
				lexiconCategory, strings.Join(categoryNames(), ", "))
		}
	}

	var listing []lexiconEntry
	for _, entry := range table.Entries() {
		if filter != "" && entry.Category != filter {
			continue
		}
		primary, _ := table.SymbolToProse(entry.Symbol)
		listing = append(listing, lexiconEntry{
			Symbol:   entry.Symbol,
			Category: string(entry.Category),
			Primary:  primary,
			Patterns: entry.Patterns,
		})
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(map[string]interface{}{
			"mappings": listing,
			"count":    table.MappingCount(),
		})
	}

	rows := pterm.TableData{{"Symbol", "Category", "Primary", "Alternates"}}
	for _, entry := range listing {
		var alternates []string
		for _, p := range entry.Patterns {
			if p != entry.Primary {
				alternates = append(alternates, p)
			}
		}
		rows = append(rows, []string{
			entry.Symbol,
			entry.Category,
			entry.Primary,
			strings.Join(alternates, ", "),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return errors.Wrap(err, "failed to render lexicon table")
	}

	patternCount := 0
	for _, entry := range listing {
		patternCount += len(entry.Patterns)
	}
	pterm.Printf("\n%s symbols, %s prose patterns\n",
		pterm.LightGreen(len(listing)),
		pterm.LightGreen(patternCount))
	if ambiguous := table.Ambiguous(); len(ambiguous) > 0 && filter == "" {
		pterm.Printf("%s %s\n",
			pterm.Yellow("Ambiguous symbols (first-declared pattern wins):"),
			strings.Join(ambiguous, " "))
	}
	return nil
}

func categoryNames() []string {
	var names []string
	for _, cat := range sym.AllCategories() {
		names = append(names, string(cat))
	}
	return names
}
