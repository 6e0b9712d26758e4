package doc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/tier"
)

// Report is the outcome of structural validation of a composed document.
type Report struct {
	Valid         bool      `json:"valid"`
	FormatVersion string    `json:"format_version,omitempty"`
	Tier          tier.Tier `json:"tier"`
	Problems      []string  `json:"problems,omitempty"`
}

var (
	headerPattern = regexp.MustCompile(`^𝔸(\d+(?:\.\d+){0,2})\.([a-z0-9_.-]+)@(\d{4}-\d{2}-\d{2})`)
	blockPattern  = regexp.MustCompile(`⟦([^:⟧]+)(?::[^⟧]*)?⟧`)

	// Format versions this validator understands.
	supportedFormats = mustConstraint("^5")
)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

var knownBlocks = map[string]bool{
	"Ω": true, // meta
	"Σ": true, // types
	"Γ": true, // rules
	"Λ": true, // functions
	"Χ": true, // errors
	"Ε": true, // evidence
}

// Validate runs structural checks on a composed document: a recognized
// format header with a parseable version, balanced block brackets, known
// block glyphs, and a non-empty body. It never panics, whatever the
// input; every finding lands in Problems.
//
// The reported tier is structural: an errors block means Full, a format
// header without one means Standard, a bare symbolic body is Minimal.
func Validate(document string) Report {
	report := Report{Tier: tier.Minimal}
	trimmed := strings.TrimSpace(document)

	if trimmed == "" {
		report.Problems = append(report.Problems, "document is empty")
		return report
	}

	hasHeader := false
	if m := headerPattern.FindStringSubmatch(trimmed); m != nil {
		hasHeader = true
		report.FormatVersion = m[1]
		if v, err := semver.NewVersion(m[1]); err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("format version %q does not parse: %v", m[1], err))
		} else if !supportedFormats.Check(v) {
			report.Problems = append(report.Problems, fmt.Sprintf("format version %s is not supported (want %s)", v, supportedFormats))
		}
	} else if strings.Contains(trimmed, "𝔸") {
		report.Problems = append(report.Problems, "malformed format header")
	}

	opens := strings.Count(trimmed, "⟦")
	closes := strings.Count(trimmed, "⟧")
	if opens != closes {
		report.Problems = append(report.Problems, fmt.Sprintf("unbalanced block brackets: %d ⟦ vs %d ⟧", opens, closes))
	}

	hasErrorsBlock := false
	for _, m := range blockPattern.FindAllStringSubmatch(trimmed, -1) {
		name := m[1]
		if !knownBlocks[name] {
			report.Problems = append(report.Problems, fmt.Sprintf("unknown block glyph %q", name))
			continue
		}
		if name == "Χ" {
			hasErrorsBlock = true
		}
	}

	switch {
	case hasHeader && hasErrorsBlock:
		report.Tier = tier.Full
	case hasHeader:
		report.Tier = tier.Standard
	}

	report.Valid = len(report.Problems) == 0
	return report
}

// Err returns nil for a valid report, or ErrMalformedDocument carrying
// the findings for callers that want an error value.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	return errors.Wrap(errors.ErrMalformedDocument, strings.Join(r.Problems, "; "))
}
