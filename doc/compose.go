// Package doc wraps engine output in tier-specific document scaffolding:
// the format header, meta, type, rule, function, error, and evidence
// blocks. It also validates composed documents and runs batch and
// watch-mode conversions over prose files.
package doc

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/teranos/sigil/convert"
	"github.com/teranos/sigil/tier"
)

// FormatVersion is the document format emitted in the 𝔸 header.
const FormatVersion = "5.1"

// Options controls one composition.
type Options struct {
	// Tier forces a specific tier; nil auto-classifies the prose.
	Tier *tier.Tier
	// Domain overrides domain inference for header metadata.
	Domain string
}

// TokenStats compares input and output sizes in bytes.
type TokenStats struct {
	Input  int     `json:"input"`
	Output int     `json:"output"`
	Ratio  float64 `json:"ratio"`
}

// Result is one composed document plus the conversion accounting that
// produced it.
type Result struct {
	Output     string     `json:"output"`
	Tier       tier.Tier  `json:"tier"`
	Confidence float64    `json:"confidence"`
	Unmapped   []string   `json:"unmapped"`
	Stats      TokenStats `json:"stats"`
}

// Composer builds documents from one engine.
type Composer struct {
	engine *convert.Engine
	// now is swappable so tests get stable dates.
	now func() time.Time
}

// NewComposer returns a composer over the given engine.
func NewComposer(engine *convert.Engine) *Composer {
	return &Composer{engine: engine, now: time.Now}
}

// Compose converts prose and wraps it in the scaffolding its tier calls
// for. Minimal emits the symbolic body alone; Standard adds the header,
// meta block, and evidence block; Full adds inferred types, rules, and
// errors.
func (c *Composer) Compose(prose string, opts Options) Result {
	t := tier.Classify(prose)
	if opts.Tier != nil {
		t = *opts.Tier
	}

	outcome := c.engine.Forward(prose)

	var output string
	switch t {
	case tier.Standard:
		output = c.composeStandard(prose, outcome, opts)
	case tier.Full:
		output = c.composeFull(prose, outcome, opts)
	default:
		output = outcome.SymbolicText
	}

	return Result{
		Output:     output,
		Tier:       t,
		Confidence: outcome.Confidence,
		Unmapped:   outcome.UnmappedWords,
		Stats:      tokenStats(prose, output),
	}
}

func (c *Composer) domain(prose string, opts Options) string {
	if opts.Domain != "" {
		return opts.Domain
	}
	return InferDomain(prose)
}

func (c *Composer) date() string {
	return c.now().UTC().Format("2006-01-02")
}

func (c *Composer) composeStandard(prose string, outcome convert.Outcome, opts Options) string {
	domain := c.domain(prose, opts)

	return fmt.Sprintf(`𝔸%s.%s@%s
γ≔%s

⟦Ω:Meta⟧{
  domain≜%s
  version≜1.0.0
}

⟦Σ:Types⟧{
  ∅
}

⟦Γ:Rules⟧{
  ∅
}

⟦Λ:Funcs⟧{
  %s
}

⟦Ε⟧⟨δ≜0.70;τ≜◊⁺⟩`,
		FormatVersion, domain, c.date(), domain, domain, outcome.SymbolicText)
}

func (c *Composer) composeFull(prose string, outcome convert.Outcome, opts Options) string {
	domain := c.domain(prose, opts)

	return fmt.Sprintf(`𝔸%s.%s@%s
γ≔%s.definitions
ρ≔⟨%s,types,rules⟩

⟦Ω:Meta⟧{
  domain≜%s
  version≜1.0.0
  ∀D∈Doc:Ambig(D)<0.02
}

⟦Σ:Types⟧{
%s
}

⟦Γ:Rules⟧{
%s
}

⟦Λ:Funcs⟧{
  %s
}

⟦Χ:Errors⟧{
%s
}

⟦Ε⟧⟨δ≜0.82;φ≜100;τ≜◊⁺⁺;⊢valid;∎⟩`,
		FormatVersion, domain, c.date(), domain, domain, domain,
		strings.Join(InferTypes(prose), "\n"),
		strings.Join(InferRules(prose), "\n"),
		outcome.SymbolicText,
		strings.Join(InferErrors(prose), "\n"))
}

func tokenStats(input, output string) TokenStats {
	stats := TokenStats{Input: len(input), Output: len(output)}
	if len(input) > 0 {
		stats.Ratio = math.Round(float64(len(output))/float64(len(input))*100) / 100
	}
	return stats
}
