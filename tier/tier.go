// Package tier classifies prose into a conversion tier: how much
// structural scaffolding the document composer wraps around the symbolic
// body. Classification is a pure function of the raw prose and has no
// dependency on the conversion engine, so consumers can pre-select a
// tier before converting or audit classification stability across
// round-trips.
package tier

import (
	"regexp"
	"strings"

	"github.com/teranos/sigil/errors"
)

// Tier is the amount of scaffolding to emit, totally ordered by weight.
type Tier int

const (
	// Minimal emits the symbolic body only.
	Minimal Tier = iota
	// Standard adds the format header, meta block, and evidence block.
	Standard
	// Full adds inferred type, rule, and error blocks as well.
	Full
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case Minimal:
		return "minimal"
	case Standard:
		return "standard"
	case Full:
		return "full"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse returns the tier named by s, case-insensitively.
func Parse(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return Minimal, nil
	case "standard":
		return Standard, nil
	case "full":
		return Full, nil
	}
	return Minimal, errors.NewInvalidRequestError("unknown tier %q (want minimal, standard, or full)", s)
}

// Seven independent vocabulary detectors. Each is a named predicate so
// classification can be unit-tested one detector at a time.
var (
	typeVocab     = regexp.MustCompile(`(?i)\b(type|class|struct|interface|schema|model|entity)\b`)
	ruleVocab     = regexp.MustCompile(`(?i)\b(must|should|always|never|require|ensure|guarantee|constraint|rule)\b`)
	proofVocab    = regexp.MustCompile(`(?i)\b(prove|verify|validate|certify|demonstrate|qed|proven)\b`)
	logicalVocab  = regexp.MustCompile(`(?i)\b(for all|there exists|if and only if|implies|therefore)\b`)
	apiVocab      = regexp.MustCompile(`(?i)\b(api|endpoint|route|controller|handler|service)\b`)
	contractVocab = regexp.MustCompile(`(?i)\b(delta|invariant|precondition|postcondition|requires|ensures)\b`)
	intentVocab   = regexp.MustCompile(`(?i)\b(intent|goal|purpose|objective|fitness|risk|utility)\b`)
)

// HasTypeVocabulary reports whether prose mentions type-like concepts.
func HasTypeVocabulary(prose string) bool { return typeVocab.MatchString(prose) }

// HasRuleVocabulary reports whether prose carries normative language.
func HasRuleVocabulary(prose string) bool { return ruleVocab.MatchString(prose) }

// HasProofVocabulary reports whether prose asks for verification.
func HasProofVocabulary(prose string) bool { return proofVocab.MatchString(prose) }

// HasLogicalVocabulary reports whether prose uses formal connectives.
func HasLogicalVocabulary(prose string) bool { return logicalVocab.MatchString(prose) }

// HasAPIVocabulary reports whether prose describes a service surface.
func HasAPIVocabulary(prose string) bool { return apiVocab.MatchString(prose) }

// HasContractVocabulary reports whether prose states contracts.
func HasContractVocabulary(prose string) bool { return contractVocab.MatchString(prose) }

// HasIntentVocabulary reports whether prose states goals or intents.
func HasIntentVocabulary(prose string) bool { return intentVocab.MatchString(prose) }

// Classify chooses the tier for prose. The policy is evaluated in
// strict priority order:
//
//	proof OR contract OR intent OR (type AND rule)       -> Full
//	type OR rule OR logical OR api OR word count > 20    -> Standard
//	otherwise                                            -> Minimal
func Classify(prose string) Tier {
	hasTypes := HasTypeVocabulary(prose)
	hasRules := HasRuleVocabulary(prose)

	if HasProofVocabulary(prose) || HasContractVocabulary(prose) || HasIntentVocabulary(prose) || (hasTypes && hasRules) {
		return Full
	}

	if hasTypes || hasRules || HasLogicalVocabulary(prose) || HasAPIVocabulary(prose) || len(strings.Fields(prose)) > 20 {
		return Standard
	}

	return Minimal
}
