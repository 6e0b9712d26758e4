package convert

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// complexDocument exercises the full pattern surface: type definitions,
// quantifiers, conditionals, and constraint prose.
const complexDocument = `
Define a type User with fields id of type natural number and name of type string.
Define a type Session with fields user of type User and token of type string.

For all users u in the system, if u is authenticated then u has valid credentials.
There exists at least one admin user who can modify all resources.

If the user provides valid authentication and the session is not expired,
then allow access to the protected resource.

The function validate takes credentials and returns a boolean result.
If validation succeeds, return true, otherwise return false.

For all requests r, if r contains invalid data then reject r immediately.
The system must ensure that no unauthorized access occurs.

Define the rule: all inputs must be sanitized before processing.
Define the constraint: maximum session duration is 24 hours.
`

// semanticEquivalents groups words that trade places during a round
// trip because expansion picks one primary form per symbol.
var semanticEquivalents = [][]string{
	{"function", "lambda"},
	{"equals", "identical to", "equivalent"},
	{"returns", "to", "yields"},
	{"such that", "where"},
	{"define", "defined as", "let"},
}

func isSemanticMatch(expected, text string) bool {
	if strings.Contains(text, expected) {
		return true
	}
	for _, group := range semanticEquivalents {
		inGroup := false
		for _, w := range group {
			if w == expected {
				inGroup = true
				break
			}
		}
		if !inGroup {
			continue
		}
		for _, equiv := range group {
			if strings.Contains(text, equiv) {
				return true
			}
		}
	}
	return false
}

func roundTrip(engine *Engine, text string) string {
	out := engine.Forward(text)
	return engine.Expand(out.SymbolicText)
}

func TestTenRoundTripsPreserveMeaning(t *testing.T) {
	engine := Default()
	original := strings.TrimSpace(complexDocument)
	current := original

	var history []string
	for round := 1; round <= 10; round++ {
		current = roundTrip(engine, current)
		history = append(history, current)

		sim := Similarity(original, current)
		require.Greater(t, sim, 0.30,
			"round %d lost too much meaning (similarity %.2f)", round, sim)
	}

	// Compression settles after the first trip; the remaining rounds
	// must not wander.
	drift := 1.0 - Similarity(history[0], history[9])
	assert.Less(t, drift, 0.20, "excessive drift across rounds: %.2f", drift)
}

func TestSemanticPreservationPerConcept(t *testing.T) {
	engine := Default()

	cases := []struct {
		original string
		concepts []string
	}{
		{"for all x in S, x equals y", []string{"for all", "in"}},
		{"Define x as 5 and y as 10", []string{"defined as", "and"}},
		{"if x implies y then z", []string{"implies"}},
		{"there exists a user such that admin is true", []string{"exists", "true"}},
		{"not valid or expired", []string{"not", "or"}},
		{"function returns boolean", []string{"function", "boolean"}},
	}

	for _, tc := range cases {
		prose := strings.ToLower(roundTrip(engine, tc.original))
		for _, concept := range tc.concepts {
			assert.True(t, isSemanticMatch(concept, prose),
				"concept %q not preserved for %q, got %q", concept, tc.original, prose)
		}
	}
}

func TestSymbolStability(t *testing.T) {
	engine := Default()

	cases := []struct {
		symbolic string
		words    []string
	}{
		{"∀x∈S", []string{"for all", "in"}},
		{"∃y:P(y)", []string{"exists"}},
		{"A⇒B", []string{"implies"}},
		{"A∧B∨C", []string{"and", "or"}},
		{"x≜5", []string{"defined as"}},
		{"¬valid", []string{"not"}},
		{"⊤∧⊥", []string{"true", "false"}},
	}

	for _, tc := range cases {
		prose := strings.ToLower(engine.Expand(tc.symbolic))
		for _, word := range tc.words {
			assert.Contains(t, prose, word, "expanding %q", tc.symbolic)
		}
	}
}

func TestTenRoundTripsShortPhrases(t *testing.T) {
	engine := Default()

	cases := []string{
		"Define x as 5",
		"for all y in S",
		"if valid then proceed",
		"x equals y and y equals z",
		"there exists a solution",
	}

	for _, original := range cases {
		current := roundTrip(engine, original)
		prev := Similarity(original, current)

		// After the first trip the text is in canonical form; later
		// rounds may not keep eroding it.
		for round := 2; round <= 10; round++ {
			current = roundTrip(engine, current)
			sim := Similarity(original, current)
			require.Less(t, prev-sim, 0.20,
				"round %d for %q dropped too far", round, original)
			prev = sim
		}

		final := Similarity(original, current)
		assert.Greater(t, final, 0.20, "final round for %q lost too much meaning", original)
	}
}

func TestRoundTripConvergence(t *testing.T) {
	engine := Default()

	original := "for all users u, if u is admin then allow access"
	current := original
	prevOutput := ""
	stable := 0

	for round := 1; round <= 10; round++ {
		current = roundTrip(engine, current)
		if Similarity(prevOutput, current) > 0.95 {
			stable++
		}
		prevOutput = current
	}

	assert.GreaterOrEqual(t, stable, 3, "conversion never converged")
}

func TestRoundTripWordPreservation(t *testing.T) {
	engine := Default()

	keyWords := []string{
		"user", "session", "admin", "valid", "access",
		"function", "credentials", "token", "system", "request",
	}

	prose := strings.ToLower(roundTrip(engine, strings.TrimSpace(complexDocument)))

	preserved := 0
	for _, w := range keyWords {
		if strings.Contains(prose, w) {
			preserved++
		}
	}

	ratio := float64(preserved) / float64(len(keyWords))
	assert.GreaterOrEqual(t, ratio, 0.40, "only %d of %d key words survived", preserved, len(keyWords))
}

// lcg is a fixed-seed linear congruential generator so the fuzz corpus
// is reproducible across runs.
type lcg struct {
	state uint64
}

func (r *lcg) next() uint64 {
	r.state = r.state*6364136223846793005 + 1
	return r.state
}

func (r *lcg) choose(items []string) string {
	return items[r.next()%uint64(len(items))]
}

func (r *lcg) chance(p float64) bool {
	return float64(r.next())/float64(math.MaxUint64) < p
}

var (
	fuzzSubjects = []string{
		"user", "admin", "system", "process", "function", "api", "database",
		"service", "client", "server", "x", "y", "result", "input", "output",
	}
	fuzzVerbs = []string{
		"must", "should", "requires", "ensures", "provides", "returns",
		"implies", "contains", "equals", "is", "defined as", "maps to",
		"calls", "validates", "checks",
	}
	fuzzObjects = []string{
		"access", "token", "valid", "true", "false", "null", "empty",
		"unique", "secure", "authenticated", "5", "10", "data", "list",
		"set", "graph",
	}
	fuzzModifiers = []string{
		"for all", "there exists", "if", "then", "else", "and", "or",
		"not", "always", "never",
	}
)

func randomProse(rng *lcg, length int) string {
	var parts []string
	for i := 0; i < length; i++ {
		if rng.chance(0.3) {
			parts = append(parts, rng.choose(fuzzModifiers))
		}
		parts = append(parts, rng.choose(fuzzSubjects))
		parts = append(parts, rng.choose(fuzzVerbs))
		parts = append(parts, rng.choose(fuzzObjects))
		if rng.chance(0.4) {
			parts = append(parts, "and")
		} else if rng.chance(0.1) {
			parts = append(parts, "therefore")
		}
	}
	return strings.Join(parts, " ")
}

func TestFuzzConversionInvariants(t *testing.T) {
	engine := Default()
	rng := &lcg{state: 12345}

	for i := 0; i < 100; i++ {
		length := int(rng.next()%10) + 3
		prose := randomProse(rng, length)

		out := engine.Forward(prose)
		require.NotEmpty(t, out.SymbolicText, "input: %s", prose)
		require.GreaterOrEqual(t, out.Confidence, 0.0, "input: %s", prose)
		require.LessOrEqual(t, out.Confidence, 1.0, "input: %s", prose)

		expanded := engine.Expand(out.SymbolicText)
		require.NotEmpty(t, expanded, "symbolic: %s", out.SymbolicText)

		sim := Similarity(prose, expanded)
		require.GreaterOrEqual(t, sim, 0.0)
		require.LessOrEqual(t, sim, 1.0)
	}
}
