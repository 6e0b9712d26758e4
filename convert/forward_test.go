package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardQuantifierAndMembership(t *testing.T) {
	engine := Default()

	out := engine.Forward("for all x in S")

	// "for all" and "in" are both substituted, and ∈ is a tight
	// operator so its surrounding spaces collapse.
	assert.Equal(t, "∀ x∈S", out.SymbolicText)
	assert.Equal(t, 9, out.MappedChars)
	assert.InDelta(t, 9.0/14.0, out.Confidence, 1e-9)
	assert.Empty(t, out.UnmappedWords)
}

func TestForwardLongestPatternWins(t *testing.T) {
	engine := Default()

	// "exists unique" belongs to ∃! and must be consumed as a unit
	// before the shorter ∃ patterns get a chance at "exists".
	out := engine.Forward("exists unique y")
	assert.Equal(t, "∃! y", out.SymbolicText)

	// Likewise "for all" must not decompose into a stray "all" match.
	out = engine.Forward("for all users")
	assert.Equal(t, "∀ users", out.SymbolicText)
}

func TestForwardOperatorSpacingCollapses(t *testing.T) {
	engine := Default()

	out := engine.Forward("x and y implies z")

	assert.Equal(t, "x∧y⇒z", out.SymbolicText)
	assert.Equal(t, 10, out.MappedChars)
}

func TestForwardAssignmentRewrites(t *testing.T) {
	engine := Default()

	cases := []struct {
		input string
		want  string
	}{
		{"Define x as 5", "x≜5"},
		{"const MAX = 100", "MAX≜100"},
		{"let y = 42", "y≜42"},
	}

	for _, tc := range cases {
		out := engine.Forward(tc.input)
		assert.Equal(t, tc.want, out.SymbolicText, "input: %s", tc.input)
	}

	// Assignment rewrites are structural, not table matches, so they
	// contribute nothing to the mapped character count.
	out := engine.Forward("Define x as 5")
	assert.Zero(t, out.MappedChars)
	assert.Zero(t, out.Confidence)
}

func TestForwardEmptyInput(t *testing.T) {
	engine := Default()

	out := engine.Forward("")

	assert.Equal(t, "", out.SymbolicText)
	assert.Zero(t, out.MappedChars)
	assert.Equal(t, 1.0, out.Confidence)
	assert.Empty(t, out.UnmappedWords)
}

func TestForwardUnmappedWordsSortedAndDeduplicated(t *testing.T) {
	engine := Default()

	out := engine.Forward("the quick zebra chased the quick zebra for all time")

	assert.Equal(t, []string{"chased", "quick", "time", "zebra"}, out.UnmappedWords)
}

func TestForwardStopwordsExcludedFromUnmapped(t *testing.T) {
	engine := Default()

	out := engine.Forward("parse the payload from this client")

	for _, w := range out.UnmappedWords {
		assert.NotEqual(t, "the", w)
		assert.NotEqual(t, "from", w)
		assert.NotEqual(t, "this", w)
	}
	assert.Contains(t, out.UnmappedWords, "parse")
	assert.Contains(t, out.UnmappedWords, "payload")
	assert.Contains(t, out.UnmappedWords, "client")
}

func TestForwardConfidenceBounds(t *testing.T) {
	engine := Default()

	inputs := []string{
		"for all x in S",
		"completely unrecognized gibberish here",
		"and and and and and",
		"∀x∈S",
		"if x implies y and y implies z then x implies z",
	}

	for _, in := range inputs {
		out := engine.Forward(in)
		require.GreaterOrEqual(t, out.Confidence, 0.0, "input: %s", in)
		require.LessOrEqual(t, out.Confidence, 1.0, "input: %s", in)
	}
}

func TestForwardCaseInsensitive(t *testing.T) {
	engine := Default()

	lower := engine.Forward("for all x in S")
	upper := engine.Forward("FOR ALL x in S")

	assert.Equal(t, lower.SymbolicText, upper.SymbolicText)
}

func TestForwardNoMatchesPassesThrough(t *testing.T) {
	engine := Default()

	out := engine.Forward("zebra giraffe elephant")

	assert.Equal(t, "zebra giraffe elephant", out.SymbolicText)
	assert.Zero(t, out.MappedChars)
	assert.Zero(t, out.Confidence)
}
