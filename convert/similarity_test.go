package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdenticalTexts(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("for all x in S", "for all x in S"))
}

func TestSimilarityBothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarityOneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "some text"))
	assert.Equal(t, 0.0, Similarity("some text", ""))
}

func TestSimilarityDisjointTexts(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("alpha beta gamma", "delta epsilon"))
}

func TestSimilarityPartialOverlap(t *testing.T) {
	// Jaccard on token sets: |{a,b}| / |{a,b,c,d}| = 0.5.
	assert.InDelta(t, 0.5, Similarity("a b c d", "a b"), 1e-9)
}

func TestSimilarityIgnoresCaseAndPunctuation(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Hello, World!", "hello world"))
	assert.Equal(t, 1.0, Similarity("x equals y;", "X EQUALS Y"))
}

func TestSimilarityTokenPresenceNotFrequency(t *testing.T) {
	// Repetition does not change the token set.
	assert.Equal(t, 1.0, Similarity("go go go", "go"))
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "the user provides valid credentials"
	b := "valid credentials allow the user access"
	assert.Equal(t, Similarity(a, b), Similarity(b, a))
}
