package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sigil/convert"
)

func newRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleExpand(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleExpand(context.Background(), newRequest(map[string]any{"text": "∀x∈S"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "for all x in S", resultText(t, res))
}

func TestHandleExpandMissingText(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleExpand(context.Background(), newRequest(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleTier(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleTier(context.Background(), newRequest(map[string]any{"text": "invariant must hold"}))
	require.NoError(t, err)
	assert.Equal(t, "full", resultText(t, res))
}

func TestHandleSimilarity(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleSimilarity(context.Background(), newRequest(map[string]any{
		"a": "for all x in S",
		"b": "for all x in S",
	}))
	require.NoError(t, err)
	assert.Equal(t, "1.0000", resultText(t, res))
}

func TestHandleConvert(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleConvert(context.Background(), newRequest(map[string]any{"text": "x equals y"}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "tier: minimal")
	assert.Contains(t, text, "x ≡ y")
}

func TestHandleConvertForcedTier(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleConvert(context.Background(), newRequest(map[string]any{
		"text": "x equals y",
		"tier": "full",
	}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "tier: full")
	assert.Contains(t, text, "⟦Χ:Errors⟧")
}

func TestHandleConvertBadTier(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleConvert(context.Background(), newRequest(map[string]any{
		"text": "x equals y",
		"tier": "platinum",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleLexicon(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleLexicon(context.Background(), newRequest(nil))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "quantifier:")
	assert.Contains(t, text, "∀")
	assert.Contains(t, text, "mappings registered")
}

func TestHandleLexiconCategoryFilter(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleLexicon(context.Background(), newRequest(map[string]any{"category": "logic"}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "logic:")
	assert.Contains(t, text, "∧")
	assert.NotContains(t, text, "quantifier:")
}

func TestHandleLexiconUnknownCategory(t *testing.T) {
	s := NewServer(convert.Default())

	res, err := s.handleLexicon(context.Background(), newRequest(map[string]any{"category": "bogus"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
