// Package mcp exposes the conversion engine over the Model Context
// Protocol, so agent tooling can convert prose, expand symbols, and
// inspect the lexicon without shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/teranos/sigil/convert"
	"github.com/teranos/sigil/doc"
	"github.com/teranos/sigil/sym"
	"github.com/teranos/sigil/tier"
	"github.com/teranos/sigil/version"
)

// Server wraps the engine and composer behind MCP stdio transport.
type Server struct {
	engine   *convert.Engine
	composer *doc.Composer
	server   *server.MCPServer
}

// NewServer creates an MCP server over the given engine.
func NewServer(engine *convert.Engine) *Server {
	s := &Server{
		engine:   engine,
		composer: doc.NewComposer(engine),
	}

	s.server = server.NewMCPServer(
		"sigil",
		version.Get().Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	convertTool := mcp.NewTool("sigil_convert",
		mcp.WithDescription("Convert natural-language prose into symbolic notation, wrapped in tier-appropriate document scaffolding"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Prose to convert"),
		),
		mcp.WithString("tier",
			mcp.Description("Force a tier: minimal, standard, or full (default: auto-classify)"),
		),
		mcp.WithString("domain",
			mcp.Description("Domain tag for header metadata (default: inferred from the prose)"),
		),
	)
	s.server.AddTool(convertTool, s.handleConvert)

	expandTool := mcp.NewTool("sigil_expand",
		mcp.WithDescription("Expand symbolic notation back into readable prose"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Symbolic text to expand"),
		),
	)
	s.server.AddTool(expandTool, s.handleExpand)

	tierTool := mcp.NewTool("sigil_tier",
		mcp.WithDescription("Classify prose into a conversion tier (minimal, standard, or full)"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Prose to classify"),
		),
	)
	s.server.AddTool(tierTool, s.handleTier)

	similarityTool := mcp.NewTool("sigil_similarity",
		mcp.WithDescription("Estimate semantic similarity between two texts as a token-set Jaccard index in [0,1]"),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("First text"),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("Second text"),
		),
	)
	s.server.AddTool(similarityTool, s.handleSimilarity)

	lexiconTool := mcp.NewTool("sigil_lexicon",
		mcp.WithDescription("List registered symbols and their primary prose patterns"),
		mcp.WithString("category",
			mcp.Description("Restrict to one category (default: all categories)"),
		),
	)
	s.server.AddTool(lexiconTool, s.handleLexicon)
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var opts doc.Options
	if tierName := request.GetString("tier", ""); tierName != "" {
		t, err := tier.Parse(tierName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts.Tier = &t
	}
	opts.Domain = request.GetString("domain", "")

	result := s.composer.Compose(text, opts)

	summary := fmt.Sprintf("tier: %s\nconfidence: %.2f\n", result.Tier, result.Confidence)
	if len(result.Unmapped) > 0 {
		summary += fmt.Sprintf("unmapped: %s\n", strings.Join(result.Unmapped, ", "))
	}
	return mcp.NewToolResultText(summary + "\n" + result.Output), nil
}

func (s *Server) handleExpand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(s.engine.Expand(text)), nil
}

func (s *Server) handleTier(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(tier.Classify(text).String()), nil
}

func (s *Server) handleSimilarity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := request.RequireString("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := request.RequireString("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%.4f", convert.Similarity(a, b))), nil
}

func (s *Server) handleLexicon(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table := s.engine.Table()

	categories := table.Categories()
	if catName := request.GetString("category", ""); catName != "" {
		cat := sym.Category(strings.ToLower(catName))
		if !cat.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", catName)), nil
		}
		categories = []sym.Category{cat}
	}

	var b strings.Builder
	for _, cat := range categories {
		fmt.Fprintf(&b, "%s:\n", cat)
		for _, symbol := range table.SymbolsByCategory(cat) {
			primary, _ := table.SymbolToProse(symbol)
			fmt.Fprintf(&b, "  %s\t%s\n", symbol, primary)
		}
	}
	fmt.Fprintf(&b, "\n%d mappings registered\n", table.MappingCount())

	return mcp.NewToolResultText(b.String()), nil
}

// Serve runs the server over stdio until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.server)
}
