package commands

import (
	"github.com/spf13/cobra"

	sigilmcp "github.com/teranos/sigil/mcp"
)

// MCPCmd represents the mcp command
var MCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve conversion tools over MCP stdio",
	Long: `mcp — Serve conversion tools over the Model Context Protocol

Starts an MCP server on stdio exposing sigil_convert, sigil_expand,
sigil_tier, sigil_similarity, and sigil_lexicon. Intended to be
launched by an MCP client, not interactively.

Example client registration:
  {"command": "sigil", "args": ["mcp"]}`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	engine, _, err := loadEngine()
	if err != nil {
		return err
	}

	return sigilmcp.NewServer(engine).Serve()
}
