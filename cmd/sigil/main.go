package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/sigil/cmd/sigil/commands"
	"github.com/teranos/sigil/config"
	"github.com/teranos/sigil/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sigil",
	Short: "sigil - Bidirectional prose/notation converter",
	Long: `sigil - Convert between English prose and dense symbolic notation.

sigil maps formal prose onto a compact mathematical notation and back,
classifies text into conversion tiers, and composes versioned symbolic
documents.

Available commands:
  convert    - Convert prose to symbolic notation
  expand     - Expand symbolic notation back to prose
  tier       - Classify prose into a conversion tier
  similarity - Compare two texts by token overlap
  lexicon    - Inspect the mapping table
  validate   - Validate a composed symbolic document
  config     - Manage sigil configuration
  mcp        - Serve conversion tools over MCP stdio

Examples:
  sigil convert spec.txt           # Convert a file to notation
  sigil convert - < spec.txt       # Convert stdin
  sigil convert docs/ --watch      # Re-convert files as they change
  sigil expand out.sigil           # Recover prose from notation
  sigil lexicon --category logic   # Show logic mappings`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// MCP serves JSON-RPC on stdout, keep logging off it
		if cmd.Name() == "mcp" {
			return nil
		}

		// Export the configured theme before the encoder reads it
		if cfg, err := config.Load(); err == nil {
			os.Setenv("SIGIL_LOG_THEME", cfg.GetLogTheme())
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.InitializeWithVerbosity(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	// Add commands
	rootCmd.AddCommand(commands.ConvertCmd)
	rootCmd.AddCommand(commands.ExpandCmd)
	rootCmd.AddCommand(commands.TierCmd)
	rootCmd.AddCommand(commands.SimilarityCmd)
	rootCmd.AddCommand(commands.LexiconCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.MCPCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
