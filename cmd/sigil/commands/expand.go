package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/sigil/display"
)

// ExpandCmd represents the expand command
var ExpandCmd = &cobra.Command{
	Use:   "expand [FILE|-]",
	Short: "↽ Expand symbolic notation back to prose",
	Long: `↽ expand — Expand symbolic notation back to English prose

Reads symbolic text from a file or stdin ("-") and replaces each known
glyph with its primary prose pattern. Unregistered glyphs pass through
unchanged.

Examples:
  sigil expand out.sigil           # Expand a converted document
  sigil expand - < out.sigil       # Expand stdin`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func runExpand(cmd *cobra.Command, args []string) error {
	engine, _, err := loadEngine()
	if err != nil {
		return err
	}

	symbolic, err := readInput(args[0])
	if err != nil {
		return err
	}

	prose := engine.Expand(symbolic)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(map[string]string{"prose": prose})
	}

	fmt.Println(prose)
	return nil
}
