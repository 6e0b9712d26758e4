package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/sigil/display"
	"github.com/teranos/sigil/tier"
)

// TierCmd represents the tier command
var TierCmd = &cobra.Command{
	Use:   "tier [FILE|-]",
	Short: "Classify prose into a conversion tier",
	Long: `tier — Classify prose into a conversion tier

Examines the vocabulary of the prose and reports which document tier a
conversion would use: minimal (notation only), standard (structured
blocks), or full (proof obligations and error taxonomy).

Examples:
  sigil tier spec.txt
  sigil tier - < spec.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runTier,
}

func runTier(cmd *cobra.Command, args []string) error {
	prose, err := readInput(args[0])
	if err != nil {
		return err
	}

	classified := tier.Classify(prose)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(map[string]string{"tier": classified.String()})
	}

	fmt.Println(classified)
	return nil
}
