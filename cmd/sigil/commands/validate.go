package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sigil/display"
	"github.com/teranos/sigil/doc"
)

// ValidateCmd represents the validate command
var ValidateCmd = &cobra.Command{
	Use:   "validate [FILE|-]",
	Short: "𝔸 Validate a composed symbolic document",
	Long: `𝔸 validate — Validate a composed symbolic document

Checks document structure: the 𝔸 header, format version compatibility,
known block glyphs, and bracket balance. Exits non-zero when the
document is malformed.

Examples:
  sigil validate out.sigil
  sigil convert spec.txt | sigil validate -`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	document, err := readInput(args[0])
	if err != nil {
		return err
	}

	report := doc.Validate(document)

	if display.ShouldOutputJSON(cmd) {
		if err := display.OutputJSON(report); err != nil {
			return err
		}
		return report.Err()
	}

	if report.Valid {
		pterm.Success.Printf("Valid %s document (format %s, tier %s)\n",
			"𝔸", report.FormatVersion, report.Tier)
		return nil
	}

	for _, problem := range report.Problems {
		pterm.Printf("  %s %s\n", pterm.Red("✗"), problem)
	}
	return report.Err()
}
