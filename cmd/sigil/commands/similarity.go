package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/sigil/convert"
	"github.com/teranos/sigil/display"
)

// SimilarityCmd represents the similarity command
var SimilarityCmd = &cobra.Command{
	Use:   "similarity FILE1 FILE2",
	Short: "Compare two texts by token overlap",
	Long: `similarity — Compare two texts by token overlap

Computes the Jaccard similarity of the two texts' token sets after
case and punctuation normalization. 1.0 means identical vocabulary,
0.0 means no shared tokens. Useful for checking round-trip drift:

  sigil convert spec.txt > spec.sigil
  sigil expand spec.sigil > spec2.txt
  sigil similarity spec.txt spec2.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runSimilarity,
}

func runSimilarity(cmd *cobra.Command, args []string) error {
	a, err := readInput(args[0])
	if err != nil {
		return err
	}
	b, err := readInput(args[1])
	if err != nil {
		return err
	}

	score := convert.Similarity(a, b)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(map[string]float64{"similarity": score})
	}

	fmt.Printf("%.4f\n", score)
	return nil
}
