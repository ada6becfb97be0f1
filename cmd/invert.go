package cmd

import (
	"github.com/jayeung12/sv-maker/internal/svmaker"
	"github.com/spf13/cobra"
)

// invertCmd reverses (or reverse complements) a region of the sequence
var invertCmd = &cobra.Command{
	Use:                        "invert [start] [end]",
	Run:                        svmaker.InvertCmd,
	Short:                      "Reverse the bases between two positions (inclusive)",
	SuggestionsMinimumDistance: 2,
	Example: `  sv-maker invert 25 35 -i input.fa
  sv-maker invert --complement 25 35 -i input.fa`,
	Long: `Reverse the bases between a start and an end position, both 1-based
and inclusive. With --complement each base is also swapped for its
Watson-Crick partner (A-T, C-G, N-N), replacing the region with its
reverse complement. Sequence length is unchanged.`,
}

// set flags
func init() {
	invertCmd.Flags().BoolP("complement", "c", false, "reverse complement the region instead of reversing it")

	RootCmd.AddCommand(invertCmd)
}
