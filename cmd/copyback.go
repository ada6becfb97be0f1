package cmd

import (
	"github.com/jayeung12/sv-maker/internal/svmaker"
	"github.com/spf13/cobra"
)

// copybackCmd builds a copyback or snapback defective genome
var copybackCmd = &cobra.Command{
	Use:                        "copyback [gend] [breakpoint] [backstart]",
	Run:                        svmaker.CopybackCmd,
	Short:                      "Build a copyback (hairpin) genome from one end of the sequence",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"cb"},
	Example: `  sv-maker copyback 5 50 20 -i input.fa    # keep 1-50, append revcomp of 1-20
  sv-maker copyback 3 50 80 -i input.fa    # same, against the revcomp of the genome
  sv-maker copyback --snapback 5 50 -i input.fa`,
	Long: `Build a copyback genome: keep the sequence up to the breakpoint and
append the reverse complement of its own first backstart bases, so the
product can self-anneal into a hairpin.

gend is 5 or 3. For 3 the whole genome is first replaced by its reverse
complement and both positions count from the 5' start of that flipped
strand. backstart must be less than breakpoint; --snapback omits backstart
and sets it to the breakpoint, making the hairpin arm span the entire
retained head.`,
}

// set flags
func init() {
	copybackCmd.Flags().BoolP("snapback", "s", false, "snapback: the hairpin arm covers the whole retained head")

	RootCmd.AddCommand(copybackCmd)
}
