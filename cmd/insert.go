package cmd

import (
	"github.com/jayeung12/sv-maker/internal/svmaker"
	"github.com/spf13/cobra"
)

// insertCmd splices new bases into the sequence
var insertCmd = &cobra.Command{
	Use:                        "insert [position] [sequence]",
	Run:                        svmaker.InsertCmd,
	Short:                      "Insert bases immediately before a position",
	SuggestionsMinimumDistance: 2,
	Example:                    "  sv-maker insert 15 ATCG -i input.fa",
	Long: `Insert a run of bases immediately before a 1-based position. The
position may be one past the last base, which appends. Inserted bases must
be drawn from A, T, C, G, N.`,
}

// set flags
func init() {
	RootCmd.AddCommand(insertCmd)
}
