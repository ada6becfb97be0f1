package cmd

import (
	"github.com/jayeung12/sv-maker/internal/svmaker"
	"github.com/spf13/cobra"
)

// deleteCmd removes a region of the sequence
var deleteCmd = &cobra.Command{
	Use:                        "delete [start] [end]",
	Run:                        svmaker.DeleteCmd,
	Short:                      "Delete the bases between two positions (inclusive)",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"del"},
	Example:                    "  sv-maker delete 10 20 -i input.fa",
	Long: `Delete the bases between a start and an end position, both 1-based
and inclusive. The sequence shrinks by end - start + 1 bases.`,
}

// set flags
func init() {
	RootCmd.AddCommand(deleteCmd)
}
