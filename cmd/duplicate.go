package cmd

import (
	"github.com/jayeung12/sv-maker/internal/svmaker"
	"github.com/spf13/cobra"
)

// duplicateCmd copies a region to another position
var duplicateCmd = &cobra.Command{
	Use:                        "duplicate [start] [end] [position]",
	Run:                        svmaker.DuplicateCmd,
	Short:                      "Copy the bases between two positions to another position",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"dup"},
	Example: `  sv-maker duplicate 10 20 50 -i input.fa
  sv-maker duplicate --tandem 10 20 -i input.fa`,
	Long: `Copy the bases between a start and an end position (1-based,
inclusive) and insert the copy immediately before another position. With
--tandem the position is omitted and the copy lands directly after the
source region, producing a direct tandem repeat.`,
}

// set flags
func init() {
	duplicateCmd.Flags().BoolP("tandem", "t", false, "place the copy directly after the source region")

	RootCmd.AddCommand(duplicateCmd)
}
