package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd generates Markdown documentation pages for every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Generate Markdown documentation for sv-maker",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}

		if err := doc.GenMarkdownTree(RootCmd, dir); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
