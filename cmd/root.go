// Package cmd is for command line interactions with the sv-maker application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "sv-maker",
	Short: `Apply structural variants to a DNA sequence.
Delete, insert, invert, duplicate or copyback regions by 1-based coordinates`,
	Long: `sv-maker rewrites a single-record FASTA sequence with one structural
variant per invocation and appends a provenance clause to the header
describing exactly what was done. Without --out the result goes to stdout,
and --in defaults to stdin, so operations chain through pipes:

  sv-maker delete 5 10 -i input.fa | sv-maker insert 20 GGGG`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringP("in", "i", "-", "input FASTA file ('-' reads stdin)")
	RootCmd.PersistentFlags().StringP("out", "o", "", "output FASTA file (default stdout)")
	RootCmd.PersistentFlags().IntP("wrap", "w", 70, "line width for the output sequence body")

	// Bind the parameters to viper
	viper.BindPFlag("in", RootCmd.PersistentFlags().Lookup("in"))
	viper.BindPFlag("out", RootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("wrap", RootCmd.PersistentFlags().Lookup("wrap"))
}

// initConfig reads in a .sv-maker.yaml settings file if there is one
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	viper.SetConfigName(".sv-maker")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)
	viper.ReadInConfig() // the settings file is optional
}
