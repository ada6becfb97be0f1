// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// DefaultWrap is the FASTA body line width used when none is configured.
const DefaultWrap = 70

// Config is the root-level settings struct and is a mix of settings
// available in .sv-maker.yaml and those available from the command line
type Config struct {
	// the input FASTA path; "-" reads stdin
	In string `mapstructure:"in"`

	// the output FASTA path; empty writes to stdout
	Out string `mapstructure:"out"`

	// the line width for the sequence body of the output
	Wrap int `mapstructure:"wrap"`
}

// New returns a new Config struct populated by Viper settings (either from
// the local .sv-maker.yaml) and/or command line arguments
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}

	return c
}

// WrapWidth returns the configured output line width, falling back to
// DefaultWrap for zero or negative settings.
func (c Config) WrapWidth() int {
	if c.Wrap < 1 {
		return DefaultWrap
	}
	return c.Wrap
}
