package config

import "github.com/mrz1836/textsign/internal/constants"

// DefaultConfig returns a new Config with default values.
// These defaults are the base layer that config files, environment
// variables and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Format:             constants.DefaultFormat,
			KeyDir:             constants.DefaultKeyDir,
			AllowTruncatedKeys: false,
			Parallelism:        constants.DefaultParallelism,
			Input:              constants.StdinSentinel,
		},
	}
}
