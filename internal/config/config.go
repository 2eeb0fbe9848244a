// Package config provides configuration management for textsign with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (TEXTSIGN_* prefix)
//  3. Project config (.textsign/config.yaml)
//  4. Global config (~/.textsign/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

// Config is the root configuration structure for textsign.
type Config struct {
	// Text contains settings for text signing, verification and key generation.
	Text TextConfig `yaml:"text" json:"text" mapstructure:"text"`
}

// TextConfig contains settings for the text subcommands.
type TextConfig struct {
	// Format is the signing format name ("blake3" or "ed25519").
	// Default: "blake3"
	Format string `yaml:"format" json:"format" mapstructure:"format"`

	// KeyDir is the directory generated keys are written to.
	// Default: "."
	KeyDir string `yaml:"key_dir" json:"key_dir" mapstructure:"key_dir"`

	// AllowTruncatedKeys accepts key files longer than the format requires
	// and uses their leading bytes. Shorter files are always rejected.
	// Default: false
	AllowTruncatedKeys bool `yaml:"allow_truncated_keys" json:"allow_truncated_keys" mapstructure:"allow_truncated_keys"`

	// Parallelism bounds how many inputs are signed concurrently.
	// Default: 4
	Parallelism int `yaml:"parallelism" json:"parallelism" mapstructure:"parallelism"`

	// Input is the default byte source; "-" reads stdin.
	// Default: "-"
	Input string `yaml:"input" json:"input" mapstructure:"input"`
}
