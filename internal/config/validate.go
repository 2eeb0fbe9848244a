package config

import (
	"strings"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// knownFormats are the accepted text.format values, legacy spellings included.
//
//nolint:gochecknoglobals // static lookup table
var knownFormats = map[string]bool{
	"blake3":  true,
	"blacke3": true,
	"ed25519": true,
	"ed2519":  true,
}

// Validate checks the configuration for invalid values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - text.format must name a supported format
//   - text.parallelism must be between 1 and constants.MaxParallelism
//   - text.key_dir and text.input must not be empty
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	return validateTextConfig(&cfg.Text)
}

func validateTextConfig(cfg *TextConfig) error {
	if !knownFormats[strings.ToLower(strings.TrimSpace(cfg.Format))] {
		return errors.Wrapf(errors.ErrConfigInvalidText,
			"text.format must be blake3 or ed25519, got %q", cfg.Format)
	}

	if cfg.Parallelism < 1 || cfg.Parallelism > constants.MaxParallelism {
		return errors.Wrapf(errors.ErrConfigInvalidText,
			"text.parallelism must be between 1 and %d, got %d", constants.MaxParallelism, cfg.Parallelism)
	}

	if cfg.KeyDir == "" {
		return errors.Wrap(errors.ErrConfigInvalidText, "text.key_dir must not be empty")
	}

	if cfg.Input == "" {
		return errors.Wrap(errors.ErrConfigInvalidText, "text.input must not be empty")
	}

	return nil
}
