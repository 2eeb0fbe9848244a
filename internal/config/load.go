package config

import (
	"context"
	stderrors "errors"
	"io/fs"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// Load reads the effective configuration. Highest precedence first:
//  1. TEXTSIGN_* environment variables (TEXTSIGN_TEXT_FORMAT, ...)
//  2. Project config (.textsign/config.yaml)
//  3. Global config (~/.textsign/config.yaml)
//  4. Built-in defaults
//
// Missing config files are skipped. Flag overrides go through LoadWithOverrides.
func Load(ctx context.Context) (*Config, error) {
	global, err := GlobalConfigPath()
	if err != nil {
		// Without a home directory only the project file and env remain.
		global = ""
	}

	cfg, err := LoadFromPaths(ctx, ProjectConfigPath(), global)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("text.format", cfg.Text.Format).
		Str("text.key_dir", cfg.Text.KeyDir).
		Bool("text.allow_truncated_keys", cfg.Text.AllowTruncatedKeys).
		Int("text.parallelism", cfg.Text.Parallelism).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadWithOverrides loads configuration and applies non-zero values from
// overrides on top. A false boolean cannot be told apart from unset, so the
// CLI applies changed boolean flags itself.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
		if err := Validate(cfg); err != nil {
			return nil, errors.Wrap(err, "invalid configuration after overrides")
		}
	}

	return cfg, nil
}

// LoadFromPaths loads configuration from explicit files: project merges over
// global. Either may be empty or point at a missing file.
func LoadFromPaths(_ context.Context, project, global string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, path := range []string{global, project} {
		if err := mergeFile(v, path); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(trimStringsHook())); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// mergeFile merges the YAML file at path into v. Empty and missing paths are skipped.
func mergeFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	err := v.MergeInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err == nil || stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Wrapf(err, "failed to read config file %s", path)
}

// setDefaults registers every key so AutomaticEnv can resolve it on Unmarshal.
// Keys must match the mapstructure tags.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("text.format", d.Text.Format)
	v.SetDefault("text.key_dir", d.Text.KeyDir)
	v.SetDefault("text.allow_truncated_keys", d.Text.AllowTruncatedKeys)
	v.SetDefault("text.parallelism", d.Text.Parallelism)
	v.SetDefault("text.input", d.Text.Input)
}

func applyOverrides(cfg, overrides *Config) {
	o := overrides.Text
	if o.Format != "" {
		cfg.Text.Format = o.Format
	}
	if o.KeyDir != "" {
		cfg.Text.KeyDir = o.KeyDir
	}
	if o.Parallelism != 0 {
		cfg.Text.Parallelism = o.Parallelism
	}
	if o.Input != "" {
		cfg.Text.Input = o.Input
	}
	if o.AllowTruncatedKeys {
		cfg.Text.AllowTruncatedKeys = true
	}
}

// trimStringsHook strips surrounding whitespace from string values, which
// tends to sneak in through environment variables.
func trimStringsHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		return strings.TrimSpace(s), nil
	}
}
