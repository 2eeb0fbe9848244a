package cli

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/textsign/internal/config"
	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/keyfile"
	"github.com/mrz1836/textsign/internal/signing"
)

// textFlags holds the flags shared by the text subcommands. Empty or zero
// values fall back to the loaded configuration.
type textFlags struct {
	format         string
	keyDir         string
	key            string
	allowTruncated bool
}

// AddTextCommand adds the text command and its subcommands to the root command.
func AddTextCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign, verify and generate keys for text",
		Long: `Sign text, verify signatures and generate key files.

Inputs are file paths or "-" for stdin. Without an input argument the
configured text.input (default "-") is used.

Examples:
  textsign text generate --format ed25519
  textsign text sign notes.txt --format ed25519
  textsign text verify notes.txt --format ed25519 --signature <sig>`,
	}

	addTextSignCmd(cmd)
	addTextVerifyCmd(cmd)
	addTextGenerateCmd(cmd)

	root.AddCommand(cmd)
}

// addSharedTextFlags registers the flags common to sign and verify.
func addSharedTextFlags(cmd *cobra.Command, tf *textFlags) {
	cmd.Flags().StringVar(&tf.format, "format", "", "signing format (blake3|ed25519)")
	cmd.Flags().StringVarP(&tf.key, "key", "k", "", "key file (default: the format's key file in --key-dir)")
	cmd.Flags().StringVar(&tf.keyDir, "key-dir", "", "directory holding key files")
	cmd.Flags().BoolVar(&tf.allowTruncated, "allow-truncated-keys", false, "use the leading bytes of key files longer than required")
}

// textContext carries what a text subcommand needs after configuration is resolved.
type textContext struct {
	cfg    config.TextConfig
	format crypto.Format
	logger zerolog.Logger
}

// resolveText loads configuration, applies flag overrides and parses the format.
// A bad --format is reported as an unsupported format rather than a config error.
func resolveText(ctx context.Context, cmd *cobra.Command, tf *textFlags, parallelism int) (*textContext, error) {
	logger := GetLogger()

	if parallelism < 0 || parallelism > constants.MaxParallelism {
		return nil, wrapInput(errors.Wrapf(errors.ErrConfigInvalidText,
			"--parallelism must be between 1 and %d, got %d", constants.MaxParallelism, parallelism))
	}

	overrides := &config.Config{Text: config.TextConfig{
		KeyDir:      tf.keyDir,
		Parallelism: parallelism,
	}}
	if tf.format != "" {
		format, err := crypto.ParseFormat(tf.format)
		if err != nil {
			return nil, err
		}
		overrides.Text.Format = format.String()
	}

	cfg, err := config.LoadWithOverrides(logger.WithContext(ctx), overrides)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("allow-truncated-keys") {
		cfg.Text.AllowTruncatedKeys = tf.allowTruncated
	}

	format, err := crypto.ParseFormat(cfg.Text.Format)
	if err != nil {
		return nil, err
	}

	return &textContext{cfg: cfg.Text, format: format, logger: logger}, nil
}

// service builds the signing service for the resolved configuration.
func (tc *textContext) service() *signing.Service {
	return signing.NewService(
		signing.WithKeyOptions(keyfile.Options{AllowTruncate: tc.cfg.AllowTruncatedKeys}),
		signing.WithLogger(tc.logger),
	)
}

// warnTruncation logs once per command that key files may be cut short.
// Only commands that load keys call it.
func (tc *textContext) warnTruncation() {
	if tc.cfg.AllowTruncatedKeys {
		tc.logger.Warn().Msg("key files longer than required will be truncated")
	}
}

// keyPath returns explicit when set, otherwise the default key file for the
// format in the configured key directory. Verification uses the public key
// file when the format has one.
func (tc *textContext) keyPath(explicit string, forVerify bool) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	layout, err := keyfile.Layout(tc.format)
	if err != nil {
		return "", err
	}
	entry := layout[0]
	if forVerify {
		entry = layout[len(layout)-1]
	}
	return filepath.Join(tc.cfg.KeyDir, entry.Name), nil
}

// inputsOrDefault returns args, or the configured default input when none were given.
func (tc *textContext) inputsOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{tc.cfg.Input}
	}
	return args
}

// outputFormat returns the global --output value for cmd.
func outputFormat(cmd *cobra.Command) string {
	if f := cmd.Flag("output"); f != nil {
		return f.Value.String()
	}
	return OutputText
}

// wrapInput marks err as a usage error for exit code purposes.
func wrapInput(err error) error {
	if err == nil {
		return nil
	}
	return errors.NewExitCode2Error(err)
}
