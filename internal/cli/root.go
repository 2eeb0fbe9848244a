// Package cli provides the command-line interface for textsign.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// It is set during PersistentPreRunE and read through GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the logger initialized by the root command.
//
// Calling it before PersistentPreRunE has run returns a zero-value logger
// that discards all output. Safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates the root command for the textsign CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "textsign",
		Short: "Sign and verify text with BLAKE3 or Ed25519",
		Long: `textsign signs and verifies text behind one interface.

Formats:
  • blake3   keyed BLAKE3 hash with a shared 32-byte key
  • ed25519  public-key signatures (32-byte seed, 32-byte public key)

Signatures are printed as URL-safe base64 without padding.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			// Environment variables fill in flags the user did not pass.
			flags.Output = v.GetString("output")
			flags.Verbose = v.GetBool("verbose")
			flags.Quiet = v.GetBool("quiet")

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			logger := InitLogger(flags.Verbose, flags.Quiet).
				With().Str("op_id", uuid.NewString()).Logger()

			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			logger.Debug().Str("command", cmd.CommandPath()).Msg("command started")
			return nil
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTextCommand(cmd)
	AddConfigCommand(cmd)
	AddVersionCommand(cmd, info)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	info = info.withDefaults()
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

func (b BuildInfo) withDefaults() BuildInfo {
	if b.Version == "" {
		b.Version = "dev"
	}
	if b.Commit == "" {
		b.Commit = "none"
	}
	if b.Date == "" {
		b.Date = "unknown"
	}
	return b
}

// Execute runs the root command with the provided context and build info.
// Errors are rendered before being returned so the caller only
// has to pick the exit code.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()
	return executeRoot(ctx, cmd, flags)
}

// executeRoot executes cmd and renders any returned error in the selected
// output format: JSON errors go to stdout next to the results, text errors
// go to stderr.
func executeRoot(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags) error {
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	w := cmd.ErrOrStderr()
	if flags.Output == OutputJSON {
		w = cmd.OutOrStdout()
	}
	tui.NewOutput(w, flags.Output).Error(tui.FromError(err))
	return err
}
