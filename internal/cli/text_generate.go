package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/textsign/internal/clock"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/keyfile"
	"github.com/mrz1836/textsign/internal/tui"
)

type textGenerateFlags struct {
	format    string
	outputDir string
	force     bool
}

// generateClock stamps generated bundles. Tests pin it.
//
//nolint:gochecknoglobals // Test injection point
var generateClock clock.Clock = clock.RealClock{}

func addTextGenerateCmd(parent *cobra.Command) {
	flags := &textGenerateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate key files",
		Long: `Generate a key for the selected format and write it to the output directory.

  blake3   writes blake3.txt (32 printable characters, mode 0600)
  ed25519  writes ed25519.sk (seed, mode 0600) and ed25519.pk (public key, mode 0644)

The output directory must already exist. Existing key files are only
replaced after confirmation, or with --force.

Examples:
  textsign text generate
  textsign text generate --format ed25519 --output-dir ./keys
  textsign text generate --format ed25519 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenerate(cmd.Context(), cmd, cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "key format (blake3|ed25519)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "d", "", "directory for the key files (default: text.key_dir)")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing key files without confirmation")

	parent.AddCommand(cmd)
}

func runTextGenerate(ctx context.Context, cmd *cobra.Command, w io.Writer, flags *textGenerateFlags) error {
	tf := &textFlags{format: flags.format, keyDir: flags.outputDir}
	tc, err := resolveText(ctx, cmd, tf, 0)
	if err != nil {
		return err
	}
	dir := tc.cfg.KeyDir
	output := outputFormat(cmd)

	existing, err := keyfile.Existing(dir, tc.format)
	if err != nil {
		return err
	}

	overwrite := flags.force
	if len(existing) > 0 && !overwrite {
		proceed, confirmErr := confirmOverwrite(existing)
		if confirmErr != nil {
			return confirmErr
		}
		if !proceed {
			tui.NewOutput(w, output).Info("Operation canceled.")
			return nil
		}
		overwrite = true
	}

	bundle, err := tc.service().Generate(ctx, tc.format)
	if err != nil {
		return err
	}

	paths, err := keyfile.WriteBundle(ctx, dir, tc.format, bundle, keyfile.WriteOptions{Force: overwrite})
	if err != nil {
		return err
	}

	tc.logger.Info().
		Str("format", tc.format.String()).
		Str("dir", dir).
		Int("files", len(paths)).
		Msg("key files written")

	out := tui.NewOutput(w, output)
	if output != OutputJSON {
		out.Success(fmt.Sprintf("Generated %s key", tc.format))
	}
	out.Result(generateResult(tc.format.String(), paths, generateClock.Now()))
	return nil
}

func generateResult(format string, paths []string, at time.Time) tui.Result {
	fields := []tui.Field{{Label: "format", Value: format}}
	switch len(paths) {
	case 1:
		fields = append(fields, tui.Field{Label: "key", Value: paths[0]})
	case 2:
		fields = append(fields,
			tui.Field{Label: "secret key", Value: paths[0]},
			tui.Field{Label: "public key", Value: paths[1]},
		)
	}
	fields = append(fields, tui.Field{Label: "generated at", Value: at.Format(time.RFC3339)})
	return tui.Result{Title: "key files", Fields: fields}
}

// confirmOverwrite asks before replacing existing key files. Without a
// terminal it fails with ErrNonInteractiveMode.
func confirmOverwrite(existing []string) (bool, error) {
	if !terminalCheck() {
		return false, fmt.Errorf("refusing to overwrite %s: %w", strings.Join(existing, ", "), errors.ErrNonInteractiveMode)
	}

	var confirm bool
	form := createOverwriteConfirmForm(existing, &confirm)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}
	return confirm, nil
}

// formRunner matches huh.Form's Run method.
type formRunner interface {
	Run() error
}

// createOverwriteConfirmForm builds the overwrite confirmation. Tests replace it.
//
//nolint:gochecknoglobals // Test injection point
var createOverwriteConfirmForm = defaultCreateOverwriteConfirmForm

func defaultCreateOverwriteConfirmForm(existing []string, confirm *bool) formRunner {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Overwrite existing key files?").
				Description(strings.Join(existing, "\n")+"\n\nSignatures made with the old keys will no longer verify.").
				Affirmative("Yes, overwrite").
				Negative("No, cancel").
				Value(confirm),
		),
	)
}

// terminalCheck reports whether stdin is a terminal. Tests override it.
//
//nolint:gochecknoglobals // Required for test injection of terminal detection
var terminalCheck = isTerminal

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
