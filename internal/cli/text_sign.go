package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/textsign/internal/input"
	"github.com/mrz1836/textsign/internal/signing"
	"github.com/mrz1836/textsign/internal/tui"
)

// errStdinRepeated is returned when "-" is named more than once.
var errStdinRepeated = stderrors.New("stdin may be named only once")

type textSignFlags struct {
	textFlags

	parallelism int
}

func addTextSignCmd(parent *cobra.Command) {
	flags := &textSignFlags{}

	cmd := &cobra.Command{
		Use:   "sign [input...]",
		Short: "Sign one or more inputs",
		Long: `Sign each input with the selected format and print its signature.

With one input only the signature is printed. With several, each line holds
the signature followed by the input name. Inputs are signed concurrently,
bounded by --parallelism, and reported in argument order.

Examples:
  textsign text sign notes.txt
  echo -n hello | textsign text sign --key ./blake3.txt
  textsign text sign a.txt b.txt --format ed25519 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTextSign(cmd.Context(), cmd, cmd.OutOrStdout(), args, flags)
		},
	}

	addSharedTextFlags(cmd, &flags.textFlags)
	cmd.Flags().IntVarP(&flags.parallelism, "parallelism", "p", 0, "maximum inputs signed at once")

	parent.AddCommand(cmd)
}

func runTextSign(ctx context.Context, cmd *cobra.Command, w io.Writer, args []string, flags *textSignFlags) error {
	tc, err := resolveText(ctx, cmd, &flags.textFlags, flags.parallelism)
	if err != nil {
		return err
	}

	tc.warnTruncation()

	keyPath, err := tc.keyPath(flags.key, false)
	if err != nil {
		return err
	}

	names := tc.inputsOrDefault(args)
	if err := validateInputs(names); err != nil {
		return err
	}

	opener := input.NewOpener()
	opener.Stdin = cmd.InOrStdin()
	opener.Hint = cmd.ErrOrStderr()

	reqs := make([]signing.SignRequest, 0, len(names))
	closers := make([]io.Closer, 0, len(names))
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()
	for _, name := range names {
		rc, openErr := opener.Open(name)
		if openErr != nil {
			return openErr
		}
		closers = append(closers, rc)

		reqs = append(reqs, signing.SignRequest{
			Name:    input.DisplayName(name),
			Input:   rc,
			KeyPath: keyPath,
			Format:  tc.format,
		})
	}

	results, err := tc.service().SignAll(ctx, reqs, tc.cfg.Parallelism)
	if err != nil {
		return err
	}

	tc.logger.Debug().
		Str("format", tc.format.String()).
		Int("inputs", len(results)).
		Msg("signing complete")

	out := tui.NewOutput(w, outputFormat(cmd))
	for _, r := range results {
		switch {
		case outputFormat(cmd) == OutputJSON:
			out.Result(tui.Result{Title: "signature", Fields: []tui.Field{
				{Label: "input", Value: r.Name},
				{Label: "format", Value: tc.format.String()},
				{Label: "signature", Value: r.Signature},
			}})
		case len(results) == 1:
			out.Value(r.Signature)
		default:
			out.Value(fmt.Sprintf("%s  %s", r.Signature, r.Name))
		}
	}
	return nil
}

// validateInputs checks every input before any is opened, so a typo in the
// last argument does not leave earlier inputs half consumed.
func validateInputs(names []string) error {
	stdin := 0
	for _, name := range names {
		if input.IsStdin(name) {
			stdin++
			if stdin > 1 {
				return wrapInput(errStdinRepeated)
			}
			continue
		}
		if err := input.Validate(name); err != nil {
			return err
		}
	}
	return nil
}
