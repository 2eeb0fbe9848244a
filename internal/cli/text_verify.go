package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/input"
	"github.com/mrz1836/textsign/internal/signing"
	"github.com/mrz1836/textsign/internal/tui"
)

type textVerifyFlags struct {
	textFlags

	signature string
	strict    bool
}

func addTextVerifyCmd(parent *cobra.Command) {
	flags := &textVerifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify [input]",
		Short: "Verify a signature over an input",
		Long: `Verify a signature over an input and print true or false.

A mismatch is not an error: "false" is printed and the exit code is 0.
Pass --strict to exit with code 1 on a mismatch instead. Malformed
signatures, wrong-length keys and unknown formats exit with code 2.

For ed25519 the default key is the public key file (ed25519.pk).

Examples:
  textsign text verify notes.txt --signature 4PaL_sNhIW7AL8FXNmQ6cEcdliYLD-byc6kJu4ttvYE
  textsign text verify notes.txt --format ed25519 -s <sig> --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTextVerify(cmd.Context(), cmd, cmd.OutOrStdout(), args, flags)
		},
	}

	addSharedTextFlags(cmd, &flags.textFlags)
	cmd.Flags().StringVarP(&flags.signature, "signature", "s", "", "signature to check (URL-safe base64)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with code 1 when the signature does not match")
	_ = cmd.MarkFlagRequired("signature")

	parent.AddCommand(cmd)
}

func runTextVerify(ctx context.Context, cmd *cobra.Command, w io.Writer, args []string, flags *textVerifyFlags) error {
	tc, err := resolveText(ctx, cmd, &flags.textFlags, 0)
	if err != nil {
		return err
	}

	tc.warnTruncation()

	keyPath, err := tc.keyPath(flags.key, true)
	if err != nil {
		return err
	}

	name := tc.inputsOrDefault(args)[0]
	opener := input.NewOpener()
	opener.Stdin = cmd.InOrStdin()
	opener.Hint = cmd.ErrOrStderr()

	rc, err := opener.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	ok, err := tc.service().Verify(ctx, signing.VerifyRequest{
		Name:      input.DisplayName(name),
		Input:     rc,
		KeyPath:   keyPath,
		Format:    tc.format,
		Signature: flags.signature,
	})
	if err != nil {
		return err
	}

	tc.logger.Debug().
		Str("format", tc.format.String()).
		Str("input", input.DisplayName(name)).
		Bool("valid", ok).
		Msg("verification complete")

	out := tui.NewOutput(w, outputFormat(cmd))
	if outputFormat(cmd) == OutputJSON {
		out.Result(tui.Result{Title: "verification", Fields: []tui.Field{
			{Label: "input", Value: input.DisplayName(name)},
			{Label: "format", Value: tc.format.String()},
			{Label: "valid", Value: strconv.FormatBool(ok)},
		}})
	} else {
		out.Value(strconv.FormatBool(ok))
	}

	if !ok && flags.strict {
		return errors.ErrVerificationFailed
	}
	return nil
}
