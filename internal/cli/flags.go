package cli

import (
	stderrors "errors"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/tui"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitError covers runtime failures and a --strict verification mismatch.
	ExitError = 1
	// ExitInvalidInput covers bad arguments, flags, signatures and keys.
	ExitInvalidInput = 2
)

// Values accepted by --output.
const (
	OutputText = tui.FormatText
	OutputJSON = tui.FormatJSON
)

// GlobalFlags are the persistent flags shared by every command. Each may
// also be set through TEXTSIGN_<NAME>.
type GlobalFlags struct {
	Output  string
	Verbose bool
	Quiet   bool
}

//nolint:gochecknoglobals // flag names bound to viper
var globalFlagNames = []string{"output", "verbose", "quiet"}

// AddGlobalFlags registers the persistent flags on cmd. Flag parse errors
// anywhere in the tree are marked as invalid input.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "only log warnings and errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewExitCode2Error(err)
	})
}

// BindGlobalFlags binds the root's persistent flags to v under their own
// names and enables the TEXTSIGN_ environment lookup.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	for _, name := range globalFlagNames {
		if err := v.BindPFlag(name, pf.Lookup(name)); err != nil {
			return err
		}
	}
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	return nil
}

// ValidOutputFormats lists the accepted --output values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat reports whether format is an accepted --output value.
func IsValidOutputFormat(format string) bool {
	return slices.Contains(ValidOutputFormats(), format)
}

// usageMessages are fragments of the errors cobra builds with fmt.Errorf for
// argument validation, required and grouped flags, and unknown commands.
//
//nolint:gochecknoglobals // static lookup table
var usageMessages = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"flag needs an argument",
	"invalid argument",
	"required flag",
	"if any flags in the group",
	"accepts at most",
	"accepts between",
}

// ExitCodeForError maps err to the process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.IsExitCode2Error(err),
		errors.IsInputError(err),
		stderrors.Is(err, errors.ErrInvalidOutputFormat),
		isUsageError(err):
		return ExitInvalidInput
	default:
		return ExitError
	}
}

func isUsageError(err error) bool {
	msg := err.Error()
	return slices.ContainsFunc(usageMessages, func(m string) bool {
		return strings.Contains(msg, m)
	})
}
