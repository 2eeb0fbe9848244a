package errors

import "errors"

// hint is the user-facing text for one sentinel.
type hint struct {
	sentinel error
	message  string
	action   string
}

// hints is searched in order with errors.Is, so an error wrapping several
// sentinels gets the text of the first listed.
//
//nolint:gochecknoglobals // static lookup table
var hints = []hint{
	{ErrKeyLength,
		"The key file does not have the size this format requires.",
		"Generate a fresh key with 'textsign text generate' and point --key at it."},
	{ErrSignatureLength,
		"The signature has the wrong length for this format.",
		"Check that --format matches the format used when signing."},
	{ErrEncoding,
		"The signature is not valid URL-safe base64.",
		"Pass the signature exactly as printed by 'textsign text sign'."},
	{ErrCryptoConstruction,
		"The key file does not contain a usable key.",
		"For ed25519 verification use the .pk file; for signing use the .sk file."},
	{ErrUnsupportedFormat,
		"Unknown signing format.",
		"Use --format blake3 or --format ed25519."},
	{ErrIO,
		"A file or stream could not be read or written.",
		"Check the path and its permissions."},

	{ErrVerificationFailed, "The signature does not match the input.", ""},
	{ErrInputNotFound,
		"The input file does not exist.",
		"Pass an existing file or '-' to read from stdin."},
	{ErrKeyFileExists,
		"A key file already exists in the output directory.",
		"Re-run with --force to overwrite it, or choose another --output-dir."},
	{ErrNotADirectory,
		"The key output path is not a directory.",
		"Create the directory first or pass an existing one."},
	{ErrLockTimeout,
		"Another textsign process is writing keys to this directory.",
		"Wait for it to finish and retry."},
	{ErrConfigInvalidText,
		"The text signing configuration is invalid.",
		"Run 'textsign config show' and fix the reported value."},
	{ErrNonInteractiveMode,
		"Confirmation is required but no terminal is attached.",
		"Re-run with --force."},
	{ErrOperationCanceled, "Operation canceled.", ""},
}

func lookupHint(err error) (hint, bool) {
	for _, h := range hints {
		if errors.Is(err, h.sentinel) {
			return h, true
		}
	}
	return hint{}, false
}

// UserMessage returns the friendly message registered for err, or
// err.Error() when none is.
func UserMessage(err error) string {
	msg, _ := Actionable(err)
	return msg
}

// Actionable returns the friendly message for err and a suggested next step.
// The action is empty when there is nothing obvious for the user to do.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	if h, ok := lookupHint(err); ok {
		return h.message, h.action
	}
	return err.Error(), ""
}
