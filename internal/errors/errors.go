// Package errors provides centralized error handling for textsign.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for the signing core.
// Every failure surfaced by sign, verify, or generate wraps exactly one of these.
var (
	// ErrIO indicates that reading an input stream or key file, or writing
	// a generated key file, failed.
	ErrIO = errors.New("i/o failure")

	// ErrKeyLength indicates that loaded key material does not have the
	// length required by the selected format.
	ErrKeyLength = errors.New("invalid key length")

	// ErrSignatureLength indicates that a decoded signature does not have the
	// fixed output length of the selected format.
	ErrSignatureLength = errors.New("invalid signature length")

	// ErrEncoding indicates that signature text is not valid URL-safe,
	// unpadded base64.
	ErrEncoding = errors.New("invalid signature encoding")

	// ErrCryptoConstruction indicates that key bytes could not be turned into
	// a usable key for the selected algorithm.
	ErrCryptoConstruction = errors.New("invalid key material")

	// ErrUnsupportedFormat indicates an unknown signing format identifier.
	ErrUnsupportedFormat = errors.New("unsupported signing format")
)

// Sentinel errors for the CLI and its collaborators.
var (
	// ErrVerificationFailed indicates that a signature did not match in strict mode.
	// Verification mismatches are not errors for the core; the CLI only raises
	// this when the caller asked for a non-zero exit on mismatch.
	ErrVerificationFailed = errors.New("signature verification failed")

	// ErrInputNotFound indicates the input path is neither "-" nor an existing file.
	ErrInputNotFound = errors.New("input file does not exist")

	// ErrKeyFileExists indicates a generated key would overwrite an existing file.
	ErrKeyFileExists = errors.New("key file already exists")

	// ErrNotADirectory indicates the key output path is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrLockTimeout indicates a file lock could not be acquired within the timeout period.
	ErrLockTimeout = errors.New("lock acquisition timeout")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidText indicates an invalid text signing configuration value.
	ErrConfigInvalidText = errors.New("invalid text configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}

// IsInputError reports whether err was caused by bad caller input rather than
// an environmental failure. The CLI uses this to pick exit code 2.
func IsInputError(err error) bool {
	for _, sentinel := range []error{
		ErrUnsupportedFormat,
		ErrEncoding,
		ErrKeyLength,
		ErrSignatureLength,
		ErrCryptoConstruction,
		ErrInputNotFound,
		ErrInvalidOutputFormat,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
