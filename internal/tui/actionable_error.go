package tui

import (
	stderrors "errors"

	"github.com/mrz1836/textsign/internal/errors"
)

// ActionableError wraps an error with an actionable suggestion.
//
//	err := NewActionableError("key file already exists", "Re-run with --force")
//	output.Error(err)
//	// ✗ key file already exists
//	//   ▸ Try: Re-run with --force
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion should start with a verb.
	Suggestion string

	// Context is appended to the message in parentheses when present.
	Context string

	cause error
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// FromError builds an ActionableError from the user-facing text registered for
// err's sentinel. The original error stays reachable through errors.Is and is
// shown as context.
func FromError(err error) *ActionableError {
	if err == nil {
		return nil
	}
	var ae *ActionableError
	if stderrors.As(err, &ae) {
		return ae
	}

	msg, action := errors.Actionable(err)
	ae = &ActionableError{Message: msg, Suggestion: action, cause: err}
	if msg != err.Error() {
		ae.Context = err.Error()
	}
	return ae
}

// Error returns the message with context if provided, e.g. "file not found (/path/to/file)".
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the error this was built from, if any.
func (e *ActionableError) Unwrap() error {
	return e.cause
}

// WithContext adds optional context to the error and returns it for chaining.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}
