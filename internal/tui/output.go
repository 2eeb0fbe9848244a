package tui

import (
	"io"
)

// Output format names accepted by the --output flag.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Field is one labeled value of a result.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result is a titled set of fields, such as a signature or a list of written key files.
type Result struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Output provides methods for structured output to a terminal or a pipe.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error, with its suggestion when it is an ActionableError.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Value prints a bare value, such as a signature, on its own line.
	Value(v string)
	// Result prints a titled set of fields.
	Result(r Result)
	// JSON outputs a value as JSON.
	JSON(v any) error
}

// NewOutput creates the appropriate output based on format.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
