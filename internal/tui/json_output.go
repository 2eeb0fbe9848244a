package tui

import (
	"encoding/json"
	"errors"
	"io"
)

// JSONOutput writes one JSON object per call, for scripts and pipes.
type JSONOutput struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{
		w:       w,
		encoder: json.NewEncoder(w),
	}
}

// jsonMessage is the structured format for Success/Warning/Info/Value messages.
type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// jsonError is the structured format for Error messages.
type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Context    string `json:"context,omitempty"`
}

// jsonResult is the structured format for Result.
type jsonResult struct {
	Type   string            `json:"type"`
	Title  string            `json:"title,omitempty"`
	Fields map[string]string `json:"fields"`
}

func (o *JSONOutput) message(kind, msg string) {
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonMessage{Type: kind, Message: msg})
}

// Success outputs {"type":"success","message":"..."}.
func (o *JSONOutput) Success(msg string) { o.message("success", msg) }

// Warning outputs {"type":"warning","message":"..."}.
func (o *JSONOutput) Warning(msg string) { o.message("warning", msg) }

// Info outputs {"type":"info","message":"..."}.
func (o *JSONOutput) Info(msg string) { o.message("info", msg) }

// Value outputs {"type":"value","message":"..."}.
func (o *JSONOutput) Value(v string) { o.message("value", v) }

// Error outputs an error with its suggestion and context when it is an
// ActionableError, and the wrapped error's message as details.
func (o *JSONOutput) Error(err error) {
	jsonErr := jsonError{
		Type:    "error",
		Message: err.Error(),
	}

	var ae *ActionableError
	if errors.As(err, &ae) {
		jsonErr.Message = ae.Message
		jsonErr.Suggestion = ae.Suggestion
		jsonErr.Context = ae.Context
	}

	if wrapped := errors.Unwrap(err); wrapped != nil {
		jsonErr.Details = wrapped.Error()
	}

	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonErr)
}

// Result outputs the fields as a flat object keyed by label.
func (o *JSONOutput) Result(r Result) {
	fields := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		fields[f.Label] = f.Value
	}
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonResult{Type: "result", Title: r.Title, Fields: fields})
}

// JSON outputs an arbitrary value as JSON.
func (o *JSONOutput) JSON(v any) error {
	return o.encoder.Encode(v)
}
