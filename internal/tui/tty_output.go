package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TTYOutput writes styled, human-oriented output.
type TTYOutput struct {
	w io.Writer
	p palette
}

// NewTTYOutput returns a TTYOutput writing to w. Color follows CheckNoColor.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()
	return &TTYOutput{w: w, p: newPalette()}
}

func (o *TTYOutput) println(s string) {
	_, _ = fmt.Fprintln(o.w, s)
}

// Success prints msg with a check mark.
func (o *TTYOutput) Success(msg string) { o.println(o.p.success.render(msg)) }

// Warning prints msg with a warning sign.
func (o *TTYOutput) Warning(msg string) { o.println(o.p.warning.render(msg)) }

// Info prints msg with an info sign.
func (o *TTYOutput) Info(msg string) { o.println(o.p.info.render(msg)) }

// Error prints err with a cross. The suggestion of an ActionableError
// follows on its own line.
func (o *TTYOutput) Error(err error) {
	o.println(o.p.failure.render(err.Error()))

	var ae *ActionableError
	if errors.As(err, &ae) && ae.Suggestion != "" {
		o.println(o.p.hint.Render("  ▸ Try: " + ae.Suggestion))
	}
}

// Value prints v unstyled so it can be copied or piped.
func (o *TTYOutput) Value(v string) { o.println(v) }

// Result prints a title-cased heading and the fields as aligned rows.
func (o *TTYOutput) Result(r Result) {
	if r.Title != "" {
		o.println(o.p.heading.Render(Title(r.Title)))
	}

	width := 0
	for _, f := range r.Fields {
		width = max(width, lipgloss.Width(f.Label))
	}
	for _, f := range r.Fields {
		pad := strings.Repeat(" ", width-lipgloss.Width(f.Label))
		_, _ = fmt.Fprintf(o.w, "  %s%s  %s\n", o.p.label.Render(f.Label+":"), pad, f.Value)
	}
}

// JSON writes v as indented JSON.
func (o *TTYOutput) JSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
