// Package logging keeps key material out of textsign's logs.
package logging

import (
	"io"
	"regexp"

	"github.com/rs/zerolog"
)

// Redacted replaces anything that looks like key material.
const Redacted = "[REDACTED]"

// secretPatterns match key material as it tends to appear in log lines.
// Signatures are public and never match.
//
//nolint:gochecknoglobals // compiled once
var secretPatterns = []*regexp.Regexp{
	// secret_key=..., seed: ..., signing-key="..."
	regexp.MustCompile(`(?i)(secret[_-]?key|signing[_-]?key|private[_-]?key|key[_-]?material|seed|secret)\s*[:=]\s*["']?[^\s"']{8,}["']?`),
	// a labelled hex key of 32 or 64 bytes
	regexp.MustCompile(`(?i)\bkey\s*[:=]\s*["']?[0-9a-f]{64}(?:[0-9a-f]{64})?["']?`),
	regexp.MustCompile(`(?i)(password|passphrase|passwd)\s*[:=]\s*["']?[^\s"']{6,}["']?`),
	regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]+PRIVATE KEY-----`),
}

// secretField matches a JSON field whose name marks key material; its
// string value is replaced and the name kept, so log lines stay valid JSON.
//
//nolint:gochecknoglobals // compiled once
var secretField = regexp.MustCompile(`(?i)("[^"]*(?:secret|seed|private_key|signing_key|key_material|password|passphrase)[^"]*"\s*:\s*)"[^"]*"`)

// Contains reports whether s holds anything that looks like key material.
func Contains(s string) bool {
	for _, re := range secretPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Redact replaces every match in s with Redacted.
func Redact(s string) string {
	s = secretField.ReplaceAllString(s, `${1}"`+Redacted+`"`)
	for _, re := range secretPatterns {
		s = re.ReplaceAllString(s, Redacted)
	}
	return s
}

// Hook tags entries whose message looks like key material with
// contains_filtered_data=true. zerolog hooks cannot rewrite the message, so
// redaction itself happens in Writer.
func Hook() zerolog.Hook {
	return zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, msg string) {
		if Contains(msg) {
			e.Bool("contains_filtered_data", true)
		}
	})
}

// Writer redacts everything written through it before passing it on.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write reports len(p) on success even when the redacted output is shorter.
func (fw *Writer) Write(p []byte) (int, error) {
	if _, err := io.WriteString(fw.w, Redact(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close closes the wrapped writer when it is an io.Closer.
func (fw *Writer) Close() error {
	if c, ok := fw.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
