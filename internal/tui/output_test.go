package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, FormatJSON))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, FormatText))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, ""))
}

func TestTTYOutput_Messages(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := NewTTYOutput(&buf)

	out.Success("keys written")
	out.Warning("overwriting")
	out.Info("reading stdin")
	out.Value("4PaL_sNhIW7AL8FXNmQ6cEcdliYLD-byc6kJu4ttvYE")

	text := buf.String()
	assert.Contains(t, text, "✓ keys written")
	assert.Contains(t, text, "⚠ overwriting")
	assert.Contains(t, text, "ℹ reading stdin")
	assert.Contains(t, text, "\n4PaL_sNhIW7AL8FXNmQ6cEcdliYLD-byc6kJu4ttvYE\n")
}

func TestTTYOutput_Error(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		NewTTYOutput(&buf).Error(errors.ErrIO)
		assert.Contains(t, buf.String(), "✗ i/o failure")
		assert.NotContains(t, buf.String(), "Try:")
	})

	t.Run("actionable error", func(t *testing.T) {
		var buf bytes.Buffer
		NewTTYOutput(&buf).Error(NewActionableError("key file already exists", "Re-run with --force"))
		assert.Contains(t, buf.String(), "✗ key file already exists")
		assert.Contains(t, buf.String(), "▸ Try: Re-run with --force")
	})
}

func TestTTYOutput_Result(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewTTYOutput(&buf).Result(Result{
		Title: "generated keys",
		Fields: []Field{
			{Label: "format", Value: "ed25519"},
			{Label: "secret key", Value: "./ed25519.sk"},
		},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Generated Keys")
	assert.Equal(t, "  format:      ed25519", lines[1])
	assert.Equal(t, "  secret key:  ./ed25519.sk", lines[2])
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Success("done")
	out.Value("sig")
	out.Result(Result{Title: "verification", Fields: []Field{{Label: "valid", Value: "true"}}})

	dec := json.NewDecoder(&buf)

	var msg map[string]string
	require.NoError(t, dec.Decode(&msg))
	assert.Equal(t, map[string]string{"type": "success", "message": "done"}, msg)

	require.NoError(t, dec.Decode(&msg))
	assert.Equal(t, "value", msg["type"])
	assert.Equal(t, "sig", msg["message"])

	var res struct {
		Type   string            `json:"type"`
		Title  string            `json:"title"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, dec.Decode(&res))
	assert.Equal(t, "result", res.Type)
	assert.Equal(t, "true", res.Fields["valid"])
}

func TestJSONOutput_Error(t *testing.T) {
	var buf bytes.Buffer
	NewJSONOutput(&buf).Error(FromError(fmt.Errorf("loading key: %w", errors.ErrKeyLength)))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["type"])
	assert.Equal(t, errors.UserMessage(errors.ErrKeyLength), got["message"])
	assert.NotEmpty(t, got["suggestion"])
	assert.Equal(t, "loading key: invalid key length", got["context"])
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Generated Keys", Title("generated keys"))
	assert.Equal(t, "Signature", Title("signature"))
}

func TestHasColorSupport(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")

	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, HasColorSupport())
	})

	t.Run("dumb terminal", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, HasColorSupport())
	})
}
