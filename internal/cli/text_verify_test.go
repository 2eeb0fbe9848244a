package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

// mutatedGolden differs from goldenSignature in its first character.
const mutatedGolden = "5PaL_sNhIW7AL8FXNmQ6cEcdliYLD-byc6kJu4ttvYE"

func TestTextVerify(t *testing.T) {
	zeroKeyDir(t)

	t.Run("matching signature", func(t *testing.T) {
		res := runCLI(t, "", "text", "verify", "hello.txt", "--signature", goldenSignature)
		require.NoError(t, res.err)
		assert.Equal(t, "true\n", res.stdout)
	})

	t.Run("stdin input", func(t *testing.T) {
		res := runCLI(t, "hello", "text", "verify", "-s", goldenSignature)
		require.NoError(t, res.err)
		assert.Equal(t, "true\n", res.stdout)
	})

	t.Run("mismatch prints false and succeeds", func(t *testing.T) {
		res := runCLI(t, "", "text", "verify", "hello.txt", "-s", mutatedGolden)
		require.NoError(t, res.err)
		assert.Equal(t, "false\n", res.stdout)
		assert.Equal(t, ExitSuccess, ExitCodeForError(res.err))
	})

	t.Run("strict mismatch fails", func(t *testing.T) {
		res := runCLI(t, "", "text", "verify", "hello.txt", "-s", mutatedGolden, "--strict")
		require.ErrorIs(t, res.err, errors.ErrVerificationFailed)
		assert.Equal(t, "false\n", res.stdout)
		assert.Equal(t, ExitError, ExitCodeForError(res.err))
		assert.Contains(t, res.stderr, "does not match")
	})

	t.Run("strict match succeeds", func(t *testing.T) {
		res := runCLI(t, "", "text", "verify", "hello.txt", "-s", goldenSignature, "--strict")
		require.NoError(t, res.err)
	})

	t.Run("json output", func(t *testing.T) {
		res := runCLI(t, "", "text", "verify", "hello.txt", "-s", goldenSignature, "-o", "json")
		require.NoError(t, res.err)

		var got struct {
			Type   string            `json:"type"`
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
		assert.Equal(t, "result", got.Type)
		assert.Equal(t, "true", got.Fields["valid"])
		assert.Equal(t, "hello.txt", got.Fields["input"])
	})
}

func TestTextVerify_Errors(t *testing.T) {
	zeroKeyDir(t)

	tests := []struct {
		name     string
		args     []string
		sentinel error
	}{
		{"malformed signature", []string{"text", "verify", "hello.txt", "-s", "not*base64"}, errors.ErrEncoding},
		{"padded signature", []string{"text", "verify", "hello.txt", "-s", goldenSignature + "="}, errors.ErrEncoding},
		{"short signature", []string{"text", "verify", "hello.txt", "-s", "AAAA"}, errors.ErrSignatureLength},
		{"unknown format", []string{"text", "verify", "hello.txt", "-s", goldenSignature, "--format", "md5"}, errors.ErrUnsupportedFormat},
		{"missing input", []string{"text", "verify", "nope.txt", "-s", goldenSignature}, errors.ErrInputNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, "", tc.args...)
			require.ErrorIs(t, res.err, tc.sentinel)
			assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
			assert.Empty(t, res.stdout)
		})
	}

	t.Run("signature flag is required", func(t *testing.T) {
		res := runCLI(t, "", "text", "verify", "hello.txt")
		require.Error(t, res.err)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
	})

	t.Run("at most one input", func(t *testing.T) {
		res := runCLI(t, "", "text", "verify", "hello.txt", "hello.txt", "-s", goldenSignature)
		require.Error(t, res.err)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
	})

	t.Run("json error goes to stdout", func(t *testing.T) {
		res := runCLI(t, "", "-o", "json", "text", "verify", "hello.txt", "-s", "AAAA")
		require.ErrorIs(t, res.err, errors.ErrSignatureLength)

		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
		assert.Equal(t, "error", got["type"])
		assert.NotEmpty(t, got["suggestion"])
	})
}
