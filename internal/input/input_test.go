package input

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

func TestIsStdin(t *testing.T) {
	assert.True(t, IsStdin("-"))
	assert.True(t, IsStdin(""))
	assert.False(t, IsStdin("./-"))
	assert.False(t, IsStdin("file.txt"))
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(file, []byte("hi"), 0o600))

	require.NoError(t, Validate("-"))
	require.NoError(t, Validate(file))
	require.ErrorIs(t, Validate(filepath.Join(dir, "missing.txt")), errors.ErrInputNotFound)
	require.ErrorIs(t, Validate(dir), errors.ErrInputNotFound)
}

func TestOpener_Open(t *testing.T) {
	t.Run("stdin sentinel", func(t *testing.T) {
		o := &Opener{Stdin: strings.NewReader("from stdin")}
		rc, err := o.Open("-")
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "from stdin", string(data))
	})

	t.Run("file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "in.txt")
		require.NoError(t, os.WriteFile(file, []byte("from file"), 0o600))

		rc, err := (&Opener{}).Open(file)
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "from file", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&Opener{}).Open(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, errors.ErrInputNotFound)
	})
}

func TestOpener_Hint(t *testing.T) {
	stdin, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer func() { _ = stdin.Close() }()

	t.Run("terminal gets a hint", func(t *testing.T) {
		var hint bytes.Buffer
		o := &Opener{Stdin: stdin, Hint: &hint, isTerminal: func(int) bool { return true }}

		rc, err := o.Open("-")
		require.NoError(t, err)
		_ = rc.Close()
		assert.Contains(t, hint.String(), "Ctrl-D")
	})

	t.Run("pipe stays quiet", func(t *testing.T) {
		var hint bytes.Buffer
		o := &Opener{Stdin: stdin, Hint: &hint, isTerminal: func(int) bool { return false }}

		rc, err := o.Open("-")
		require.NoError(t, err)
		_ = rc.Close()
		assert.Empty(t, hint.String())
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "stdin", DisplayName("-"))
	assert.Equal(t, "a.txt", DisplayName("a.txt"))
}
