package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

func TestRootCmd_Help(t *testing.T) {
	isolateCLI(t)

	res := runCLI(t, "", "--help")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "textsign")
	assert.Contains(t, res.stdout, "--output")
	assert.Contains(t, res.stdout, "--verbose")
	assert.Contains(t, res.stdout, "--quiet")
	assert.Contains(t, res.stdout, "text")
	assert.Contains(t, res.stdout, "config")
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	isolateCLI(t)

	res := runCLI(t, "")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Usage:")
}

func TestRootCmd_OutputFlag(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedValue string
		expectError   bool
	}{
		{"text output", []string{"--output", "text"}, OutputText, false},
		{"json output", []string{"--output", "json"}, OutputJSON, false},
		{"shorthand output", []string{"-o", "json"}, OutputJSON, false},
		{"invalid output format", []string{"--output", "xml"}, "", true},
		{"empty output format", []string{"--output", ""}, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolateCLI(t)

			flags := &GlobalFlags{}
			cmd := newRootCmd(flags, BuildInfo{})
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(append(tc.args, "version"))

			err := executeRoot(context.Background(), cmd, flags)
			CloseLogFile()

			if tc.expectError {
				require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
				assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedValue, flags.Output)
		})
	}
}

func TestRootCmd_OutputFromEnvironment(t *testing.T) {
	isolateCLI(t)
	t.Setenv("TEXTSIGN_OUTPUT", "json")

	res := runCLI(t, "", "version")
	require.NoError(t, res.err)

	var got versionInfo
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "test", got.Version)

	t.Run("flag wins over environment", func(t *testing.T) {
		res := runCLI(t, "", "version", "-o", "text")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "textsign test")
	})
}

func TestRootCmd_VerboseQuietExclusive(t *testing.T) {
	isolateCLI(t)

	res := runCLI(t, "", "--verbose", "--quiet", "version")
	require.Error(t, res.err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	isolateCLI(t)

	res := runCLI(t, "", "encrypt")
	require.Error(t, res.err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
	assert.Contains(t, res.stderr, "unknown command")
}

func TestGetLogger_AfterInit(t *testing.T) {
	isolateCLI(t)

	require.NoError(t, runCLI(t, "", "--quiet", "version").err)
	assert.Equal(t, "warn", GetLogger().GetLevel().String())
}

func TestFormatVersion(t *testing.T) {
	assert.Equal(t, "dev (commit: none, built: unknown)", formatVersion(BuildInfo{}))
	assert.Equal(t, "1.2.3 (commit: abc, built: 2026-10-18)", formatVersion(BuildInfo{Version: "1.2.3", Commit: "abc", Date: "2026-10-18"}))
}
