package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/constants"
)

// goldenSignature is keyed BLAKE3 of "hello" under 32 zero bytes.
const goldenSignature = "4PaL_sNhIW7AL8FXNmQ6cEcdliYLD-byc6kJu4ttvYE"

// cliResult captures one command invocation.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// isolateCLI points TEXTSIGN_HOME and the working directory at a fresh temp
// dir so no real configuration or log file is touched. It returns the working dir.
func isolateCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(constants.HomeEnvVar, filepath.Join(dir, "home"))
	t.Setenv("NO_COLOR", "1")
	t.Chdir(dir)
	return dir
}

// runCLI executes the root command with args, feeding stdin to the command.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))

	err := executeRoot(context.Background(), cmd, flags)
	CloseLogFile()

	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeTestFile writes data to name inside dir and returns the path.
func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// mockFormRunner stands in for a huh form.
type mockFormRunner struct {
	runErr error
	onRun  func()
}

func (m *mockFormRunner) Run() error {
	if m.onRun != nil {
		m.onRun()
	}
	return m.runErr
}

// mockTerminalCheckFunc replaces terminalCheck and returns a restore function.
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// mockOverwriteAnswer makes the overwrite confirmation answer with confirm.
func mockOverwriteAnswer(confirm bool) func() {
	original := createOverwriteConfirmForm
	createOverwriteConfirmForm = func(_ []string, answer *bool) formRunner {
		return &mockFormRunner{onRun: func() { *answer = confirm }}
	}
	return func() { createOverwriteConfirmForm = original }
}
