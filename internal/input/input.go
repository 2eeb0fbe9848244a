// Package input resolves the byte source named on the command line.
//
// The name "-" selects standard input; any other name is a file path that is
// read in full.
package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// IsStdin reports whether name selects standard input.
func IsStdin(name string) bool {
	return name == constants.StdinSentinel || name == ""
}

// Validate checks that name is the stdin sentinel or an existing regular file.
func Validate(name string) error {
	if IsStdin(name) {
		return nil
	}
	info, err := os.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", errors.ErrInputNotFound, name)
		}
		return errors.Classify(errors.ErrIO, err, "checking input %s", name)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", errors.ErrInputNotFound, name)
	}
	return nil
}

// Opener opens named byte sources.
type Opener struct {
	Stdin io.Reader
	// Hint receives a one-line prompt when stdin is an interactive terminal.
	Hint io.Writer
	// isTerminal is swapped in tests.
	isTerminal func(fd int) bool
}

// NewOpener returns an Opener over the process's stdin that hints on stderr.
func NewOpener() *Opener {
	return &Opener{Stdin: os.Stdin, Hint: os.Stderr, isTerminal: term.IsTerminal}
}

// Open returns a reader for name. The caller must close it.
func (o *Opener) Open(name string) (io.ReadCloser, error) {
	if IsStdin(name) {
		o.hint()
		return io.NopCloser(o.Stdin), nil
	}
	if err := Validate(name); err != nil {
		return nil, err
	}
	f, err := os.Open(name) //#nosec G304 -- input path is supplied by the operator
	if err != nil {
		return nil, errors.Classify(errors.ErrIO, err, "opening input %s", name)
	}
	return f, nil
}

// DisplayName returns the name used for name in output and logs.
func DisplayName(name string) string {
	if IsStdin(name) {
		return "stdin"
	}
	return name
}

func (o *Opener) hint() {
	if o.Hint == nil || o.isTerminal == nil {
		return
	}
	f, ok := o.Stdin.(*os.File)
	if !ok || !o.isTerminal(int(f.Fd())) {
		return
	}
	_, _ = fmt.Fprintln(o.Hint, "Reading from stdin; press Ctrl-D when done.")
}
