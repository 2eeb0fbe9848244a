// Package testutil holds readers and sentinel errors shared by tests.
// Only _test.go files import it.
package testutil

import "errors"

var (
	// ErrMockRead is returned by readers that simulate a broken stream.
	ErrMockRead = errors.New("read failed")

	// ErrMockEntropy simulates a random source that cannot supply bytes.
	ErrMockEntropy = errors.New("entropy source exhausted")
)
