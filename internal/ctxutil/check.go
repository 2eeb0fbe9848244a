// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled returns the context error if ctx is done (Canceled or
// DeadlineExceeded), nil otherwise. Signers, verifiers and the signing
// service call it at entry.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
