// Package codec converts signatures to and from their textual form.
//
// Signatures cross the textsign boundary only as URL-safe base64 without
// padding, so they can be pasted into URLs, file names and shell arguments
// without escaping.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mrz1836/textsign/internal/errors"
)

//nolint:gochecknoglobals // immutable encoding
var encoding = base64.RawURLEncoding.Strict()

// Encode returns the URL-safe, unpadded base64 form of sig.
func Encode(sig []byte) string {
	return encoding.EncodeToString(sig)
}

// Decode is the inverse of Encode. Input that uses the standard alphabet,
// carries padding or line breaks, or has non-zero trailing bits fails with
// errors.ErrEncoding. The empty string decodes to an empty, non-nil buffer.
func Decode(text string) ([]byte, error) {
	// The base64 decoder skips CR and LF even in strict mode.
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: decoding signature: line break at offset %d", errors.ErrEncoding, i)
	}
	out, err := encoding.DecodeString(text)
	if err != nil {
		return nil, errors.Classify(errors.ErrEncoding, err, "decoding signature")
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}
