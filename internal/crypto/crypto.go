// Package crypto defines the signing formats and the capability interfaces
// implemented by each algorithm backend.
package crypto

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// Format selects a signing algorithm.
type Format string

// Supported formats.
const (
	// Blake3 is the symmetric BLAKE3 keyed hash.
	Blake3 Format = "blake3"
	// Ed25519 is the asymmetric Ed25519 signature scheme.
	Ed25519 Format = "ed25519"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{Blake3, Ed25519}
}

// ParseFormat resolves a format name, case-insensitively.
// The legacy spellings "blacke3" and "ed2519" are accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blake3", "blacke3":
		return Blake3, nil
	case "ed25519", "ed2519":
		return Ed25519, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, name)
	}
}

// String returns the canonical format name.
func (f Format) String() string {
	return string(f)
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f == Blake3 || f == Ed25519
}

// SignKeySize is the exact length of key material used to sign.
func (f Format) SignKeySize() int {
	switch f {
	case Blake3:
		return constants.Blake3KeySize
	case Ed25519:
		return constants.Ed25519SeedSize
	default:
		return 0
	}
}

// VerifyKeySize is the exact length of key material used to verify.
func (f Format) VerifyKeySize() int {
	switch f {
	case Blake3:
		return constants.Blake3KeySize
	case Ed25519:
		return constants.Ed25519PublicKeySize
	default:
		return 0
	}
}

// SignatureSize is the fixed length of a raw signature.
func (f Format) SignatureSize() int {
	switch f {
	case Blake3:
		return constants.Blake3SignatureSize
	case Ed25519:
		return constants.Ed25519SignatureSize
	default:
		return 0
	}
}

// KeyBundle is the ordered output of key generation: one buffer for Blake3,
// secret then public for Ed25519. The caller owns it.
type KeyBundle [][]byte

// Signer produces signatures. Implementations are deterministic: signing the
// same message twice with the same key produces the same signature.
type Signer interface {
	Sign(ctx context.Context, message []byte) ([]byte, error)
}

// Verifier checks signatures.
// A well-formed signature that does not match returns false and a nil error.
// A signature of the wrong length fails with errors.ErrSignatureLength.
type Verifier interface {
	Verify(ctx context.Context, message, signature []byte) (bool, error)
}

// Generator creates fresh key material.
type Generator interface {
	Generate(ctx context.Context) (KeyBundle, error)
}
