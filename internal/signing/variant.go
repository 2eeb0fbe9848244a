package signing

import (
	"fmt"
	"io"

	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/crypto/blake3"
	"github.com/mrz1836/textsign/internal/crypto/native"
	"github.com/mrz1836/textsign/internal/errors"
)

// variant carries the constructors for one signing format.
type variant struct {
	format       crypto.Format
	newSigner    func(key []byte) (crypto.Signer, error)
	newVerifier  func(key []byte) (crypto.Verifier, error)
	newGenerator func(rng io.Reader) crypto.Generator
}

// variantFor is the only place a format is mapped to an algorithm.
// Adding a format means adding a case here and a crypto.Format constant.
func variantFor(format crypto.Format) (variant, error) {
	switch format {
	case crypto.Blake3:
		return variant{
			format: format,
			newSigner: func(key []byte) (crypto.Signer, error) {
				return blake3.NewSigner(key)
			},
			newVerifier: func(key []byte) (crypto.Verifier, error) {
				return blake3.NewSigner(key)
			},
			newGenerator: func(rng io.Reader) crypto.Generator {
				return blake3.NewGenerator(rng)
			},
		}, nil
	case crypto.Ed25519:
		return variant{
			format: format,
			newSigner: func(key []byte) (crypto.Signer, error) {
				return native.NewSigner(key)
			},
			newVerifier: func(key []byte) (crypto.Verifier, error) {
				return native.NewVerifier(key)
			},
			newGenerator: func(rng io.Reader) crypto.Generator {
				return native.NewGenerator(rng)
			},
		}, nil
	default:
		return variant{}, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
	}
}
