// Package blake3 implements the symmetric BLAKE3 keyed-hash signing format.
package blake3

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	zblake3 "github.com/zeebo/blake3"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/ctxutil"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/passgen"
)

// Compile-time interface checks.
var (
	_ crypto.Signer    = (*Signer)(nil)
	_ crypto.Verifier  = (*Signer)(nil)
	_ crypto.Generator = (*Generator)(nil)
)

// Signer computes and checks keyed BLAKE3 digests. The same key signs and verifies.
type Signer struct {
	key []byte
}

// NewSigner returns a Signer for a key of exactly 32 bytes.
func NewSigner(key []byte) (*Signer, error) {
	if len(key) != constants.Blake3KeySize {
		return nil, fmt.Errorf("%w: blake3 key must be %d bytes, got %d",
			errors.ErrKeyLength, constants.Blake3KeySize, len(key))
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Signer{key: k}, nil
}

// Sign returns the 32-byte keyed hash of message.
func (s *Signer) Sign(ctx context.Context, message []byte) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	return s.sum(message)
}

// Verify recomputes the keyed hash and compares it in constant time.
func (s *Signer) Verify(ctx context.Context, message, signature []byte) (bool, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return false, err
	}
	if len(signature) != constants.Blake3SignatureSize {
		return false, fmt.Errorf("%w: blake3 signature must be %d bytes, got %d",
			errors.ErrSignatureLength, constants.Blake3SignatureSize, len(signature))
	}

	expected, err := s.sum(message)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(expected, signature) == 1, nil
}

func (s *Signer) sum(message []byte) ([]byte, error) {
	h, err := zblake3.NewKeyed(s.key)
	if err != nil {
		return nil, errors.Classify(errors.ErrCryptoConstruction, err, "creating blake3 hasher")
	}
	_, _ = h.Write(message)
	return h.Sum(nil), nil
}

// Generator creates printable 32-byte BLAKE3 keys.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading from rng, or crypto/rand when rng is nil.
func NewGenerator(rng io.Reader) *Generator {
	if rng == nil {
		rng = rand.Reader
	}
	return &Generator{rand: rng}
}

// Generate returns a bundle holding one printable 32-byte key.
func (g *Generator) Generate(ctx context.Context) (crypto.KeyBundle, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	key, err := passgen.Generate(g.rand, passgen.AllClasses(constants.Blake3KeySize))
	if err != nil {
		return nil, errors.Wrap(err, "generating blake3 key")
	}
	return crypto.KeyBundle{key}, nil
}
