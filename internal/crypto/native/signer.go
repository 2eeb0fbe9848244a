// Package native provides Ed25519 signing using standard crypto libraries.
package native

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/ctxutil"
	"github.com/mrz1836/textsign/internal/errors"
)

// Compile-time interface checks.
var (
	_ crypto.Signer    = (*Signer)(nil)
	_ crypto.Verifier  = (*Signer)(nil)
	_ crypto.Verifier  = (*Verifier)(nil)
	_ crypto.Generator = (*Generator)(nil)
)

// Signer implements crypto.Signer with an Ed25519 private key derived from a 32-byte seed.
type Signer struct {
	privKey ed25519.PrivateKey
}

// NewSigner builds a Signer from a 32-byte seed.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != constants.Ed25519SeedSize {
		return nil, fmt.Errorf("%w: ed25519 signing key must be %d bytes, got %d",
			errors.ErrKeyLength, constants.Ed25519SeedSize, len(seed))
	}
	return &Signer{privKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign signs the message using Ed25519. Signatures are deterministic.
func (s *Signer) Sign(ctx context.Context, message []byte) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	return ed25519.Sign(s.privKey, message), nil
}

// Verify checks the signature against the signer's own public key.
func (s *Signer) Verify(ctx context.Context, message, signature []byte) (bool, error) {
	return verify(ctx, s.PublicKey(), message, signature)
}

// PublicKey returns the 32-byte public key paired with the signer's seed.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.privKey.Public().(ed25519.PublicKey)
}

// Verifier implements crypto.Verifier with an Ed25519 public key.
type Verifier struct {
	pubKey ed25519.PublicKey
}

// NewVerifier builds a Verifier from a 32-byte public key.
// Bytes that do not decode to a curve point fail with errors.ErrCryptoConstruction.
func NewVerifier(pub []byte) (*Verifier, error) {
	if len(pub) != constants.Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 verifying key must be %d bytes, got %d",
			errors.ErrKeyLength, constants.Ed25519PublicKeySize, len(pub))
	}
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return nil, errors.Classify(errors.ErrCryptoConstruction, err, "decoding ed25519 public key")
	}
	k := make(ed25519.PublicKey, len(pub))
	copy(k, pub)
	return &Verifier{pubKey: k}, nil
}

// Verify reports whether signature is a valid Ed25519 signature of message.
func (v *Verifier) Verify(ctx context.Context, message, signature []byte) (bool, error) {
	return verify(ctx, v.pubKey, message, signature)
}

func verify(ctx context.Context, pub ed25519.PublicKey, message, signature []byte) (bool, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return false, err
	}
	if len(signature) != constants.Ed25519SignatureSize {
		return false, fmt.Errorf("%w: ed25519 signature must be %d bytes, got %d",
			errors.ErrSignatureLength, constants.Ed25519SignatureSize, len(signature))
	}
	return ed25519.Verify(pub, message, signature), nil
}

// Generator creates Ed25519 keypairs.
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

// Generate returns [seed, public key], 32 bytes each.
func (g *Generator) Generate(ctx context.Context) (crypto.KeyBundle, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	pub, priv, err := ed25519.GenerateKey(g.rand)
	if err != nil {
		return nil, errors.Classify(errors.ErrIO, err, "generating ed25519 key")
	}
	return crypto.KeyBundle{priv.Seed(), []byte(pub)}, nil
}
