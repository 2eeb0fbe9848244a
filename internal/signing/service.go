// Package signing exposes sign, verify, and generate over every supported
// format behind one entry point.
//
// Callers pass a crypto.Format and never touch the algorithm packages
// directly. Key material is loaded from disk on every call and dropped when
// the call returns.
package signing

import (
	"context"
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/textsign/internal/codec"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/ctxutil"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/keyfile"
)

// SignRequest describes one signing call.
type SignRequest struct {
	// Name identifies the input in logs and batch results.
	Name    string
	Input   io.Reader
	KeyPath string
	Format  crypto.Format
}

// VerifyRequest describes one verification call.
type VerifyRequest struct {
	Name      string
	Input     io.Reader
	KeyPath   string
	Format    crypto.Format
	Signature string
}

// Service dispatches signing operations to the selected format.
// It holds no state between calls other than its injected dependencies.
type Service struct {
	rand    io.Reader
	keyOpts keyfile.Options
	logger  zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRandom sets the random source used for key generation.
func WithRandom(r io.Reader) Option {
	return func(s *Service) {
		s.rand = r
	}
}

// WithKeyOptions sets how key files are validated on load.
func WithKeyOptions(opts keyfile.Options) Option {
	return func(s *Service) {
		s.keyOpts = opts
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service. By default it draws randomness from
// crypto/rand and requires key files of exact length.
func NewService(opts ...Option) *Service {
	s := &Service{
		rand:   rand.Reader,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign reads the whole input, signs it with the key at req.KeyPath, and
// returns the encoded signature.
func (s *Service) Sign(ctx context.Context, req SignRequest) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	v, err := variantFor(req.Format)
	if err != nil {
		return "", err
	}

	key, err := keyfile.LoadKey(req.KeyPath, req.Format.SignKeySize(), s.keyOpts)
	if err != nil {
		return "", err
	}

	signer, err := v.newSigner(key)
	if err != nil {
		return "", err
	}

	data, err := readInput(req.Name, req.Input)
	if err != nil {
		return "", err
	}

	sig, err := signer.Sign(ctx, data)
	if err != nil {
		return "", errors.Wrapf(err, "signing %s", req.Name)
	}

	s.logger.Debug().
		Str("format", v.format.String()).
		Str("input", req.Name).
		Int("bytes", len(data)).
		Msg("signed input")

	return codec.Encode(sig), nil
}

// Verify checks req.Signature against the input. A well-formed signature that
// does not match returns false with a nil error.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (bool, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return false, err
	}

	v, err := variantFor(req.Format)
	if err != nil {
		return false, err
	}

	sig, err := codec.Decode(req.Signature)
	if err != nil {
		return false, err
	}

	key, err := keyfile.LoadKey(req.KeyPath, req.Format.VerifyKeySize(), s.keyOpts)
	if err != nil {
		return false, err
	}

	verifier, err := v.newVerifier(key)
	if err != nil {
		return false, err
	}

	data, err := readInput(req.Name, req.Input)
	if err != nil {
		return false, err
	}

	ok, err := verifier.Verify(ctx, data, sig)
	if err != nil {
		return false, errors.Wrapf(err, "verifying %s", req.Name)
	}

	s.logger.Debug().
		Str("format", v.format.String()).
		Str("input", req.Name).
		Int("bytes", len(data)).
		Bool("valid", ok).
		Msg("verified input")

	return ok, nil
}

// Generate creates fresh key material for format. The bundle is returned to
// the caller and not retained.
func (s *Service) Generate(ctx context.Context, format crypto.Format) (crypto.KeyBundle, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	v, err := variantFor(format)
	if err != nil {
		return nil, err
	}

	bundle, err := v.newGenerator(s.rand).Generate(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("format", v.format.String()).
		Int("buffers", len(bundle)).
		Msg("generated key material")

	return bundle, nil
}

func readInput(name string, r io.Reader) ([]byte, error) {
	if r == nil {
		return []byte{}, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Classify(errors.ErrIO, err, "reading input %s", name)
	}
	return data, nil
}
