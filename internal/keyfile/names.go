package keyfile

import (
	"fmt"
	"os"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/errors"
)

const (
	secretPerm os.FileMode = 0o600
	publicPerm os.FileMode = 0o644
)

// Entry describes where one buffer of a key bundle is stored.
type Entry struct {
	Name string
	Perm os.FileMode
}

// Layout returns the file entries for a format's bundle, in bundle order.
func Layout(format crypto.Format) ([]Entry, error) {
	switch format {
	case crypto.Blake3:
		return []Entry{
			{Name: constants.Blake3KeyFileName, Perm: secretPerm},
		}, nil
	case crypto.Ed25519:
		return []Entry{
			{Name: constants.Ed25519SecretKeyFileName, Perm: secretPerm},
			{Name: constants.Ed25519PublicKeyFileName, Perm: publicPerm},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
	}
}
