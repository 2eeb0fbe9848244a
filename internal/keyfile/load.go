// Package keyfile reads and writes raw key material on disk.
//
// Keys are stored as flat files holding the raw key bytes, one file per
// buffer of a generated bundle. Loading is done fresh for every operation;
// nothing is cached.
package keyfile

import (
	"fmt"
	"os"

	"github.com/mrz1836/textsign/internal/errors"
)

// Options controls how loaded key material is validated.
type Options struct {
	// AllowTruncate accepts files longer than the required size and uses the
	// leading bytes. Shorter files are always rejected.
	AllowTruncate bool
}

// Load reads the whole file at path. Failures wrap errors.ErrIO.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- key path is supplied by the operator
	if err != nil {
		return nil, errors.Classify(errors.ErrIO, err, "reading key file %s", path)
	}
	return data, nil
}

// LoadKey reads the file at path and checks that it holds exactly size bytes.
// With opts.AllowTruncate a longer file yields its first size bytes.
func LoadKey(path string, size int, opts Options) ([]byte, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	return fit(data, size, opts, path)
}

func fit(data []byte, size int, opts Options, path string) ([]byte, error) {
	switch {
	case len(data) == size:
		return data, nil
	case len(data) > size && opts.AllowTruncate:
		return data[:size], nil
	default:
		return nil, fmt.Errorf("%w: %s holds %d bytes, need %d", errors.ErrKeyLength, path, len(data), size)
	}
}
