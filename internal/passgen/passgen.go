// Package passgen generates printable secrets from a cryptographic random source.
//
// The alphabets leave out characters that are easy to confuse when a secret is
// read back by a person (I, O, l, 0).
package passgen

import (
	"errors"
	"fmt"
	"io"

	tserrors "github.com/mrz1836/textsign/internal/errors"
)

// Character classes.
const (
	Upper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Lower  = "abcdefghijkmnopqrstuvwxyz"
	Number = "123456789"
	Symbol = "!@#$%^&*()_"
)

// ErrInvalidOptions is returned when no class is selected or the length cannot
// hold one character from every selected class.
var ErrInvalidOptions = errors.New("invalid password options")

// Options selects the secret length and which character classes it draws from.
type Options struct {
	Length int
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

// AllClasses returns Options of the given length with every class enabled.
func AllClasses(length int) Options {
	return Options{Length: length, Upper: true, Lower: true, Number: true, Symbol: true}
}

func (o Options) classes() []string {
	var out []string
	if o.Upper {
		out = append(out, Upper)
	}
	if o.Lower {
		out = append(out, Lower)
	}
	if o.Number {
		out = append(out, Number)
	}
	if o.Symbol {
		out = append(out, Symbol)
	}
	return out
}

// Generate returns a secret of opts.Length bytes read from rng.
// Every selected class contributes at least one character; the remainder is
// drawn from the union of the classes and the result is shuffled.
// A failing rng is reported as errors.ErrIO.
func Generate(rng io.Reader, opts Options) ([]byte, error) {
	classes := opts.classes()
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: no character class selected", ErrInvalidOptions)
	}
	if opts.Length < len(classes) {
		return nil, fmt.Errorf("%w: length %d is shorter than %d required classes", ErrInvalidOptions, opts.Length, len(classes))
	}

	src := &source{r: rng}
	out := make([]byte, 0, opts.Length)
	var all string

	for _, class := range classes {
		all += class
		c, err := src.pick(class)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	for len(out) < opts.Length {
		c, err := src.pick(all)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	// Fisher-Yates
	for i := len(out) - 1; i > 0; i-- {
		j, err := src.intn(i + 1)
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// source draws unbiased small integers from a byte stream.
type source struct {
	r   io.Reader
	buf [1]byte
}

func (s *source) pick(alphabet string) (byte, error) {
	i, err := s.intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// intn returns a uniform value in [0, n) for 0 < n <= 256, rejecting bytes
// above the largest multiple of n.
func (s *source) intn(n int) (int, error) {
	limit := 256 - 256%n
	for {
		if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
			return 0, tserrors.Classify(tserrors.ErrIO, err, "reading random source")
		}
		if v := int(s.buf[0]); v < limit {
			return v % n, nil
		}
	}
}
