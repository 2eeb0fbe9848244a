package passgen

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/testutil"
)

func TestGenerate_LengthAndClasses(t *testing.T) {
	for _, length := range []int{4, 16, 32, 64} {
		secret, err := Generate(rand.Reader, AllClasses(length))
		require.NoError(t, err)
		require.Len(t, secret, length)

		s := string(secret)
		assert.True(t, strings.ContainsAny(s, Upper), "missing upper in %q", s)
		assert.True(t, strings.ContainsAny(s, Lower), "missing lower in %q", s)
		assert.True(t, strings.ContainsAny(s, Number), "missing number in %q", s)
		assert.True(t, strings.ContainsAny(s, Symbol), "missing symbol in %q", s)
	}
}

func TestGenerate_OnlySelectedClasses(t *testing.T) {
	secret, err := Generate(rand.Reader, Options{Length: 40, Number: true})
	require.NoError(t, err)

	for _, c := range string(secret) {
		assert.Contains(t, Number, string(c))
	}
}

func TestGenerate_NoAmbiguousCharacters(t *testing.T) {
	secret, err := Generate(rand.Reader, AllClasses(256))
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(string(secret), "IOl0"))
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(testutil.NewDeterministicReader("k"), AllClasses(32))
	require.NoError(t, err)
	b, err := Generate(testutil.NewDeterministicReader("k"), AllClasses(32))
	require.NoError(t, err)
	c, err := Generate(testutil.NewDeterministicReader("other"), AllClasses(32))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no classes", Options{Length: 10}},
		{"too short for classes", AllClasses(3)},
		{"zero length", Options{Length: 0, Upper: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(rand.Reader, tc.opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	_, err := Generate(testutil.FailingReader{Err: testutil.ErrMockEntropy}, AllClasses(32))

	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrIO)
	assert.ErrorIs(t, err, testutil.ErrMockEntropy)
}

func TestSource_IntnUnbiasedRange(t *testing.T) {
	s := &source{r: testutil.NewDeterministicReader("range")}
	seen := make(map[int]bool)
	for range 2000 {
		v, err := s.intn(len(Symbol))
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, len(Symbol))
		seen[v] = true
	}
	assert.Len(t, seen, len(Symbol))
}
