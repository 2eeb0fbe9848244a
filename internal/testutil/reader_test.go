package testutil

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicReader(t *testing.T) {
	t.Run("same seed yields same stream", func(t *testing.T) {
		a := make([]byte, 100)
		b := make([]byte, 100)

		_, err := io.ReadFull(NewDeterministicReader("seed"), a)
		require.NoError(t, err)
		_, err = io.ReadFull(NewDeterministicReader("seed"), b)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := make([]byte, 32)
		b := make([]byte, 32)

		_, _ = io.ReadFull(NewDeterministicReader("one"), a)
		_, _ = io.ReadFull(NewDeterministicReader("two"), b)

		assert.NotEqual(t, a, b)
	})

	t.Run("chunked reads match a single read", func(t *testing.T) {
		whole := make([]byte, 70)
		_, _ = io.ReadFull(NewDeterministicReader("x"), whole)

		r := NewDeterministicReader("x")
		var got bytes.Buffer
		chunk := make([]byte, 7)
		for got.Len() < len(whole) {
			n, err := r.Read(chunk)
			require.NoError(t, err)
			got.Write(chunk[:n])
		}

		assert.Equal(t, whole, got.Bytes())
	})
}

func TestFailingReader(t *testing.T) {
	n, err := FailingReader{Err: ErrMockEntropy}.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrMockEntropy)
}

func TestShortReader(t *testing.T) {
	buf := make([]byte, 8)
	_, err := io.ReadFull(ShortReader([]byte("abc")), buf)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestMockErrors(t *testing.T) {
	require.ErrorIs(t, fmt.Errorf("opening: %w", ErrMockRead), ErrMockRead)
	assert.NotErrorIs(t, ErrMockRead, ErrMockEntropy)
}
