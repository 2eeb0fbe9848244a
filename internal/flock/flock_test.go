//go:build unix

package flock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/flock"
)

func openLockFile(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) //#nosec G304 -- test temp dir
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestTryLock(t *testing.T) {
	t.Parallel()

	t.Run("lock and unlock", func(t *testing.T) {
		t.Parallel()
		f := openLockFile(t, filepath.Join(t.TempDir(), ".textsign.lock"))

		require.NoError(t, flock.TryLock(f))
		require.NoError(t, flock.Unlock(f))
	})

	t.Run("second handle is contended", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".textsign.lock")
		holder := openLockFile(t, path)
		other := openLockFile(t, path)

		require.NoError(t, flock.TryLock(holder))

		err := flock.TryLock(other)
		require.ErrorIs(t, err, flock.ErrContended)
		assert.Contains(t, err.Error(), path)

		require.NoError(t, flock.Unlock(holder))
		require.NoError(t, flock.TryLock(other), "lock is free after unlock")
		require.NoError(t, flock.Unlock(other))
	})

	t.Run("closed file is not contention", func(t *testing.T) {
		t.Parallel()
		f, err := os.Create(filepath.Join(t.TempDir(), ".textsign.lock")) //#nosec G304 -- test temp dir
		require.NoError(t, err)
		require.NoError(t, f.Close())

		err = flock.TryLock(f)
		require.Error(t, err)
		assert.NotErrorIs(t, err, flock.ErrContended)
	})
}
