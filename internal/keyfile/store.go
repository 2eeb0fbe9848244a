package keyfile

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/flock"
)

// WriteOptions controls how a bundle is persisted.
type WriteOptions struct {
	// Force overwrites existing key files.
	Force bool
}

// Existing returns the paths of key files for format that already exist in dir.
func Existing(dir string, format crypto.Format) ([]string, error) {
	layout, err := Layout(format)
	if err != nil {
		return nil, err
	}

	var found []string
	for _, e := range layout {
		path := filepath.Join(dir, e.Name)
		if _, statErr := os.Stat(path); statErr == nil {
			found = append(found, path)
		}
	}
	return found, nil
}

// WriteBundle stores bundle in dir under the format's file names and returns
// the written paths in bundle order. dir must already exist. The directory is
// locked for the duration of the write and every file is written atomically.
func WriteBundle(ctx context.Context, dir string, format crypto.Format, bundle crypto.KeyBundle, opts WriteOptions) ([]string, error) {
	layout, err := Layout(format)
	if err != nil {
		return nil, err
	}
	if len(bundle) != len(layout) {
		return nil, fmt.Errorf("%w: %s bundle has %d buffers, expected %d",
			errors.ErrKeyLength, format, len(bundle), len(layout))
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Classify(errors.ErrIO, err, "checking key directory %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotADirectory, dir)
	}

	lock, err := acquireLock(ctx, dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = releaseLock(lock) }()

	if !opts.Force {
		existing, existErr := Existing(dir, format)
		if existErr != nil {
			return nil, existErr
		}
		if len(existing) > 0 {
			return nil, fmt.Errorf("%w: %s", errors.ErrKeyFileExists, existing[0])
		}
	}

	paths := make([]string, len(layout))
	for i, e := range layout {
		paths[i] = filepath.Join(dir, e.Name)
	}

	// All buffers are on disk before any key file is replaced.
	staged := make([]string, 0, len(layout))
	for i, e := range layout {
		tmp, stageErr := stageFile(paths[i], bundle[i], e.Perm)
		if stageErr != nil {
			removeAll(staged)
			return nil, errors.Classify(errors.ErrIO, stageErr, "writing %s", paths[i])
		}
		staged = append(staged, tmp)
	}

	if err := commit(staged, paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// commit renames each staged file over its target. When a rename fails the
// targets already replaced are restored to their previous content, or
// removed if they did not exist.
func commit(staged, paths []string) error {
	previous := make([][]byte, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p) //#nosec G304 -- path is constructed from the key directory
		switch {
		case err == nil:
			previous[i] = data
		case !stderrors.Is(err, os.ErrNotExist):
			removeAll(staged)
			return errors.Classify(errors.ErrIO, err, "reading %s", p)
		}
	}

	for i := range staged {
		if err := os.Rename(staged[i], paths[i]); err != nil {
			removeAll(staged[i:])
			rollback(paths[:i], previous[:i])
			return errors.Classify(errors.ErrIO, err, "replacing %s", paths[i])
		}
	}
	return nil
}

func rollback(paths []string, previous [][]byte) {
	for i, p := range paths {
		if previous[i] == nil {
			_ = os.Remove(p)
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		_ = atomicWrite(p, previous[i], info.Mode().Perm())
	}
}

func removeAll(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}

// acquireLock takes an exclusive lock on the directory's lock file,
// retrying until constants.LockTimeout or ctx is done.
func acquireLock(ctx context.Context, dir string) (*os.File, error) {
	lockPath := filepath.Join(dir, constants.LockFileName)

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, secretPerm) //#nosec G304 -- path is constructed from the key directory
	if err != nil {
		return nil, errors.Classify(errors.ErrIO, err, "opening lock file")
	}

	deadline := time.Now().Add(constants.LockTimeout)
	for {
		select {
		case <-ctx.Done():
			_ = f.Close()
			return nil, ctx.Err()
		default:
		}

		lockErr := flock.TryLock(f)
		if lockErr == nil {
			return f, nil
		}
		if !stderrors.Is(lockErr, flock.ErrContended) {
			_ = f.Close()
			return nil, errors.Classify(errors.ErrIO, lockErr, "locking %s", dir)
		}

		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("failed to acquire lock on %s: %w", dir, errors.ErrLockTimeout)
		}

		time.Sleep(constants.LockRetryInterval)
	}
}

func releaseLock(f *os.File) error {
	if f == nil {
		return nil
	}
	if err := flock.Unlock(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return f.Close()
}

// stageFile writes data to path's temp file with perm, synced to disk, and
// returns the temp path.
func stageFile(path string, data []byte, perm os.FileMode) (string, error) {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write data: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to sync file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	// Umask may have narrowed the mode on create.
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}
	return tmpPath, nil
}

// atomicWrite replaces path with data using write-then-rename.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmpPath, err := stageFile(path, data, perm)
	if err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
