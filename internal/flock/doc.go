// Package flock wraps the platform's advisory file lock for the key
// directory lock file. Locks are exclusive and never block: a lock held by
// another process is reported as ErrContended so callers can retry on their
// own schedule.
//
//	f, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
//	if err := flock.TryLock(f); errors.Is(err, flock.ErrContended) {
//	    // someone else is writing keys
//	}
//	defer flock.Unlock(f)
package flock

import "errors"

// ErrContended indicates the lock is held by another file handle.
var ErrContended = errors.New("file is locked by another process")
