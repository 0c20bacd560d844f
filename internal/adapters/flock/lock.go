// Package flock guards a project against concurrent watch sessions with an
// advisory file lock (github.com/gofrs/flock).
package flock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("lock held by another process")

// Lock is an exclusive, non-blocking lock on a file path.
type Lock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock for path. The file is created on acquisition.
func New(path string) *Lock {
	return &Lock{flock: flock.New(path), path: path}
}

// Acquire takes the lock without blocking. Returns ErrLocked when the lock
// is already held.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create lock dir: %w", err)
	}
	ok, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", l.path, ErrLocked)
	}
	return nil
}

// Release drops the lock. Releasing an unheld lock is a no-op.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}
