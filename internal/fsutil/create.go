package fsutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

var ErrLocked = errors.New("file is locked by another process")

// Create opens path for writing, creating it or truncating it to zero length.
// New files get 0666 filtered through the process umask.
func Create(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// Lock takes an advisory exclusive lock on path without blocking. The lock
// is released by the returned func.
func Lock(path string) (func() error, error) {
	fl := flock.New(path, flock.SetPermissions(0o666))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return fl.Unlock, nil
}
