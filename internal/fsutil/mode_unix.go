//go:build unix

package fsutil

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SetMode sets the permission bits of f to exactly mode. The umask does not
// apply, and setuid, setgid and sticky bits are passed through unchanged.
func SetMode(f *os.File, mode uint32) error {
	if err := unix.Fchmod(int(f.Fd()), mode); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", f.Name(), os.NewSyscallError("fchmod", err))
	}
	return nil
}
