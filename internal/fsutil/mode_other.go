//go:build !unix

package fsutil

import (
	"fmt"
	"os"
)

func SetMode(f *os.File, mode uint32) error {
	if err := f.Chmod(os.FileMode(mode) & os.ModePerm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", f.Name(), err)
	}
	return nil
}
