//go:build linux || (freebsd && (amd64 || arm64 || riscv64))

package alloc

import (
	"errors"

	"golang.org/x/sys/unix"
)

const eintrRetryCount = 5

func retryOnEINTR(fn func() error) error {
	var err error
	for i := 0; i < eintrRetryCount; i++ {
		err = fn()
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
	return err
}
