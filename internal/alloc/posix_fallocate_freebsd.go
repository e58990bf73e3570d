//go:build freebsd && (amd64 || arm64 || riscv64)

package alloc

import (
	"os"

	"golang.org/x/sys/unix"
)

// PosixFallocate reserves blocks with posix_fallocate(2).
type PosixFallocate struct{}

func (PosixFallocate) Name() string { return "posix_fallocate" }

func (PosixFallocate) Allocate(f File, size int64) error {
	err := retryOnEINTR(func() error {
		return posixFallocate(int(f.Fd()), 0, size)
	})
	if err != nil {
		return os.NewSyscallError("posix_fallocate", err)
	}
	return nil
}

// posixFallocate returns the error number as the syscall result; errno is
// not set.
func posixFallocate(fd int, off, size int64) error {
	ret, _, _ := unix.Syscall(unix.SYS_POSIX_FALLOCATE, uintptr(fd), uintptr(off), uintptr(size))
	if ret != 0 {
		return unix.Errno(ret)
	}
	return nil
}

func platformBackend() Backend {
	return PosixFallocate{}
}
