// Package alloc sizes an open file to an exact byte count, preferring the
// platform's preallocation syscall and falling back to writing zeros.
package alloc

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/surge-downloader/punch/internal/utils"
)

var (
	ErrNegativeSize        = errors.New("negative size")
	ErrNoBackend           = errors.New("no allocation backend available")
	ErrUnsupportedPlatform = errors.New("unsupported platform: punch requires a Unix-like operating system")
)

// File is the subset of *os.File the backends need.
type File interface {
	io.Writer
	Fd() uintptr
	Truncate(size int64) error
}

// Backend realizes a file's size using one mechanism.
type Backend interface {
	Name() string
	Allocate(f File, size int64) error
}

// Request describes a single invocation.
type Request struct {
	Path          string
	Size          int64
	AllowSyscalls bool
	Mode          *uint32
}

// Attempt records a backend that failed.
type Attempt struct {
	Backend string
	Err     error
}

// AllocationError is returned when every backend that was tried failed.
type AllocationError struct {
	Size     int64
	Attempts []Attempt
}

func (e *AllocationError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Backend, a.Err))
	}
	return fmt.Sprintf("failed to allocate %s: %s", utils.FormatSize(e.Size), strings.Join(parts, "; "))
}

func (e *AllocationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Options configures New.
type Options struct {
	AllowSyscalls bool
	// Strict makes a failed syscall backend fatal instead of falling back.
	Strict    bool
	ChunkSize int64
}

// Allocator runs backends in order until one succeeds.
type Allocator struct {
	Backends []Backend
	Strict   bool
}

// New returns an Allocator using the backends Select picks for this platform.
func New(opts Options) *Allocator {
	return &Allocator{
		Backends: Select(opts.AllowSyscalls, opts.ChunkSize),
		Strict:   opts.Strict,
	}
}

// Allocate makes f exactly size bytes long. The file is expected to be
// freshly truncated and positioned at offset zero.
func (a *Allocator) Allocate(f File, size int64) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	if size == 0 {
		utils.Debug("size is zero, nothing to allocate")
		return nil
	}
	if len(a.Backends) == 0 {
		return ErrNoBackend
	}

	var attempts []Attempt
	for i, b := range a.Backends {
		utils.Debug("allocating %s with %s", utils.FormatSize(size), b.Name())
		start := time.Now()
		err := b.Allocate(f, size)
		if err == nil {
			utils.Debug("%s allocated %s in %s", b.Name(), utils.FormatSize(size), time.Since(start).Round(time.Microsecond))
			return nil
		}

		attempts = append(attempts, Attempt{Backend: b.Name(), Err: err})
		if i == len(a.Backends)-1 || a.Strict {
			break
		}

		next := a.Backends[i+1]
		utils.Warn("%s failed: %v; falling back to %s", b.Name(), err, next.Name())

		// A failed preallocation can leave the file partially extended.
		if err := f.Truncate(0); err != nil {
			attempts = append(attempts, Attempt{Backend: next.Name(), Err: fmt.Errorf("reset before fallback: %w", err)})
			break
		}
	}

	return &AllocationError{Size: size, Attempts: attempts}
}
