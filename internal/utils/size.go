package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	// ErrInvalidSize is returned when a size string cannot be parsed.
	ErrInvalidSize = errors.New("invalid size")
	// ErrSizeOverflow is returned when a size does not fit in an int64.
	ErrSizeOverflow = errors.New("size exceeds maximum file length")
)

// ParseSize converts a human readable size such as "10MiB", "1GB" or
// "1500000" into an exact byte count. Decimal units (KB, MB, GB, K, M, G)
// are 1000-based and binary units (KiB, MiB, GiB) are 1024-based.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidSize)
	}

	n, err := humanize.ParseBigBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidSize, s, err)
	}
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: %q (%s bytes)", ErrSizeOverflow, s, n)
	}
	return n.Int64(), nil
}

// FormatSize renders a byte count using binary units.
func FormatSize(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}
