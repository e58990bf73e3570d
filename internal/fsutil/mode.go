package fsutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxMode is the largest value accepted for explicit permission bits.
const MaxMode = 0o7777

var ErrInvalidMode = errors.New("invalid permissions")

// ParseMode parses explicit permission bits. A leading 0 or 0o means octal,
// 0x means hex, anything else is decimal.
func ParseMode(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidMode, s, err)
	}
	if v > MaxMode {
		return 0, fmt.Errorf("%w %q: exceeds %#o", ErrInvalidMode, s, MaxMode)
	}
	return uint32(v), nil
}
