package alloc

import (
	"errors"
	"fmt"
)

const (
	// DefaultChunkSize is the size of each zero write.
	DefaultChunkSize = 1 << 20
	// MaxChunkSize bounds the zero buffer held in memory.
	MaxChunkSize = 64 << 20
	// MaxStalledWrites is how many consecutive zero-byte writes are
	// tolerated before the fill gives up.
	MaxStalledWrites = 3
)

var ErrWriteStall = errors.New("write stalled")

// ZeroFill writes zero bytes until the file reaches the requested size. The
// last chunk is trimmed so the file is never longer than requested.
type ZeroFill struct {
	ChunkSize int64
}

func (ZeroFill) Name() string { return "zero-fill" }

func (z ZeroFill) Allocate(f File, size int64) error {
	chunk := z.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	chunk = min(chunk, MaxChunkSize)
	if chunk > size {
		chunk = size
	}
	buf := make([]byte, chunk)

	var written int64
	stalls := 0
	for written < size {
		n := min(int64(len(buf)), size-written)
		w, err := f.Write(buf[:n])
		written += int64(w)
		if err != nil {
			return fmt.Errorf("write at offset %d: %w", written, err)
		}
		if w == 0 {
			stalls++
			if stalls >= MaxStalledWrites {
				return fmt.Errorf("%w: %d consecutive empty writes at offset %d", ErrWriteStall, stalls, written)
			}
			continue
		}
		stalls = 0
	}

	if err := f.Truncate(size); err != nil {
		return fmt.Errorf("truncate to %d: %w", size, err)
	}
	return nil
}
