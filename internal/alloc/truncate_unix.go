//go:build unix && !linux && !(freebsd && (amd64 || arm64 || riscv64))

package alloc

// Truncate sets the logical length with ftruncate(2). No blocks are
// reserved, so the result may be sparse.
type Truncate struct{}

func (Truncate) Name() string { return "ftruncate" }

func (Truncate) Allocate(f File, size int64) error {
	return f.Truncate(size)
}

func platformBackend() Backend {
	return Truncate{}
}
