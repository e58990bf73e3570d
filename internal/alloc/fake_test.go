package alloc

import "errors"

var errFake = errors.New("fake failure")

// memFile is an in-memory File. Writes append to data.
type memFile struct {
	data      []byte
	truncates []int64

	// stall makes every Write return (0, nil).
	stall bool
	// maxWrite caps the bytes accepted per Write when positive.
	maxWrite int
	// writeErr is returned once data reaches failAfter bytes.
	writeErr  error
	failAfter int64
	// truncErr is returned by Truncate when set.
	truncErr error
	// discard counts written bytes in size without keeping them.
	discard bool
	size    int64

	writes int
}

func (m *memFile) Write(p []byte) (int, error) {
	m.writes++
	if m.stall {
		return 0, nil
	}
	if m.writeErr != nil && int64(len(m.data)) >= m.failAfter {
		return 0, m.writeErr
	}
	n := len(p)
	if m.maxWrite > 0 && n > m.maxWrite {
		n = m.maxWrite
	}
	m.size += int64(n)
	if !m.discard {
		m.data = append(m.data, p[:n]...)
	}
	return n, nil
}

func (m *memFile) Fd() uintptr { return ^uintptr(0) }

func (m *memFile) Truncate(size int64) error {
	m.truncates = append(m.truncates, size)
	if m.truncErr != nil {
		return m.truncErr
	}
	if m.discard {
		m.size = size
		return nil
	}
	if size <= int64(len(m.data)) {
		m.data = m.data[:size]
	} else {
		m.data = append(m.data, make([]byte, size-int64(len(m.data)))...)
	}
	return nil
}

// fakeBackend records calls and returns err.
type fakeBackend struct {
	name  string
	err   error
	calls int
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) Allocate(f File, size int64) error {
	b.calls++
	if b.err != nil {
		return b.err
	}
	return f.Truncate(size)
}
