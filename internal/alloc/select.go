package alloc

// Select returns the backends to try, in order. With syscalls allowed the
// platform's preallocation backend (if it has one) comes first; zero-fill is
// always last.
//
//	linux                     fallocate(2)
//	freebsd                   posix_fallocate(2)
//	darwin, other BSDs, ...   ftruncate(2), may leave the file sparse
//	any, or syscalls off      zero-fill
func Select(allowSyscalls bool, chunkSize int64) []Backend {
	var backends []Backend
	if allowSyscalls {
		if b := platformBackend(); b != nil {
			backends = append(backends, b)
		}
	}
	return append(backends, ZeroFill{ChunkSize: chunkSize})
}
