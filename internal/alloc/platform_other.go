//go:build !unix

package alloc

// CheckPlatform reports whether punch can run on this operating system.
func CheckPlatform() error {
	return ErrUnsupportedPlatform
}

func platformBackend() Backend {
	return nil
}
