//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cwriter

func (w *Writer) clearLines() error {
	return w.ansiCuuAndEd()
}

// GetSize is not supported on this platform.
func GetSize(_ int) (width, height int, err error) {
	return -1, -1, ErrNotTTY
}

// IsTerminal always returns false on this platform.
func IsTerminal(_ int) bool {
	return false
}
