//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cwriter

import (
	"golang.org/x/sys/unix"
)

func (w *Writer) clearLines() error {
	return w.ansiCuuAndEd()
}

// GetSize returns the dimensions of the given terminal.
func GetSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// IsTerminal returns whether the given file descriptor is a terminal.
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	return err == nil
}
