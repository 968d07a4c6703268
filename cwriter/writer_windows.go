//go:build windows

package cwriter

import (
	"golang.org/x/sys/windows"
)

func (w *Writer) clearLines() error {
	return w.ansiCuuAndEd()
}

// GetSize returns the visible dimensions of the given terminal.
func GetSize(fd int) (width, height int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return -1, -1, err
	}
	return int(info.Window.Right - info.Window.Left + 1), int(info.Window.Bottom - info.Window.Top + 1), nil
}

// IsTerminal returns whether the given file descriptor is a terminal. On
// terminals it also enables virtual terminal processing, so escape
// sequences written by Flush are interpreted.
func IsTerminal(fd int) bool {
	var mode uint32
	if windows.GetConsoleMode(windows.Handle(fd), &mode) != nil {
		return false
	}
	_ = windows.SetConsoleMode(windows.Handle(fd), mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	return true
}
