//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package cwriter

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TIOCGETA
