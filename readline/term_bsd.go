//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package readline

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TIOCGETA
	// TIOCSETAF entspricht tcsetattr(TCSAFLUSH)
	ioctlWriteTermios = unix.TIOCSETAF
)
