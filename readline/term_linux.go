package readline

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS
	// TCSETSF entspricht tcsetattr(TCSAFLUSH)
	ioctlWriteTermios = unix.TCSETSF
)
