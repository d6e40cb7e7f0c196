package term

import "golang.org/x/sys/unix"

// Termios ioctl requests. The set request is the flush variant, so
// pending input is dropped before new settings land (tcsetattr with
// TCSAFLUSH).
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
