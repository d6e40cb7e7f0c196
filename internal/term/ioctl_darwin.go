package term

import "golang.org/x/sys/unix"

// Termios ioctl requests, flush variant on set (tcsetattr with
// TCSAFLUSH).
const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
