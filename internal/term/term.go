// Package term owns the terminal: raw mode, timed byte reads, writes,
// and the size query. Everything above it sees plain byte streams.
package term

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"

	"github.com/Salmoneer/editor/internal/logger"
)

// ErrNotTerminal is returned by Open when stdin is not a tty. Running
// half-raw against a pipe would corrupt the session, so this is fatal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Options tunes the raw-mode session.
type Options struct {
	// ReadTimeout bounds one blocking read; ReadByte retries after
	// each expiry. Rounded to VTIME deciseconds and clamped to
	// 100ms..25.5s; zero means 100ms.
	ReadTimeout time.Duration
}

// Terminal is an exclusive raw-mode session on a tty pair. Open flips
// the input fd into raw mode; Restore must run on every exit path.
type Terminal struct {
	in   *os.File
	out  *os.File
	orig unix.Termios
}

// Open saves the current terminal settings and applies raw mode:
// no echo, no line buffering, no signal keys, no output processing,
// 8-bit characters, and a timed non-canonical read.
func Open(in, out *os.File, opts Options) (*Terminal, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal settings: %w", err)
	}

	raw := *orig
	// IXON: flow control; ICRNL: CR→NL translation; BRKINT: break
	// raises SIGINT; INPCK: parity check; ISTRIP: strip the 8th bit.
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	// OPOST off: the renderer writes explicit \r\n.
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	// ECHO: local echo; ICANON: line buffering; ISIG: INT/TSTP keys;
	// IEXTEN: extended input processing.
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Non-canonical read: return as soon as one byte is available, or
	// empty after VTIME deciseconds.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = vtime(opts.ReadTimeout)

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	logger.Debug("raw mode enabled", "vtime", raw.Cc[unix.VTIME])
	return &Terminal{in: in, out: out, orig: *orig}, nil
}

// vtime converts the timeout to VTIME deciseconds, clamped to 1..255.
func vtime(d time.Duration) uint8 {
	if d <= 0 {
		return 1
	}
	ds := d / (100 * time.Millisecond)
	if ds < 1 {
		return 1
	}
	if ds > 255 {
		return 255
	}
	return uint8(ds)
}

// Restore reapplies the settings saved by Open.
func (t *Terminal) Restore() error {
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, &t.orig); err != nil {
		return fmt.Errorf("restore terminal settings: %w", err)
	}
	return nil
}

// ReadByte blocks until one input byte arrives. A timed-out read
// (zero bytes) or EINTR retries silently; anything else is a real
// failure.
func (t *Terminal) ReadByte() (byte, error) {
	fd := int(t.in.Fd())
	var b [1]byte
	for {
		n, err := unix.Read(fd, b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil && !errors.Is(err, unix.EINTR) {
			return 0, fmt.Errorf("read terminal: %w", err)
		}
	}
}

// Write sends p to the terminal unmodified.
func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("write terminal: %w", err)
	}
	return n, nil
}

// Size reports the terminal dimensions in character cells.
func (t *Terminal) Size() (rows, cols int, err error) {
	w, h, err := xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return h, w, nil
}
