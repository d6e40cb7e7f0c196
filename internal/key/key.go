// Package key decodes raw terminal bytes into editor key events.
package key

// Kind classifies a decoded key event.
type Kind int

const (
	// Ignored covers every byte and escape sequence the editor does not
	// handle; callers treat it as a no-op.
	Ignored Kind = iota
	Char
	Enter
	Backspace
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	Quit
)

// Event is one decoded key press. Ch is set for Char events only.
type Event struct {
	Kind Kind
	Ch   byte
}

func (k Kind) String() string {
	switch k {
	case Ignored:
		return "ignored"
	case Char:
		return "char"
	case Enter:
		return "enter"
	case Backspace:
		return "backspace"
	case ArrowUp:
		return "up"
	case ArrowDown:
		return "down"
	case ArrowLeft:
		return "left"
	case ArrowRight:
		return "right"
	case Quit:
		return "quit"
	}
	return "unknown"
}
