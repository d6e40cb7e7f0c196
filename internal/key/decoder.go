package key

import "io"

const (
	ctrlQ = 0x11
	cr    = 0x0D
	del   = 0x7F
	esc   = 0x1B
)

// Decoder state. A decode either completes in ground (single-byte keys)
// or walks ground → sawEsc → sawBracket across an arrow sequence.
type state int

const (
	ground state = iota
	sawEsc
	sawBracket
)

// step consumes one byte and returns the successor state. emitted
// reports whether ev is valid; a decode still in progress emits nothing.
func step(s state, b byte) (next state, ev Event, emitted bool) {
	switch s {
	case sawEsc:
		if b == '[' {
			return sawBracket, Event{}, false
		}
		// Unpaired or non-CSI escape: swallowed whole, never an error.
		return ground, Event{Kind: Ignored}, true
	case sawBracket:
		switch b {
		case 'A':
			return ground, Event{Kind: ArrowUp}, true
		case 'B':
			return ground, Event{Kind: ArrowDown}, true
		case 'C':
			return ground, Event{Kind: ArrowRight}, true
		case 'D':
			return ground, Event{Kind: ArrowLeft}, true
		}
		return ground, Event{Kind: Ignored}, true
	}
	switch {
	case b == ctrlQ:
		return ground, Event{Kind: Quit}, true
	case b == cr:
		return ground, Event{Kind: Enter}, true
	case b == del:
		return ground, Event{Kind: Backspace}, true
	case b == esc:
		return sawEsc, Event{}, false
	case b >= 0x20 && b <= 0x7E:
		return ground, Event{Kind: Char, Ch: b}, true
	}
	return ground, Event{Kind: Ignored}, true
}

// Decoder turns a raw byte stream into key events.
type Decoder struct {
	r io.ByteReader
	s state
}

func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: r}
}

// Next blocks until a complete event has been decoded; each event
// consumes one to three bytes from the reader. Read errors are returned
// unchanged.
func (d *Decoder) Next() (Event, error) {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			d.s = ground
			return Event{}, err
		}
		next, ev, emitted := step(d.s, b)
		d.s = next
		if emitted {
			return ev, nil
		}
	}
}
