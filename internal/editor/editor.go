// Package editor runs the interactive session: decode one key event,
// apply it to the buffer, write the repaint, until quit.
package editor

import (
	"fmt"
	"io"

	"github.com/Salmoneer/editor/internal/buffer"
	"github.com/Salmoneer/editor/internal/key"
	"github.com/Salmoneer/editor/internal/logger"
	"github.com/Salmoneer/editor/internal/render"
)

// Editor owns the document for the lifetime of a session. All state is
// confined to the Run goroutine; every iteration completes a full
// read→mutate→render cycle before the next read starts.
type Editor struct {
	dec *key.Decoder
	buf *buffer.Buffer
	out io.Writer
}

// New composes an editor over a raw input byte stream and a terminal
// writer.
func New(in io.ByteReader, out io.Writer) *Editor {
	return &Editor{
		dec: key.NewDecoder(in),
		buf: buffer.New(),
		out: out,
	}
}

// Run paints the empty document and services key events until Quit.
// Quit clears the screen and returns nil; a read or write failure
// aborts the session with a wrapped error.
func (e *Editor) Run() error {
	if _, err := e.out.Write(render.Clear()); err != nil {
		return fmt.Errorf("initial paint: %w", err)
	}
	for {
		ev, err := e.dec.Next()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		prev := e.buf.Cursor()
		e.buf.Apply(ev)
		cur := e.buf.Cursor()
		logger.Debug("key event", "kind", ev.Kind, "row", cur.Row, "col", cur.Col)
		if out := render.Emit(ev, prev, e.buf); len(out) > 0 {
			if _, err := e.out.Write(out); err != nil {
				return fmt.Errorf("write screen: %w", err)
			}
		}
		if ev.Kind == key.Quit {
			logger.Info("session ended by quit")
			return nil
		}
	}
}
