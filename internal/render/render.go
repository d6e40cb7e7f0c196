// Package render computes the terminal output for one applied key
// event: the minimal escape bytes that bring the displayed screen back
// in line with the buffer.
//
// Raw mode has output processing off, so line breaks are written as
// \r\n and screen coordinates are 1-based (buffer row/col + 1).
package render

import (
	"bytes"
	"strconv"

	"github.com/Salmoneer/editor/internal/buffer"
	"github.com/Salmoneer/editor/internal/key"
)

const (
	clearScreen   = "\x1b[2J"
	cursorHome    = "\x1b[1;1H"
	clearToEnd    = "\x1b[0J"
	clearToEOL    = "\x1b[0K"
	prevLineStart = "\x1b[1F"
	cursorUp      = "\x1b[A"
	cursorDown    = "\x1b[B"
	cursorRight   = "\x1b[C"
	cursorLeft    = "\x1b[D"
)

// moveToRow writes ESC[<row>H: absolute screen row, column 1.
func moveToRow(out *bytes.Buffer, row int) {
	out.WriteString("\x1b[")
	out.WriteString(strconv.Itoa(row))
	out.WriteByte('H')
}

// moveToCol writes ESC[<col>G: absolute column on the current row.
func moveToCol(out *bytes.Buffer, col int) {
	out.WriteString("\x1b[")
	out.WriteString(strconv.Itoa(col))
	out.WriteByte('G')
}

// Clear wipes the screen and homes the cursor. Written once at startup
// and again when the session ends.
func Clear() []byte {
	return []byte(clearScreen + cursorHome)
}

// Emit returns the output for ev, which has already been applied to
// buf. prev is the cursor as it stood before the mutation; together
// with the post-state it selects the repaint strategy.
func Emit(ev key.Event, prev buffer.Cursor, buf *buffer.Buffer) []byte {
	switch ev.Kind {
	case key.Char:
		// Raw mode echoes nothing; writing the byte both displays it
		// and advances the terminal cursor.
		return []byte{ev.Ch}
	case key.Enter:
		return emitSplit(buf)
	case key.Backspace:
		return emitBackspace(prev, buf)
	case key.ArrowUp, key.ArrowDown, key.ArrowLeft, key.ArrowRight:
		return emitMove(ev.Kind, prev, buf.Cursor())
	case key.Quit:
		return Clear()
	}
	return nil
}

// emitSplit repaints everything below the split point. The screen
// cursor still sits where the row broke, so clearing from it wipes
// exactly the stale region: the old tail and every shifted row.
func emitSplit(buf *buffer.Buffer) []byte {
	var out bytes.Buffer
	cur := buf.Cursor()
	out.WriteString(clearToEnd)
	for i := cur.Row; i < buf.RowCount(); i++ {
		out.WriteString("\r\n")
		out.Write(buf.Row(i))
	}
	moveToRow(&out, cur.Row+1)
	return out.Bytes()
}

func emitBackspace(prev buffer.Cursor, buf *buffer.Buffer) []byte {
	cur := buf.Cursor()
	if prev == cur {
		// Backspace at the start of the document changed nothing.
		return nil
	}
	if prev.Col == 0 {
		return emitMerge(buf)
	}
	return emitDelete(cur, buf)
}

// emitMerge repaints after a row merge: the previous screen line gets
// the merged row and everything below it shifts up one line.
func emitMerge(buf *buffer.Buffer) []byte {
	var out bytes.Buffer
	cur := buf.Cursor()
	out.WriteString(prevLineStart)
	out.WriteString(clearToEOL)
	out.Write(buf.Row(cur.Row))
	out.WriteString(clearToEnd)
	for i := cur.Row + 1; i < buf.RowCount(); i++ {
		out.WriteString("\r\n")
		out.Write(buf.Row(i))
	}
	moveToRow(&out, cur.Row+1)
	if cur.Col > 0 {
		moveToCol(&out, cur.Col+1)
	}
	return out.Bytes()
}

// emitDelete repaints a same-row deletion: step back over the removed
// cell, clear the rest of the line, and rewrite the tail that shifted
// left.
func emitDelete(cur buffer.Cursor, buf *buffer.Buffer) []byte {
	var out bytes.Buffer
	out.WriteString(cursorLeft)
	out.WriteString(clearToEOL)
	if tail := buf.Row(cur.Row)[cur.Col:]; len(tail) > 0 {
		out.Write(tail)
		moveToCol(&out, cur.Col+1)
	}
	return out.Bytes()
}

// emitMove mirrors a cursor move on screen. An arrow clamped to a
// no-op emits nothing; a vertical move whose column was pulled in by a
// shorter row needs the explicit column set on top of the one-cell
// move.
func emitMove(k key.Kind, prev, cur buffer.Cursor) []byte {
	if prev == cur {
		return nil
	}
	var out bytes.Buffer
	switch k {
	case key.ArrowUp:
		out.WriteString(cursorUp)
	case key.ArrowDown:
		out.WriteString(cursorDown)
	case key.ArrowLeft:
		out.WriteString(cursorLeft)
	case key.ArrowRight:
		out.WriteString(cursorRight)
	}
	if (k == key.ArrowUp || k == key.ArrowDown) && prev.Col != cur.Col {
		moveToCol(&out, cur.Col+1)
	}
	return out.Bytes()
}
