// Package buffer holds the in-memory document: ordered byte rows plus
// the cursor the next edit applies to.
package buffer

import "github.com/Salmoneer/editor/internal/key"

// Cursor addresses a position in the document. Row is the active row
// index; Col is the byte offset within that row and may equal the row
// length (the append position).
type Cursor struct {
	Row int
	Col int
}

// Buffer is an ordered sequence of text rows. It always holds at least
// one row: an empty document is a single empty row.
type Buffer struct {
	rows   [][]byte
	cursor Cursor
}

// New returns a buffer with one empty row and the cursor at (0,0).
func New() *Buffer {
	return &Buffer{rows: [][]byte{{}}}
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

// Row returns the backing bytes of row i. Callers must not mutate the
// returned slice.
func (b *Buffer) Row(i int) []byte {
	return b.rows[i]
}

func (b *Buffer) Cursor() Cursor {
	return b.cursor
}

// InsertChar splices c into the current row at the cursor column and
// advances the cursor past it.
func (b *Buffer) InsertChar(c byte) {
	line := b.rows[b.cursor.Row]
	line = append(line, 0)
	copy(line[b.cursor.Col+1:], line[b.cursor.Col:])
	line[b.cursor.Col] = c
	b.rows[b.cursor.Row] = line
	b.cursor.Col++
}

// SplitLine breaks the current row at the cursor: the tail moves to a
// new row below it and the cursor lands at that row's start.
func (b *Buffer) SplitLine() {
	line := b.rows[b.cursor.Row]
	left := append([]byte(nil), line[:b.cursor.Col]...)
	right := append([]byte(nil), line[b.cursor.Col:]...)

	rows := make([][]byte, 0, len(b.rows)+1)
	rows = append(rows, b.rows[:b.cursor.Row]...)
	rows = append(rows, left, right)
	rows = append(rows, b.rows[b.cursor.Row+1:]...)
	b.rows = rows

	b.cursor = Cursor{Row: b.cursor.Row + 1, Col: 0}
}

// Backspace deletes the byte before the cursor. At column 0 it merges
// the current row into the previous one; at (0,0) it does nothing.
func (b *Buffer) Backspace() {
	if b.cursor.Col > 0 {
		line := b.rows[b.cursor.Row]
		copy(line[b.cursor.Col-1:], line[b.cursor.Col:])
		b.rows[b.cursor.Row] = line[:len(line)-1]
		b.cursor.Col--
		return
	}
	if b.cursor.Row == 0 {
		return
	}
	prev := b.rows[b.cursor.Row-1]
	prevLen := len(prev)
	merged := append(prev, b.rows[b.cursor.Row]...)

	rows := make([][]byte, 0, len(b.rows)-1)
	rows = append(rows, b.rows[:b.cursor.Row-1]...)
	rows = append(rows, merged)
	rows = append(rows, b.rows[b.cursor.Row+1:]...)
	b.rows = rows

	b.cursor = Cursor{Row: b.cursor.Row - 1, Col: prevLen}
}

func (b *Buffer) MoveLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
	}
}

func (b *Buffer) MoveRight() {
	if b.cursor.Col < len(b.rows[b.cursor.Row]) {
		b.cursor.Col++
	}
}

func (b *Buffer) MoveUp() {
	if b.cursor.Row == 0 {
		return
	}
	b.cursor.Row--
	b.clampCursorCol()
}

func (b *Buffer) MoveDown() {
	if b.cursor.Row >= len(b.rows)-1 {
		return
	}
	b.cursor.Row++
	b.clampCursorCol()
}

// clampCursorCol pulls the column back inside the current row after a
// vertical move: min(col, length), so an empty row clamps to 0 and the
// append position stays reachable.
func (b *Buffer) clampCursorCol() {
	if n := len(b.rows[b.cursor.Row]); b.cursor.Col > n {
		b.cursor.Col = n
	}
}

// Apply dispatches one decoded event to its mutation. Quit and Ignored
// leave the buffer untouched.
func (b *Buffer) Apply(ev key.Event) {
	switch ev.Kind {
	case key.Char:
		b.InsertChar(ev.Ch)
	case key.Enter:
		b.SplitLine()
	case key.Backspace:
		b.Backspace()
	case key.ArrowLeft:
		b.MoveLeft()
	case key.ArrowRight:
		b.MoveRight()
	case key.ArrowUp:
		b.MoveUp()
	case key.ArrowDown:
		b.MoveDown()
	}
}
