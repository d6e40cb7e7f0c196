package editor

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/acarl005/stripansi"

	"github.com/Salmoneer/editor/internal/buffer"
)

const clearSeq = "\x1b[2J\x1b[1;1H"

// runScript feeds a raw byte script through a full session and returns
// the editor and everything it wrote.
func runScript(t *testing.T, script string) (*Editor, string) {
	t.Helper()
	var out bytes.Buffer
	e := New(bytes.NewReader([]byte(script)), &out)
	if err := e.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return e, out.String()
}

func assertDocument(t *testing.T, e *Editor, want ...string) {
	t.Helper()
	if e.buf.RowCount() != len(want) {
		t.Fatalf("RowCount = %d, want %d", e.buf.RowCount(), len(want))
	}
	for i, w := range want {
		if got := string(e.buf.Row(i)); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestRunQuitImmediately(t *testing.T) {
	e, out := runScript(t, "\x11")
	assertDocument(t, e, "")
	// Initial paint plus the quit-time clear.
	if out != clearSeq+clearSeq {
		t.Fatalf("output = %q, want %q", out, clearSeq+clearSeq)
	}
}

func TestRunTypeEnterBackspaceSession(t *testing.T) {
	script := "hi\rbye\x7f\x7f\x7f\x7f\x11"
	e, out := runScript(t, script)

	assertDocument(t, e, "hi")
	if e.buf.Cursor() != (buffer.Cursor{Row: 0, Col: 2}) {
		t.Fatalf("cursor = %+v, want (0,2)", e.buf.Cursor())
	}

	want := clearSeq +
		"hi" +
		"\x1b[0J\r\n\x1b[2H" + // split at end of "hi"
		"bye" +
		"\x1b[D\x1b[0K" + // deletes at end of row, no tail
		"\x1b[D\x1b[0K" +
		"\x1b[D\x1b[0K" +
		"\x1b[1F\x1b[0Khi\x1b[0J\x1b[1H\x1b[3G" + // merge empty row back
		clearSeq
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunArrowNavigation(t *testing.T) {
	// Type "ab", step left twice, try to move above the first row
	// (clamped, no output), insert at the start.
	script := "ab\x1b[D\x1b[D\x1b[AX\x11"
	e, out := runScript(t, script)

	assertDocument(t, e, "Xab")
	if e.buf.Cursor() != (buffer.Cursor{Row: 0, Col: 1}) {
		t.Fatalf("cursor = %+v, want (0,1)", e.buf.Cursor())
	}

	want := clearSeq + "ab" + "\x1b[D" + "\x1b[D" + "X" + clearSeq
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunIgnoresUnknownBytes(t *testing.T) {
	// Control bytes and unknown escapes pass through without output or
	// document changes.
	e, out := runScript(t, "\x01\x1bZa\x11")
	assertDocument(t, e, "a")
	want := clearSeq + "a" + clearSeq
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunVisibleTyping(t *testing.T) {
	_, out := runScript(t, "hello\x11")
	if got := stripansi.Strip(out); got != "hello" {
		t.Fatalf("visible output = %q, want %q", got, "hello")
	}
}

func TestRunReadErrorAborts(t *testing.T) {
	// A stream that ends without a quit surfaces the read failure.
	var out bytes.Buffer
	e := New(bytes.NewReader([]byte("abc")), &out)
	err := e.Run()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Run error = %v, want io.EOF", err)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestRunWriteErrorAborts(t *testing.T) {
	writeErr := errors.New("tty closed")
	e := New(bytes.NewReader([]byte("a\x11")), failWriter{err: writeErr})
	if err := e.Run(); !errors.Is(err, writeErr) {
		t.Fatalf("Run error = %v, want %v", err, writeErr)
	}
}
