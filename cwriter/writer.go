package cwriter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen  = "\x1b["
	cuuAndEd = "A\x1b[J"
)

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Writer is a buffered writer that updates the terminal in place. The
// contents of writer are flushed when Flush is called, replacing whatever
// the previous Flush has written.
type Writer struct {
	*bytes.Buffer
	out      io.Writer
	lines    int
	fd       int
	terminal bool
	termSize func(int) (int, int, error)
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{
		Buffer: new(bytes.Buffer),
		out:    out,
		termSize: func(_ int) (int, int, error) {
			return -1, -1, ErrNotTTY
		},
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		if IsTerminal(w.fd) {
			w.terminal = true
			w.termSize = GetSize
		}
	}
	return w
}

// Flush erases lines written by the previous Flush and writes buffered
// content. The lines param is the number of lines buffered content
// occupies.
func (w *Writer) Flush(lines int) (err error) {
	if w.lines > 0 {
		err = w.clearLines()
		if err != nil {
			return err
		}
	}
	w.lines = lines
	_, err = w.Buffer.WriteTo(w.out)
	return err
}

// IsTerminal reports whether underlying output is a terminal.
func (w *Writer) IsTerminal() bool {
	return w.terminal
}

// GetTermSize returns WxH of underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	return w.termSize(w.fd)
}

func (w *Writer) ansiCuuAndEd() error {
	buf := make([]byte, 0, 8)
	buf = append(buf, escOpen...)
	buf = strconv.AppendInt(buf, int64(w.lines), 10)
	buf = append(buf, cuuAndEd...)
	_, err := w.out.Write(buf)
	return err
}
