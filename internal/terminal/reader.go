package terminal

import (
	"os"
	"time"

	"golang.org/x/term"
)

// DefaultPollInterval bounds each wait for input so the loop can tick
const DefaultPollInterval = 100 * time.Millisecond

// Reader is a byte source over a terminal or pipe. ReadByte returns
// ErrTimeout when nothing arrived within the timeout; a non-positive
// timeout blocks until input or EOF.
type Reader struct {
	file    *os.File
	fd      int
	timeout time.Duration

	buf     []byte
	pos     int
	scratch []byte

	platform
}

// NewReader creates a byte source over f
func NewReader(f *os.File, timeout time.Duration) *Reader {
	return &Reader{
		file:    f,
		fd:      int(f.Fd()),
		timeout: timeout,
		scratch: make([]byte, 256),
	}
}

// ReadByte returns the next input byte
func (r *Reader) ReadByte() (byte, error) {
	if r.pos < len(r.buf) {
		b := r.buf[r.pos]
		r.pos++
		return b, nil
	}

	n, err := r.fill()
	if err != nil {
		return 0, err
	}
	r.buf = r.scratch[:n]
	r.pos = 1
	return r.buf[0], nil
}

// Buffered returns the number of bytes read from the file but not yet handed out
func (r *Reader) Buffered() int {
	return len(r.buf) - r.pos
}

// Size returns the terminal size, falling back to 80x24
func Size(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// IsTerminal reports whether f is a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
