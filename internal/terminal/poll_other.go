//go:build !unix

package terminal

import (
	"io"
	"time"
)

type chunk struct {
	data []byte
	err  error
}

// platform feeds reads from a goroutine since there is no poll(2)
type platform struct {
	chunks chan chunk
}

func (r *Reader) fill() (int, error) {
	if r.chunks == nil {
		r.chunks = make(chan chunk, 1)
		go r.readLoop()
	}

	var c chunk
	if r.timeout > 0 {
		select {
		case c = <-r.chunks:
		case <-time.After(r.timeout):
			return 0, ErrTimeout
		}
	} else {
		c = <-r.chunks
	}

	if c.err != nil {
		return 0, c.err
	}
	return copy(r.scratch, c.data), nil
}

func (r *Reader) readLoop() {
	buf := make([]byte, len(r.scratch))
	for {
		n, err := r.file.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			r.chunks <- chunk{data: data}
		}
		if err != nil {
			r.chunks <- chunk{err: err}
			return
		}
		if n == 0 {
			r.chunks <- chunk{err: io.EOF}
			return
		}
	}
}
