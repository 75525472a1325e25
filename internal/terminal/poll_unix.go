//go:build unix

package terminal

import (
	"io"

	"golang.org/x/sys/unix"
)

type platform struct{}

// fill waits up to the timeout for input and reads what is available
func (r *Reader) fill() (int, error) {
	ms := -1
	if r.timeout > 0 {
		ms = int(r.timeout.Milliseconds())
	}

	for {
		fds := []unix.PollFd{
			{Fd: int32(r.fd), Events: unix.POLLIN},
		}
		n, err := unix.Poll(fds, ms)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, err
		}
		if n == 0 {
			return 0, ErrTimeout
		}

		rn, err := unix.Read(r.fd, r.scratch)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, err
		}
		if rn == 0 {
			return 0, io.EOF
		}
		return rn, nil
	}
}
