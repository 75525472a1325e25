package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned by a byte source when nothing arrived within
	// the poll interval
	ErrTimeout = errors.New("terminal: read timeout")

	// ErrNotTerminal is returned when raw mode is requested on a file that
	// is not a terminal
	ErrNotTerminal = errors.New("terminal: not a terminal")
)

// RestoreError reports that the terminal's original input mode could not be
// restored. Cause holds the error the guarded function returned, if any.
type RestoreError struct {
	Err   error
	Cause error
}

func (e *RestoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("restore terminal mode: %v (after: %v)", e.Err, e.Cause)
	}
	return fmt.Sprintf("restore terminal mode: %v", e.Err)
}

func (e *RestoreError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is a read timeout
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
