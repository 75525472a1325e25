package terminal

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Controller switches a terminal into raw mode. The returned function puts
// the terminal back into the mode it had before.
type Controller interface {
	MakeRaw() (restore func() error, err error)
}

type fdController struct {
	fd int
}

// RawModeVTInput reports that raw mode from NewController makes a Windows
// console deliver VT escape sequences. x/term sets ENABLE_VIRTUAL_TERMINAL_INPUT.
const RawModeVTInput = true

// NewController returns a Controller for the terminal behind fd
func NewController(fd int) Controller {
	return fdController{fd: fd}
}

func (c fdController) MakeRaw() (func() error, error) {
	if !term.IsTerminal(c.fd) {
		return nil, ErrNotTerminal
	}
	prev, err := term.MakeRaw(c.fd)
	if err != nil {
		return nil, errors.Wrap(err, "enter raw mode")
	}
	return func() error {
		return term.Restore(c.fd, prev)
	}, nil
}

// Session is an acquired raw-mode terminal
type Session struct {
	ctrl Controller

	mu        sync.Mutex
	restore   func() error
	suspended bool
	released  bool
}

// Acquire switches the terminal into raw mode. The caller must call Release.
func Acquire(ctrl Controller) (*Session, error) {
	restore, err := ctrl.MakeRaw()
	if err != nil {
		return nil, err
	}
	return &Session{ctrl: ctrl, restore: restore}, nil
}

// Release restores the prior input mode. Only the first call has an effect.
func (s *Session) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil
	}
	s.released = true
	if s.suspended {
		// already back in the prior mode
		return nil
	}
	if err := s.restore(); err != nil {
		return &RestoreError{Err: err}
	}
	return nil
}

// ReleaseTerminal hands the terminal back in its prior mode so another
// program (the pager) can take it over. RestoreTerminal undoes it.
func (s *Session) ReleaseTerminal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released || s.suspended {
		return nil
	}
	if err := s.restore(); err != nil {
		return &RestoreError{Err: err}
	}
	s.suspended = true
	return nil
}

// RestoreTerminal puts the terminal back into raw mode after ReleaseTerminal
func (s *Session) RestoreTerminal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released || !s.suspended {
		return nil
	}
	restore, err := s.ctrl.MakeRaw()
	if err != nil {
		return err
	}
	s.restore = restore
	s.suspended = false
	return nil
}

// WithRawMode runs fn with the terminal in raw mode and restores the prior
// mode on every exit path. A restore failure wins over fn's error and is
// returned as *RestoreError carrying fn's error as Cause.
func WithRawMode(ctrl Controller, fn func(*Session) error) (err error) {
	s, err := Acquire(ctrl)
	if err != nil {
		return err
	}

	defer func() {
		r := recover()
		if rerr := s.Release(); rerr != nil {
			var restoreErr *RestoreError
			if !errors.As(rerr, &restoreErr) {
				restoreErr = &RestoreError{Err: rerr}
			}
			if r != nil {
				panic(fmt.Sprintf("%v (and %v)", r, restoreErr))
			}
			restoreErr.Cause = err
			err = restoreErr
		}
		if r != nil {
			panic(r)
		}
	}()

	return fn(s)
}
