package navigation

import "errors"

var (
	// ErrNoPages is returned when a navigator is built without pages
	ErrNoPages = errors.New("navigation: no pages")

	// ErrEmptyPage is returned when a page has no sections
	ErrEmptyPage = errors.New("navigation: page has no sections")
)

// State holds the two-level cursor
type State struct {
	CurrentPage    int
	CurrentSection int
}

// Control tells the surrounding loop whether to keep running
type Control int

const (
	Continue Control = iota
	Stop
)

func (c Control) String() string {
	if c == Stop {
		return "stop"
	}
	return "continue"
}

// Snapshot is the navigator state as exposed to renderers
type Snapshot struct {
	CurrentPage    int
	CurrentSection int
	PageCount      int
	SectionCount   int // sections on the current page
}
