package ui

import (
	"time"
)

// tickMsg is sent on a timer to refresh the status line
type tickMsg time.Time

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	ref string
	err error
}
