package types

import "fmt"

// Mode is the terminal input mode the events are read in
type Mode int

const (
	ModeAuto Mode = iota
	ModeRaw
	ModeCooked
)

func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeCooked:
		return "cooked"
	default:
		return "auto"
	}
}

// ParseMode converts a config/flag value into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "raw":
		return ModeRaw, nil
	case "cooked", "line":
		return ModeCooked, nil
	}
	return ModeAuto, fmt.Errorf("unknown input mode %q", s)
}

// EventSource yields decoded events one at a time. Next may return
// terminal.ErrTimeout when nothing arrived within the poll interval.
type EventSource interface {
	Next() (Event, error)
}
