package types

import "fmt"

// Kind identifies a navigation event
type Kind uint8

const (
	KindUnknown Kind = iota
	KindUp
	KindDown
	KindLeft
	KindRight
	KindHome
	KindEnd
	KindDigit
	KindConfirm
	KindCancel
	KindQuit
	KindChar
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindUp:      "up",
	KindDown:    "down",
	KindLeft:    "left",
	KindRight:   "right",
	KindHome:    "home",
	KindEnd:     "end",
	KindDigit:   "digit",
	KindConfirm: "confirm",
	KindCancel:  "cancel",
	KindQuit:    "quit",
	KindChar:    "char",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event is a decoded navigation event. Digit is set only for KindDigit
// (1..9) and Char only for KindChar.
type Event struct {
	Kind  Kind
	Digit int
	Char  rune
}

func Up() Event      { return Event{Kind: KindUp} }
func Down() Event    { return Event{Kind: KindDown} }
func Left() Event    { return Event{Kind: KindLeft} }
func Right() Event   { return Event{Kind: KindRight} }
func Home() Event    { return Event{Kind: KindHome} }
func End() Event     { return Event{Kind: KindEnd} }
func Confirm() Event { return Event{Kind: KindConfirm} }
func Cancel() Event  { return Event{Kind: KindCancel} }
func Quit() Event    { return Event{Kind: KindQuit} }
func Unknown() Event { return Event{Kind: KindUnknown} }

// Digit returns a digit event, or Unknown when n is outside 1..9
func Digit(n int) Event {
	if n < 1 || n > 9 {
		return Unknown()
	}
	return Event{Kind: KindDigit, Digit: n}
}

// Char returns a character event
func Char(c rune) Event {
	return Event{Kind: KindChar, Char: c}
}

// Is reports whether the event has the given kind
func (e Event) Is(k Kind) bool {
	return e.Kind == k
}

func (e Event) String() string {
	switch e.Kind {
	case KindDigit:
		return fmt.Sprintf("digit(%d)", e.Digit)
	case KindChar:
		return fmt.Sprintf("char(%q)", e.Char)
	default:
		return e.Kind.String()
	}
}
