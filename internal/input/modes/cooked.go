package modes

import (
	"bufio"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"termnav/internal/input"
	"termnav/internal/input/types"
	"termnav/internal/terminal"
)

// words accepted on a line in cooked mode, matched case-sensitively first
// so "G" and "g" can differ
var words = map[string]types.Event{
	"g": types.Home(),
	"G": types.End(),
}

var foldedWords = map[string]types.Event{
	"up":     types.Up(),
	"k":      types.Up(),
	"down":   types.Down(),
	"j":      types.Down(),
	"left":   types.Left(),
	"h":      types.Left(),
	"right":  types.Right(),
	"l":      types.Right(),
	"home":   types.Home(),
	"top":    types.Home(),
	"end":    types.End(),
	"bottom": types.End(),
	"esc":    types.Cancel(),
	"cancel": types.Cancel(),
	"q":      types.Quit(),
	"quit":   types.Quit(),
	"exit":   types.Quit(),
}

type lineResult struct {
	line string
	err  error
}

// LineSource decodes one event per line of line-buffered input
type LineSource struct {
	decoder *input.Decoder
	timeout time.Duration
	lines   chan lineResult
	err     error
}

// NewLineSource starts reading lines from r. A positive timeout makes Next
// return terminal.ErrTimeout when no line arrived in time.
func NewLineSource(r io.Reader, decoder *input.Decoder, timeout time.Duration) *LineSource {
	s := &LineSource{
		decoder: decoder,
		timeout: timeout,
		lines:   make(chan lineResult, 1),
	}
	go s.readLines(r)
	return s
}

func (s *LineSource) readLines(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.lines <- lineResult{line: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	s.lines <- lineResult{err: err}
	close(s.lines)
}

// Next waits for the next line and decodes it
func (s *LineSource) Next() (types.Event, error) {
	if s.err != nil {
		return types.Event{}, s.err
	}

	var res lineResult
	var ok bool
	if s.timeout > 0 {
		timer := time.NewTimer(s.timeout)
		defer timer.Stop()
		select {
		case res, ok = <-s.lines:
		case <-timer.C:
			return types.Event{}, terminal.ErrTimeout
		}
	} else {
		res, ok = <-s.lines
	}

	if !ok {
		s.err = io.EOF
		return types.Event{}, s.err
	}
	if res.err != nil {
		s.err = res.err
		return types.Event{}, s.err
	}
	return DecodeLine(res.line, s.decoder), nil
}

// DecodeLine turns one cooked line into an event. Lines that start with ESC
// are raw sequences echoed through the line discipline and go through the
// byte table; only the first event of such a line counts.
func DecodeLine(line string, decoder *input.Decoder) types.Event {
	line = strings.TrimRight(line, "\r")
	if strings.HasPrefix(line, "\x1b") || strings.HasPrefix(line, "\xe0") {
		events := decoder.DecodeBytes([]byte(line))
		if len(events) == 0 {
			return types.Unknown()
		}
		return events[0]
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return types.Confirm()
	}
	if ev, ok := words[trimmed]; ok {
		return ev
	}
	if ev, ok := foldedWords[strings.ToLower(trimmed)]; ok {
		return ev
	}

	if utf8.RuneCountInString(trimmed) == 1 {
		r, _ := utf8.DecodeRuneInString(trimmed)
		if r >= '1' && r <= '9' {
			return types.Digit(int(r - '0'))
		}
		return types.Char(r)
	}
	return types.Unknown()
}
