// Package input decodes keyboard input into navigation events.
//
// Decoding is a table-driven state machine over single bytes. A Table holds
// the transitions for one platform convention; the POSIX CSI table and the
// virtual-key table produce the same event set, so nothing downstream needs
// to know which one is in use.
package input

import (
	"io"

	"termnav/internal/input/types"
	"termnav/internal/terminal"
)

type state uint8

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateVirtualKey
)

// step is one table entry: either emit an event or move to the next state
type step struct {
	next  state
	event types.Event
	emit  bool
}

func emit(ev types.Event) step { return step{event: ev, emit: true} }
func moveTo(next state) step   { return step{next: next} }

// Table maps (state, byte) pairs to transitions. Pairs missing from the
// table decode to Unknown.
type Table struct {
	name     string
	steps    map[state]map[byte]step
	timeouts map[state]types.Event
}

func newTable(name string) *Table {
	t := &Table{
		name:     name,
		steps:    make(map[state]map[byte]step),
		timeouts: make(map[state]types.Event),
	}

	// Shared ground rules
	for b := byte(0x20); b < 0x7f; b++ {
		t.on(stateGround, b, emit(types.Char(rune(b))))
	}
	for n := 1; n <= 9; n++ {
		t.on(stateGround, byte('0'+n), emit(types.Digit(n)))
	}
	t.on(stateGround, 'q', emit(types.Quit()))
	t.on(stateGround, 'Q', emit(types.Quit()))
	t.on(stateGround, 0x03, emit(types.Quit()))
	t.on(stateGround, '\r', emit(types.Confirm()))
	t.on(stateGround, '\n', emit(types.Confirm()))
	return t
}

func (t *Table) on(st state, b byte, s step) {
	m, ok := t.steps[st]
	if !ok {
		m = make(map[byte]step)
		t.steps[st] = m
	}
	m[b] = s
}

func (t *Table) lookup(st state, b byte) (step, bool) {
	s, ok := t.steps[st][b]
	return s, ok
}

// Name returns the table name used in logs and config
func (t *Table) Name() string {
	return t.name
}

// Decoder turns a byte stream into events using one table
type Decoder struct {
	table *Table
}

// NewDecoder creates a decoder for the given table
func NewDecoder(t *Table) *Decoder {
	return &Decoder{table: t}
}

// Table returns the decoder's table
func (d *Decoder) Table() *Table {
	return d.table
}

// Decode reads the minimum number of bytes from src needed to resolve one
// event. Unrecognized sequences decode to Unknown and the bytes read so far
// are dropped. A terminal.ErrTimeout in the middle of a sequence resolves it
// with the table's timeout event (a lone ESC becomes Cancel); any other
// source error is returned as is.
func (d *Decoder) Decode(src io.ByteReader) (types.Event, error) {
	st := stateGround
	for {
		b, err := src.ReadByte()
		if err != nil {
			if st != stateGround && terminal.IsTimeout(err) {
				return d.table.timeouts[st], nil
			}
			return types.Event{}, err
		}

		s, ok := d.table.lookup(st, b)
		if !ok {
			return types.Unknown(), nil
		}
		if s.emit {
			return s.event, nil
		}
		st = s.next
	}
}

// DecodeBytes decodes a complete buffer. The end of the buffer is treated
// as a read timeout so a trailing lone ESC decodes to Cancel.
func (d *Decoder) DecodeBytes(data []byte) []types.Event {
	src := &sliceSource{data: data}
	var events []types.Event
	for {
		ev, err := d.Decode(src)
		if err != nil {
			return events
		}
		events = append(events, ev)
	}
}

type sliceSource struct {
	data []byte
	pos  int
}

func (s *sliceSource) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, terminal.ErrTimeout
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}
