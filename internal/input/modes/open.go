// Package modes provides the event sources for the two terminal input
// modes: raw byte decoding and cooked line decoding.
package modes

import (
	"os"
	"time"

	"termnav/internal/input"
	"termnav/internal/input/types"
	"termnav/internal/terminal"
)

// Resolve turns ModeAuto into a concrete mode for the given input file
func Resolve(mode types.Mode, in *os.File) types.Mode {
	if mode != types.ModeAuto {
		return mode
	}
	if terminal.IsTerminal(in) {
		return types.ModeRaw
	}
	return types.ModeCooked
}

// Open builds the event source for a resolved mode. Raw mode expects the
// terminal to already be in raw mode (see terminal.WithRawMode).
func Open(mode types.Mode, in *os.File, decoder *input.Decoder, poll time.Duration) types.EventSource {
	if mode == types.ModeCooked {
		return NewLineSource(in, decoder, poll)
	}
	return NewRawSource(decoder, terminal.NewReader(in, poll))
}
