// Package terminal owns the hosting terminal's input mode and exposes stdin
// as a byte source with a bounded read timeout.
//
// The raw mode is a scoped resource: WithRawMode puts the terminal in raw
// mode, runs the caller and restores the previous mode exactly once on every
// exit path, including panics. A failed restore is reported as *RestoreError
// and must be treated as fatal by the caller.
package terminal
