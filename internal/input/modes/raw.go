package modes

import (
	"io"

	"termnav/internal/input"
	"termnav/internal/input/types"
)

// RawSource decodes events from an unbuffered byte stream
type RawSource struct {
	decoder *input.Decoder
	src     io.ByteReader
}

// NewRawSource binds a decoder to a byte source
func NewRawSource(decoder *input.Decoder, src io.ByteReader) *RawSource {
	return &RawSource{decoder: decoder, src: src}
}

// Next decodes the next event
func (s *RawSource) Next() (types.Event, error) {
	return s.decoder.Decode(s.src)
}
