// ABOUTME: Header scan and packet parser for the decode pipeline
// ABOUTME: Strips optional magic variants and iterates uint16le length-prefixed records
package silk

import (
	"bytes"
	"encoding/binary"
	"io"
)

// StripHeader removes the magic header from the start of data if
// present and returns the remaining record stream. Both the bare
// 9-byte magic and the Tencent variant with a leading 0x02 byte are
// recognized. Headerless input is returned unchanged: the container
// contract treats the header as optional on decode.
func StripHeader(data []byte) []byte {
	if len(data) > 0 && data[0] == streamPrefix && bytes.HasPrefix(data[1:], Magic) {
		return data[1+len(Magic):]
	}
	if bytes.HasPrefix(data, Magic) {
		return data[len(Magic):]
	}
	return data
}

// Parser iterates the records of a container stream in order. It is a
// single-pass reader: once Next has returned an error it stays at the
// end of the stream.
type Parser struct {
	data []byte
	pos  int
}

// NewParser creates a parser over data, stripping the optional magic
// header first.
func NewParser(data []byte) *Parser {
	return &Parser{data: StripHeader(data)}
}

// Next returns the next packet. It returns io.EOF at the clean end of
// the stream and ErrTruncatedStream when a length field is cut short or
// declares more payload bytes than remain. Zero-length records are
// legal and yield an empty packet.
func (p *Parser) Next() ([]byte, error) {
	remaining := len(p.data) - p.pos
	if remaining == 0 {
		return nil, io.EOF
	}
	if remaining < 2 {
		p.pos = len(p.data)
		return nil, ErrTruncatedStream
	}

	length := int(binary.LittleEndian.Uint16(p.data[p.pos:]))
	p.pos += 2

	if length > len(p.data)-p.pos {
		p.pos = len(p.data)
		return nil, ErrTruncatedStream
	}

	packet := p.data[p.pos : p.pos+length]
	p.pos += length
	return packet, nil
}
