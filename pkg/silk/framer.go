// ABOUTME: Packet framer for the encode pipeline
// ABOUTME: Assembles the magic header and uint16le length-prefixed records
package silk

import (
	"bytes"
	"encoding/binary"
)

// Writer assembles a container stream in memory: the magic header once,
// then one length-prefixed record per packet in write order. A Writer
// with zero packets yields a valid header-only stream.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates a Writer with the magic header already emitted.
func NewWriter() *Writer {
	w := &Writer{}
	w.buf.Write(Magic)
	return w
}

// WritePacket appends one packet as a uint16le length followed by the
// packet bytes. Packets larger than MaxPacketSize are rejected rather
// than truncated.
func (w *Writer) WritePacket(packet []byte) error {
	if len(packet) > MaxPacketSize {
		return ErrPacketTooLarge
	}

	var length [2]byte
	binary.LittleEndian.PutUint16(length[:], uint16(len(packet)))
	w.buf.Write(length[:])
	w.buf.Write(packet)
	return nil
}

// Len returns the current stream length in bytes.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the assembled container stream.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
