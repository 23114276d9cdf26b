// ABOUTME: Tests for the packet framer
// ABOUTME: Tests header emission, record layout and the packet size limit
package silk

import (
	"bytes"
	"testing"
)

func TestWriterHeaderOnly(t *testing.T) {
	w := NewWriter()

	out := w.Bytes()
	if !bytes.Equal(out, []byte("#!SILK_V3")) {
		t.Errorf("expected header-only stream, got %v", out)
	}
}

func TestWriterRecordLayout(t *testing.T) {
	w := NewWriter()

	if err := w.WritePacket([]byte{0xAA, 0xBB, 0xCC}); err != nil {
		t.Fatalf("failed to write packet: %v", err)
	}
	if err := w.WritePacket([]byte{0x01}); err != nil {
		t.Fatalf("failed to write packet: %v", err)
	}

	expected := append([]byte("#!SILK_V3"),
		0x03, 0x00, 0xAA, 0xBB, 0xCC, // record 1
		0x01, 0x00, 0x01, // record 2
	)
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, w.Bytes())
	}
}

func TestWriterEmptyPacket(t *testing.T) {
	w := NewWriter()

	if err := w.WritePacket(nil); err != nil {
		t.Fatalf("failed to write empty packet: %v", err)
	}

	expected := append([]byte("#!SILK_V3"), 0x00, 0x00)
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, w.Bytes())
	}
}

func TestWriterPacketTooLarge(t *testing.T) {
	w := NewWriter()
	before := w.Len()

	err := w.WritePacket(make([]byte, MaxPacketSize+1))
	if err != ErrPacketTooLarge {
		t.Fatalf("expected ErrPacketTooLarge, got %v", err)
	}
	if w.Len() != before {
		t.Error("rejected packet must not modify the stream")
	}
}

func TestWriterMaxSizePacket(t *testing.T) {
	w := NewWriter()

	if err := w.WritePacket(make([]byte, MaxPacketSize)); err != nil {
		t.Fatalf("packet of exactly MaxPacketSize must be accepted: %v", err)
	}
	if w.Len() != len(Magic)+2+MaxPacketSize {
		t.Errorf("unexpected stream length %d", w.Len())
	}
}
