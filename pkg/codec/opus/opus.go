// ABOUTME: Opus frame encoder/decoder implementing the silk codec boundary
// ABOUTME: Wraps hraban/opus with per-stream encoder and decoder instances
package opus

import (
	"fmt"

	"gopkg.in/hraban/opus.v2"

	"github.com/mbmmhk/wechat-voice-to-plist/pkg/silk"
)

// maxPacketBytes is the recommended libopus packet buffer size.
const maxPacketBytes = 4000

// Codec implements silk.Codec using libopus in mono VoIP mode. The
// zero value is ready to use; every stream gets its own encoder or
// decoder instance so concurrent calls never share libopus state.
type Codec struct{}

// New returns an Opus codec for use with silk.Encode and silk.Decode.
func New() Codec {
	return Codec{}
}

// NewFrameEncoder creates a mono Opus encoder for one stream.
func (Codec) NewFrameEncoder(sampleRate int) (silk.FrameEncoder, error) {
	if _, err := silk.FrameSize(sampleRate); err != nil {
		return nil, err
	}

	enc, err := opus.NewEncoder(sampleRate, 1, opus.AppVoIP)
	if err != nil {
		return nil, fmt.Errorf("opus: create encoder: %w", err)
	}

	return &frameEncoder{
		enc: enc,
		buf: make([]byte, maxPacketBytes),
	}, nil
}

// NewFrameDecoder creates a mono Opus decoder for one stream.
func (Codec) NewFrameDecoder(sampleRate int) (silk.FrameDecoder, error) {
	frameSize, err := silk.FrameSize(sampleRate)
	if err != nil {
		return nil, err
	}

	dec, err := opus.NewDecoder(sampleRate, 1)
	if err != nil {
		return nil, fmt.Errorf("opus: create decoder: %w", err)
	}

	return &frameDecoder{
		dec:       dec,
		frameSize: frameSize,
	}, nil
}

type frameEncoder struct {
	enc *opus.Encoder
	buf []byte
}

func (e *frameEncoder) EncodeFrame(pcm []int16) ([]byte, error) {
	n, err := e.enc.Encode(pcm, e.buf)
	if err != nil {
		return nil, fmt.Errorf("opus: encode: %w", err)
	}

	// The scratch buffer is reused across frames; hand out a copy.
	packet := make([]byte, n)
	copy(packet, e.buf[:n])
	return packet, nil
}

func (e *frameEncoder) Close() error { return nil }

type frameDecoder struct {
	dec       *opus.Decoder
	frameSize int
}

func (d *frameDecoder) DecodeFrame(packet []byte) ([]int16, error) {
	pcm := make([]int16, d.frameSize)
	n, err := d.dec.Decode(packet, pcm)
	if err != nil {
		return nil, fmt.Errorf("opus: decode: %w", err)
	}
	return pcm[:n], nil
}

func (d *frameDecoder) Close() error { return nil }
