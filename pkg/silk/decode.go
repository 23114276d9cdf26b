// ABOUTME: Decode pipeline orchestrator
// ABOUTME: Parses container records, runs the codec and concatenates PCM frames
package silk

import (
	"fmt"
	"io"

	"github.com/mbmmhk/wechat-voice-to-plist/pkg/audio"
)

// Decode converts a SILK v3 container stream back into raw 16-bit
// signed mono PCM bytes using codec for per-packet decompression. The
// magic header is optional on input; the Tencent 0x02-prefixed variant
// is accepted as well.
//
// The call is all-or-nothing: a malformed stream or a codec failure
// returns (nil, error), never a partial buffer. A header-only stream is
// valid and decodes to an empty buffer.
func Decode(data []byte, sampleRate int, codec Codec) ([]byte, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}
	if _, err := FrameSize(sampleRate); err != nil {
		return nil, err
	}

	dec, err := codec.NewFrameDecoder(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("silk: create frame decoder: %w", err)
	}
	defer dec.Close()

	parser := NewParser(data)
	var out []int16
	for i := 0; ; i++ {
		packet, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		frame, err := dec.DecodeFrame(packet)
		if err != nil {
			return nil, fmt.Errorf("silk: decode packet %d: %w", i, err)
		}
		out = append(out, frame...)
	}

	return audio.SamplesToBytes(out), nil
}
