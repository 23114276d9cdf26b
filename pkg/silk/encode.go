// ABOUTME: Encode pipeline orchestrator
// ABOUTME: Splits PCM into frames, runs the codec and assembles the container stream
package silk

import (
	"fmt"

	"github.com/mbmmhk/wechat-voice-to-plist/pkg/audio"
)

// Encode converts raw 16-bit signed mono PCM bytes into a SILK v3
// container stream using codec for per-frame compression.
//
// The call is all-or-nothing: any failure returns (nil, error) and no
// partial stream. A trailing partial frame is zero-padded before
// encoding; decoding cannot distinguish that padding from recorded
// silence, so round trips may grow by up to one frame of silence.
func Encode(pcm []byte, sampleRate int, codec Codec) ([]byte, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}
	if len(pcm) == 0 {
		return nil, ErrEmptyInput
	}
	if len(pcm)%audio.BytesPerSample != 0 {
		return nil, ErrInvalidPCM
	}

	splitter, err := NewSplitter(audio.BytesToSamples(pcm), sampleRate)
	if err != nil {
		return nil, err
	}

	enc, err := codec.NewFrameEncoder(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("silk: create frame encoder: %w", err)
	}
	defer enc.Close()

	w := NewWriter()
	for i := 0; ; i++ {
		frame, ok := splitter.Next()
		if !ok {
			break
		}

		packet, err := enc.EncodeFrame(frame)
		if err != nil {
			return nil, fmt.Errorf("silk: encode frame %d: %w", i, err)
		}
		if err := w.WritePacket(packet); err != nil {
			return nil, fmt.Errorf("silk: frame %d: %w", i, err)
		}
	}

	return w.Bytes(), nil
}
