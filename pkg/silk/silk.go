// ABOUTME: SILK v3 container constants and error taxonomy
// ABOUTME: Defines the magic header, frame timing and sentinel errors
package silk

import "errors"

// Magic identifies a SILK v3 container stream.
var Magic = []byte("#!SILK_V3")

const (
	// FrameDurationMS is the fixed duration of one codec frame.
	FrameDurationMS = 20

	// MaxPacketSize is the largest packet representable by the uint16
	// record length field.
	MaxPacketSize = 65535

	// streamPrefix is an optional pre-magic byte emitted by Tencent
	// clients (WeChat, QQ). Tolerated and stripped on decode input.
	streamPrefix = 0x02
)

var (
	ErrInvalidSampleRate = errors.New("silk: invalid sample rate")
	ErrEmptyInput        = errors.New("silk: empty pcm input")
	ErrInvalidPCM        = errors.New("silk: pcm byte length must be a multiple of 2")
	ErrPacketTooLarge    = errors.New("silk: packet exceeds uint16 length field")
	ErrTruncatedStream   = errors.New("silk: truncated container stream")
	ErrNilCodec          = errors.New("silk: nil codec")
)

// FrameSize returns the number of samples in one 20 ms frame at the
// given sample rate. Rates that are non-positive or do not yield a
// whole number of samples per frame (rate % 50 != 0) are rejected, so
// the splitter and the codec can never disagree on frame length.
func FrameSize(sampleRate int) (int, error) {
	if sampleRate <= 0 || sampleRate%(1000/FrameDurationMS) != 0 {
		return 0, ErrInvalidSampleRate
	}
	return sampleRate * FrameDurationMS / 1000, nil
}
