// ABOUTME: Frame codec capability boundary consumed by the container layer
// ABOUTME: Defines FrameEncoder, FrameDecoder and the Codec factory interface
package silk

// FrameEncoder compresses one fixed-duration PCM frame per call.
// Implementations may keep internal state across frames of a single
// stream; the container layer feeds frames in temporal order and calls
// Close when the stream ends.
type FrameEncoder interface {
	// EncodeFrame compresses one frame of mono 16-bit samples into an
	// opaque packet.
	EncodeFrame(pcm []int16) ([]byte, error)

	// Close releases encoder resources.
	Close() error
}

// FrameDecoder decompresses one packet per call, in stream order.
type FrameDecoder interface {
	// DecodeFrame decompresses one packet into mono 16-bit samples.
	DecodeFrame(packet []byte) ([]int16, error)

	// Close releases decoder resources.
	Close() error
}

// Codec constructs per-stream frame encoders and decoders. Encode and
// Decode request a fresh instance for every call and close it before
// returning, so a Codec value itself must be safe to share while the
// instances it hands out need not be.
type Codec interface {
	NewFrameEncoder(sampleRate int) (FrameEncoder, error)
	NewFrameDecoder(sampleRate int) (FrameDecoder, error)
}
