// ABOUTME: Audio type definitions
// ABOUTME: Defines the Format descriptor and 16-bit PCM conversion functions
package audio

const (
	// BitDepth is the only sample width handled by this project.
	BitDepth = 16

	// BytesPerSample is the byte width of one 16-bit sample.
	BytesPerSample = 2
)

// Format describes a PCM stream.
type Format struct {
	SampleRate int
	Channels   int
}

// Mono reports whether the format carries a single channel.
func (f Format) Mono() bool {
	return f.Channels == 1
}

// BytesToSamples converts little-endian PCM bytes to int16 samples.
// A trailing odd byte, if present, is ignored; callers that care must
// validate buffer length themselves.
func BytesToSamples(b []byte) []int16 {
	samples := make([]int16, len(b)/BytesPerSample)
	for i := range samples {
		samples[i] = int16(b[i*2]) | int16(b[i*2+1])<<8
	}
	return samples
}

// SamplesToBytes converts int16 samples to little-endian PCM bytes.
func SamplesToBytes(samples []int16) []byte {
	b := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		b[i*2] = byte(s)
		b[i*2+1] = byte(s >> 8)
	}
	return b
}

// DownmixStereo mixes interleaved stereo samples down to mono by
// averaging each left/right pair. A trailing unpaired sample is dropped.
func DownmixStereo(stereo []int16) []int16 {
	mono := make([]int16, len(stereo)/2)
	for i := range mono {
		l := int32(stereo[i*2])
		r := int32(stereo[i*2+1])
		mono[i] = int16((l + r) / 2)
	}
	return mono
}

// Downmix mixes interleaved multi-channel samples down to mono by
// averaging across channels. channels must be at least 1; mono input is
// returned unchanged.
func Downmix(samples []int16, channels int) []int16 {
	if channels <= 1 {
		return samples
	}
	if channels == 2 {
		return DownmixStereo(samples)
	}
	mono := make([]int16, len(samples)/channels)
	for i := range mono {
		var sum int32
		for ch := 0; ch < channels; ch++ {
			sum += int32(samples[i*channels+ch])
		}
		mono[i] = int16(sum / int32(channels))
	}
	return mono
}
