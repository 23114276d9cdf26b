// ABOUTME: FLAC file reader
// ABOUTME: Uses mewkiz/flac frame iteration with downmix and 16-bit normalization
package media

import (
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"

	"github.com/mbmmhk/wechat-voice-to-plist/pkg/audio"
)

func readFLAC(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: open %s: %w", path, err)
	}
	defer f.Close()

	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("media: decode flac %s: %w", path, err)
	}

	channels := int(stream.Info.NChannels)
	shift := int(stream.Info.BitsPerSample) - audio.BitDepth

	var samples []int16
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("media: parse flac frame in %s: %w", path, err)
		}

		// Subframes are per channel; downmix by averaging across them.
		n := frame.Subframes[0].NSamples
		for i := 0; i < n; i++ {
			var sum int64
			for ch := 0; ch < channels; ch++ {
				sum += int64(frame.Subframes[ch].Samples[i])
			}
			v := sum / int64(channels)
			switch {
			case shift > 0:
				v >>= shift
			case shift < 0:
				v <<= -shift
			}
			samples = append(samples, int16(v))
		}
	}

	return &Clip{
		Samples:    samples,
		SampleRate: int(stream.Info.SampleRate),
	}, nil
}
