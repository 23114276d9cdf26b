// ABOUTME: MP3 file reader and writer
// ABOUTME: Reads via go-mp3 (always 16-bit stereo) and writes via go-lame
package media

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
	"github.com/sjzar/go-lame"

	"github.com/mbmmhk/wechat-voice-to-plist/pkg/audio"
)

// mp3Bitrate is the output bitrate in kbps, matching the low-bitrate
// speech use case.
const mp3Bitrate = 16

func readMP3(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("media: decode mp3 %s: %w", path, err)
	}

	// go-mp3 always emits 16-bit little-endian stereo.
	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("media: read mp3 %s: %w", path, err)
	}

	return &Clip{
		Samples:    audio.DownmixStereo(audio.BytesToSamples(raw)),
		SampleRate: d.SampleRate(),
	}, nil
}

func writeMP3(path string, c *Clip) error {
	le := lame.Init()
	defer le.Close()

	le.SetInSamplerate(c.SampleRate)
	le.SetOutSamplerate(c.SampleRate)
	le.SetNumChannels(1)
	le.SetBitrate(mp3Bitrate)
	le.InitParams()

	data := le.Encode(audio.SamplesToBytes(c.Samples))
	if len(data) == 0 {
		return fmt.Errorf("media: mp3 encode produced no output for %s", path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("media: write %s: %w", path, err)
	}
	return nil
}
