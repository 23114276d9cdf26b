// ABOUTME: WAV file reader and writer
// ABOUTME: Uses go-audio/wav with downmix and bit depth normalization to 16-bit
package media

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/mbmmhk/wechat-voice-to-plist/pkg/audio"
)

func readWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: open %s: %w", path, err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("media: %s is not a valid wav file", path)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("media: decode wav %s: %w", path, err)
	}

	samples := make([]int16, len(buf.Data))
	shift := int(d.BitDepth) - audio.BitDepth
	for i, v := range buf.Data {
		switch {
		case shift > 0:
			samples[i] = int16(v >> shift)
		case shift < 0:
			samples[i] = int16(v << -shift)
		default:
			samples[i] = int16(v)
		}
	}

	return &Clip{
		Samples:    audio.Downmix(samples, buf.Format.NumChannels),
		SampleRate: buf.Format.SampleRate,
	}, nil
}

func writeWAV(path string, c *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("media: create %s: %w", path, err)
	}
	defer f.Close()

	e := wav.NewEncoder(f, c.SampleRate, audio.BitDepth, 1, 1)

	data := make([]int, len(c.Samples))
	for i, s := range c.Samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: audio.BitDepth,
	}
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("media: write wav %s: %w", path, err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("media: finalize wav %s: %w", path, err)
	}
	return nil
}
