// ABOUTME: Clip type plus extension-based read/write dispatch
// ABOUTME: Normalizes every source to mono 16-bit PCM at a known rate
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbmmhk/wechat-voice-to-plist/pkg/audio"
	"github.com/mbmmhk/wechat-voice-to-plist/pkg/audio/resample"
)

// Clip is mono 16-bit PCM at a known sample rate. SampleRate is 0 when
// the source format does not carry one (raw PCM) and must be supplied
// by the caller.
type Clip struct {
	Samples    []int16
	SampleRate int
}

// Duration returns the clip length in seconds, 0 if the rate is unknown.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// ToRate resamples the clip to rate. Clips already at the target rate,
// or with an unknown rate, are returned unchanged.
func (c *Clip) ToRate(rate int) *Clip {
	if rate <= 0 || c.SampleRate == 0 || c.SampleRate == rate {
		return c
	}

	r := resample.New(c.SampleRate, rate, 1)
	out := make([]int16, r.OutputSamplesNeeded(len(c.Samples)))
	n := r.Resample(c.Samples, out)

	return &Clip{Samples: out[:n], SampleRate: rate}
}

// Read loads an audio file by extension: .wav, .mp3, .flac, or raw
// s16le mono PCM for .pcm/.raw. Multi-channel sources are downmixed to
// mono.
func Read(path string) (*Clip, error) {
	switch ext(path) {
	case ".wav":
		return readWAV(path)
	case ".mp3":
		return readMP3(path)
	case ".flac":
		return readFLAC(path)
	case ".pcm", ".raw":
		return readRaw(path)
	default:
		return nil, fmt.Errorf("media: unsupported input format %q", ext(path))
	}
}

// Write stores a clip by extension: .wav, .mp3, or raw s16le for
// .pcm/.raw.
func Write(path string, c *Clip) error {
	switch ext(path) {
	case ".wav":
		return writeWAV(path, c)
	case ".mp3":
		return writeMP3(path, c)
	case ".pcm", ".raw":
		return writeRaw(path, c)
	default:
		return fmt.Errorf("media: unsupported output format %q", ext(path))
	}
}

func readRaw(path string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("media: read %s: %w", path, err)
	}
	return &Clip{Samples: audio.BytesToSamples(data)}, nil
}

func writeRaw(path string, c *Clip) error {
	if err := os.WriteFile(path, audio.SamplesToBytes(c.Samples), 0644); err != nil {
		return fmt.Errorf("media: write %s: %w", path, err)
	}
	return nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
