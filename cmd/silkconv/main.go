// ABOUTME: Entry point for the silkconv converter
// ABOUTME: Parses CLI flags and converts between audio files and SILK v3 streams
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbmmhk/wechat-voice-to-plist/internal/media"
	"github.com/mbmmhk/wechat-voice-to-plist/pkg/audio"
	"github.com/mbmmhk/wechat-voice-to-plist/pkg/codec/opus"
	"github.com/mbmmhk/wechat-voice-to-plist/pkg/silk"
)

var (
	in   = flag.String("in", "", "Input file (.silk to decode; .wav/.mp3/.flac/.pcm to encode)")
	out  = flag.String("out", "", "Output file (.silk to encode; .wav/.mp3/.pcm to decode)")
	rate = flag.Int("rate", 24000, "Sample rate of the SILK stream (and of raw PCM files)")
)

func main() {
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	inSilk := isSilk(*in)
	outSilk := isSilk(*out)
	if inSilk == outSilk {
		log.Fatalf("exactly one of -in/-out must be a .silk file (in=%s out=%s)", *in, *out)
	}

	codec := opus.New()

	if outSilk {
		if err := encodeFile(*in, *out, *rate, codec); err != nil {
			log.Fatalf("encode error: %v", err)
		}
	} else {
		if err := decodeFile(*in, *out, *rate, codec); err != nil {
			log.Fatalf("decode error: %v", err)
		}
	}
}

func encodeFile(in, out string, rate int, codec silk.Codec) error {
	clip, err := media.Read(in)
	if err != nil {
		return err
	}
	if clip.SampleRate == 0 {
		// Raw PCM carries no rate; trust the flag.
		clip.SampleRate = rate
	}
	clip = clip.ToRate(rate)

	log.Printf("Encoding %s: %.2fs at %d Hz", in, clip.Duration(), rate)

	stream, err := silk.Encode(audio.SamplesToBytes(clip.Samples), rate, codec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, stream, 0644); err != nil {
		return err
	}

	log.Printf("Wrote %s: %d bytes", out, len(stream))
	return nil
}

func decodeFile(in, out string, rate int, codec silk.Codec) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	pcm, err := silk.Decode(data, rate, codec)
	if err != nil {
		return err
	}

	clip := &media.Clip{Samples: audio.BytesToSamples(pcm), SampleRate: rate}
	log.Printf("Decoding %s: %.2fs at %d Hz", in, clip.Duration(), rate)

	if err := media.Write(out, clip); err != nil {
		return err
	}

	log.Printf("Wrote %s: %d samples", out, len(clip.Samples))
	return nil
}

func isSilk(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".silk"
}
