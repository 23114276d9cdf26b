// ABOUTME: Audio fundamentals package providing core PCM types and utilities
// ABOUTME: Defines Format plus 16-bit sample/byte conversion and downmix helpers
// Package audio provides the PCM fundamentals shared by the codec layers.
//
// All audio in this project is 16-bit signed PCM. Buffers move between
// two equivalent representations: little-endian byte slices (the wire
// and file form) and []int16 sample slices (the processing form).
//
// Example:
//
//	samples := audio.BytesToSamples(pcmBytes)
//	mono := audio.DownmixStereo(samples)
//	pcmBytes = audio.SamplesToBytes(mono)
package audio
