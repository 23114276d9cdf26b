// ABOUTME: Simple linear resampler for converting audio sample rates
// ABOUTME: Used to convert between different sample rates using linear interpolation
// Package resample converts 16-bit PCM between sample rates using
// linear interpolation. Quality is adequate for speech; callers that
// need transparent music resampling should use a dedicated DSP library.
package resample
