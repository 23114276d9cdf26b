// ABOUTME: Opus-backed frame codec for the silk container layer
// ABOUTME: Implements silk.Codec over libopus via hraban/opus
// Package opus provides a silk.Codec implementation backed by libopus.
//
// The container framing is codec-agnostic: packets written through this
// codec carry Opus payloads, not SILK ones, so streams it produces are
// only readable by this module (or anything else that knows the payload
// codec). It exists to give the CLI, the examples and integration tests
// a real lossy codec behind the capability boundary; link a SILK SDK
// binding behind silk.Codec to produce WeChat-compatible streams.
//
// Supported sample rates are those libopus accepts in mono: 8000,
// 12000, 16000, 24000 and 48000 Hz.
package opus
