// ABOUTME: SILK v3 container package for the #!SILK_V3 stream format
// ABOUTME: Provides frame splitting, packet framing/parsing and Encode/Decode entry points
// Package silk implements the SILK v3 container format used by WeChat
// voice messages: a 9-byte "#!SILK_V3" magic header followed by
// uint16 little-endian length-prefixed packets.
//
// The speech codec itself is not implemented here. Each packet is
// produced and consumed by a FrameCodec collaborator working on fixed
// 20 ms PCM frames; see the Codec interface. The codec/opus package
// ships a ready-made implementation.
//
// Example:
//
//	out, err := silk.Encode(pcmBytes, 24000, myCodec)
//	pcm, err := silk.Decode(out, 24000, myCodec)
//
// Encode and Decode are stateless with respect to prior calls and safe
// for concurrent use: a fresh codec instance is created and closed
// inside every call.
package silk
