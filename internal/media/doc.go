// ABOUTME: Media file ingestion and egress for the converter CLI
// ABOUTME: Reads wav/mp3/flac/raw into mono 16-bit PCM and writes wav/mp3/raw back out
// Package media loads audio files into mono 16-bit PCM clips and writes
// decoded clips back to disk. It exists for the silkconv CLI; the silk
// library itself never touches the filesystem.
package media
