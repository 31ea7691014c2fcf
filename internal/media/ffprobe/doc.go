// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video stream properties
//   - Format: container-level metadata such as duration
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result
package ffprobe
