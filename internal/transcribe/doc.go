// Package transcribe drives the WhisperX speech-recognition CLI and converts
// its JSON output into subtitle segments.
package transcribe
