// Package media wraps the external ffmpeg and ffprobe tools behind a small
// toolset used for duration probing and stream-copy range extraction.
package media
