// Package workspace manages the scratch directory that holds chunk files,
// with flock-based locking so cleanup cannot race a live transcription run.
package workspace
