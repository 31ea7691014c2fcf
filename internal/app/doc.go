// Package app is the top-level façade over the transcription pipeline. It
// enforces the duration cap, records job history, and is the single place
// where failures are collapsed for callers that only want a path-or-nothing
// answer.
package app
