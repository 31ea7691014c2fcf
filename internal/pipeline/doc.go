// Package pipeline coordinates probing, chunking, and transcription into a
// single ordered subtitle document.
//
// Execution is strictly sequential: each chunk is extracted, transcribed, and
// deleted before the next begins, so at most one chunk occupies scratch disk
// at a time.
package pipeline
