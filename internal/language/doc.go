// Package language normalizes user-supplied language identifiers to the
// two-letter codes the transcription tool expects.
package language
