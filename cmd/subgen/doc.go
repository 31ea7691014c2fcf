// Command subgen transcribes a video's audio into SRT or VTT subtitle files
// using WhisperX, chunking inputs longer than the configured threshold.
package main
