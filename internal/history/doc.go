// Package history persists a record of transcription runs in a SQLite
// database so past jobs can be listed from the CLI.
//
// Recording is best-effort: history failures are logged by callers and never
// abort the pipeline.
package history
