// Package logging builds the slog loggers used by the CLI and pipeline.
//
// Two output formats are supported: a compact console format for humans and
// JSON for machine consumption. The "auto" format picks between them based on
// whether stdout is a terminal.
package logging
