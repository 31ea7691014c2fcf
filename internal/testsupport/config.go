// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"subgen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.WorkDir = filepath.Join(base, "work")
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithFormat overrides the default output format on the test config.
func WithFormat(format string) ConfigOption {
	return func(c *config.Config) {
		c.Output.Format = format
	}
}

// WithChunkSeconds overrides the chunking threshold on the test config.
func WithChunkSeconds(seconds int) ConfigOption {
	return func(c *config.Config) {
		c.Pipeline.ChunkSeconds = seconds
	}
}

// WithMaxDurationHours overrides the processing cap on the test config.
func WithMaxDurationHours(hours int) ConfigOption {
	return func(c *config.Config) {
		c.Pipeline.MaxDurationHours = hours
	}
}
