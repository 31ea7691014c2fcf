package config

import (
	"errors"
	"fmt"

	"subgen/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranscriber(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTranscriber() error {
	if c.Transcriber.Language == "" {
		return errors.New("transcriber.language must be set")
	}
	if language.ToISO2(c.Transcriber.Language) == "" {
		return fmt.Errorf("transcriber.language %q is not a recognized language code", c.Transcriber.Language)
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.ChunkSeconds <= 0 {
		return errors.New("pipeline.chunk_seconds must be positive")
	}
	if c.Pipeline.MaxDurationHours <= 0 {
		return errors.New("pipeline.max_duration_hours must be positive")
	}
	if float64(c.Pipeline.ChunkSeconds) > c.MaxDurationSeconds() {
		return errors.New("pipeline.chunk_seconds must not exceed the duration cap")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "srt", "vtt":
		return nil
	default:
		return fmt.Errorf("output.format must be \"srt\" or \"vtt\", got %q", c.Output.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"auto\", \"console\", or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not recognized", c.Logging.Level)
	}
}
