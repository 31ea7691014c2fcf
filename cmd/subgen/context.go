package main

import (
	"log/slog"
	"path/filepath"

	"subgen/internal/config"
	"subgen/internal/logging"
)

// commandContext lazily loads configuration and the logger so subcommands
// share one resolved view of both.
type commandContext struct {
	configFlag *string

	cfg        *config.Config
	configPath string
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolvedPath, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.configPath = resolvedPath
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stderr", filepath.Join(cfg.Paths.LogDir, "subgen.log")},
	})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}
