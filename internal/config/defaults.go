package config

const (
	defaultWorkDir          = "~/.local/share/subgen/work"
	defaultOutputDir        = "."
	defaultLogDir           = "~/.local/share/subgen/logs"
	defaultModel            = "large-v3"
	defaultLanguage         = "en"
	defaultChunkSeconds     = 3600
	defaultMaxDurationHours = 99
	defaultOutputFormat     = "srt"
	defaultLogFormat        = "auto"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:   defaultWorkDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Transcriber: Transcriber{
			Model:    defaultModel,
			Language: defaultLanguage,
		},
		Pipeline: Pipeline{
			ChunkSeconds:     defaultChunkSeconds,
			MaxDurationHours: defaultMaxDurationHours,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
