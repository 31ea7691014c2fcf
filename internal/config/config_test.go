package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subgen/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	loaded, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if loaded.Pipeline.ChunkSeconds != 3600 {
		t.Fatalf("chunk_seconds default = %d", loaded.Pipeline.ChunkSeconds)
	}
	if loaded.Output.Format != "srt" {
		t.Fatalf("output format default = %q", loaded.Output.Format)
	}
	if !filepath.IsAbs(loaded.Paths.WorkDir) {
		t.Fatalf("work dir not expanded: %q", loaded.Paths.WorkDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
work_dir = "` + filepath.Join(dir, "work") + `"
output_dir = "` + filepath.Join(dir, "out") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[transcriber]
language = "French"

[output]
format = "VTT"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Transcriber.Language != "fr" {
		t.Fatalf("language not normalized: %q", cfg.Transcriber.Language)
	}
	if cfg.Output.Format != "vtt" {
		t.Fatalf("format not normalized: %q", cfg.Output.Format)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad format", "[output]\nformat = \"ass\"\n", "output.format"},
		{"bad chunk", "[pipeline]\nchunk_seconds = 0\n", "chunk_seconds"},
		{"bad language", "[transcriber]\nlanguage = \"klingon\"\n", "language"},
		{"bogus two-letter language", "[transcriber]\nlanguage = \"qq\"\n", "language"},
		{"bad log level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[transcriber]") {
		t.Fatal("sample config missing transcriber section")
	}
}
