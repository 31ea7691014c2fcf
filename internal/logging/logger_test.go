package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subgen/internal/logging"
)

func TestConsoleHandlerOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.WithComponent(logger, "pipeline")
	logger.Info("chunk transcribed", logging.Int(logging.FieldChunk, 2), logging.String("path", "/tmp/a b.mkv"))
	logger.Debug("should be filtered")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(content)
	if !strings.Contains(out, "INFO pipeline: chunk transcribed") {
		t.Fatalf("unexpected console line: %q", out)
	}
	if !strings.Contains(out, `chunk=2`) || !strings.Contains(out, `path="/tmp/a b.mkv"`) {
		t.Fatalf("missing attributes in %q", out)
	}
	if strings.Contains(out, "should be filtered") {
		t.Fatalf("debug record leaked into %q", out)
	}
}

func TestJSONHandlerLowercasesLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")

	logger, err := logging.New(logging.Options{
		Format:      "json",
		Level:       "warn",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("clip delete failed")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"level":"warn"`) {
		t.Fatalf("expected lowercase level in %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
