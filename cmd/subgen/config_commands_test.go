package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, []string{"config", "init", "--path", target})
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, []string{"config", "init", "--path", target}); err == nil {
		t.Fatal("expected second init without --force to fail")
	}

	out, err = runCLI(t, []string{"config", "show", "--config", target})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[transcriber]")
	requireContains(t, out, "model = 'large-v3'")
}

func TestProcessRejectsMissingInput(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "config.toml")
	contents := "[paths]\n" +
		"work_dir = '" + filepath.Join(base, "work") + "'\n" +
		"output_dir = '" + filepath.Join(base, "out") + "'\n" +
		"log_dir = '" + filepath.Join(base, "logs") + "'\n"
	if err := os.WriteFile(target, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	missing := filepath.Join(base, "no-such-video.mkv")
	_, err := runCLI(t, []string{"process", "--config", target, missing})
	if err == nil {
		t.Fatal("expected process to fail for a missing input file")
	}
}
