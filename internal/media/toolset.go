package media

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"subgen/internal/media/ffprobe"
)

// Toolset executes ffmpeg and ffprobe for the pipeline. It implements the
// duration and extraction collaborators the chunker and orchestrator consume.
type Toolset struct {
	ffmpegBinary  string
	ffprobeBinary string
	commandRunner func(ctx context.Context, name string, args ...string) error
	probe         func(ctx context.Context, binary, path string) (ffprobe.Result, error)
}

// NewToolset creates a toolset using the given binary names. Empty names fall
// back to the binaries on PATH.
func NewToolset(ffmpegBinary, ffprobeBinary string) *Toolset {
	if strings.TrimSpace(ffmpegBinary) == "" {
		ffmpegBinary = "ffmpeg"
	}
	if strings.TrimSpace(ffprobeBinary) == "" {
		ffprobeBinary = "ffprobe"
	}
	return &Toolset{
		ffmpegBinary:  ffmpegBinary,
		ffprobeBinary: ffprobeBinary,
		probe:         ffprobe.Inspect,
	}
}

// WithCommandRunner sets a custom ffmpeg runner (for testing).
func (t *Toolset) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	t.commandRunner = runner
}

// WithProbe sets a custom ffprobe implementation (for testing).
func (t *Toolset) WithProbe(probe func(ctx context.Context, binary, path string) (ffprobe.Result, error)) {
	t.probe = probe
}

// Duration returns the container duration of path in seconds.
func (t *Toolset) Duration(ctx context.Context, path string) (float64, error) {
	result, err := t.probe(ctx, t.ffprobeBinary, path)
	if err != nil {
		return 0, err
	}
	seconds := result.DurationSeconds()
	if math.IsNaN(seconds) || seconds < 0 {
		return 0, fmt.Errorf("ffprobe duration: unparseable value %q for %s", result.Format.Duration, path)
	}
	return seconds, nil
}

// ExtractRange copies the [start, start+length) window of source into dest
// using stream copy, avoiding a re-encode.
func (t *Toolset) ExtractRange(ctx context.Context, source string, start, length float64, dest string) error {
	if length <= 0 {
		return fmt.Errorf("extract range: invalid length %v", length)
	}
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", formatSeconds(start),
		"-t", formatSeconds(length),
		"-i", source,
		"-map", "0",
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		dest,
	}
	return t.run(ctx, t.ffmpegBinary, args...)
}

func (t *Toolset) run(ctx context.Context, name string, args ...string) error {
	if t.commandRunner != nil {
		return t.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 3, 64)
}
