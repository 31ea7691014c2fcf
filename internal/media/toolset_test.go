package media

import (
	"context"
	"strings"
	"testing"

	"subgen/internal/media/ffprobe"
)

func TestDurationUsesProbe(t *testing.T) {
	t.Parallel()

	ts := NewToolset("", "")
	ts.WithProbe(func(ctx context.Context, binary, path string) (ffprobe.Result, error) {
		if binary != "ffprobe" {
			t.Fatalf("unexpected binary %q", binary)
		}
		return ffprobe.Result{Format: ffprobe.Format{Duration: "90.5"}}, nil
	})

	seconds, err := ts.Duration(context.Background(), "/tmp/in.mkv")
	if err != nil {
		t.Fatalf("Duration: %v", err)
	}
	if seconds != 90.5 {
		t.Fatalf("Duration = %v", seconds)
	}
}

func TestDurationRejectsUnparseable(t *testing.T) {
	t.Parallel()

	ts := NewToolset("", "")
	ts.WithProbe(func(ctx context.Context, binary, path string) (ffprobe.Result, error) {
		return ffprobe.Result{Format: ffprobe.Format{Duration: "garbage"}}, nil
	})
	if _, err := ts.Duration(context.Background(), "/tmp/in.mkv"); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}

func TestExtractRangeBuildsStreamCopyArgs(t *testing.T) {
	t.Parallel()

	var captured []string
	ts := NewToolset("ffmpeg", "ffprobe")
	ts.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		captured = append([]string{name}, args...)
		return nil
	})

	if err := ts.ExtractRange(context.Background(), "in.mkv", 3600, 1800, "out.mkv"); err != nil {
		t.Fatalf("ExtractRange: %v", err)
	}
	joined := strings.Join(captured, " ")
	for _, want := range []string{"-ss 3600.000", "-t 1800.000", "-c copy", "-i in.mkv", "out.mkv"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("args missing %q: %s", want, joined)
		}
	}
}

func TestExtractRangeRejectsNonPositiveLength(t *testing.T) {
	t.Parallel()

	ts := NewToolset("", "")
	if err := ts.ExtractRange(context.Background(), "in.mkv", 0, 0, "out.mkv"); err == nil {
		t.Fatal("expected error for zero-length window")
	}
}
