package chunker_test

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"subgen/internal/chunker"
	"subgen/internal/logging"
	"subgen/internal/services"
)

type fakeExtractor struct {
	duration    float64
	durationErr error
	failAt      int // 1-based extraction call to fail on, 0 = never
	calls       int
	windows     [][2]float64
}

func (f *fakeExtractor) Duration(ctx context.Context, path string) (float64, error) {
	if f.durationErr != nil {
		return 0, f.durationErr
	}
	return f.duration, nil
}

func (f *fakeExtractor) ExtractRange(ctx context.Context, source string, start, length float64, dest string) error {
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		return errors.New("extract boom")
	}
	f.windows = append(f.windows, [2]float64{start, length})
	return os.WriteFile(dest, []byte("clip"), 0o644)
}

func TestSplitWindows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		duration float64
		max      float64
		count    int
		lastLen  float64
	}{
		{"partial last", 9000, 3600, 3, 1800},
		{"exact multiple", 7200, 3600, 2, 3600},
		{"single short", 1200, 3600, 1, 1200},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			extractor := &fakeExtractor{duration: tc.duration}
			c := chunker.New(extractor, t.TempDir(), logging.NewNop())
			clips, err := c.Split(context.Background(), "/media/long.mkv", tc.max)
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if len(clips) != tc.count {
				t.Fatalf("clip count = %d, want %d", len(clips), tc.count)
			}
			if got := clips[len(clips)-1].Length; math.Abs(got-tc.lastLen) > 1e-9 {
				t.Fatalf("last clip length = %v, want %v", got, tc.lastLen)
			}

			// Windows must be contiguous, non-overlapping, covering [0, duration).
			expectStart := 0.0
			for i, clip := range clips {
				if math.Abs(clip.Start-expectStart) > 1e-9 {
					t.Fatalf("clip %d starts at %v, want %v", i, clip.Start, expectStart)
				}
				if clip.Index != i {
					t.Fatalf("clip %d carries index %d", i, clip.Index)
				}
				expectStart = clip.End()
			}
			if math.Abs(expectStart-tc.duration) > 1e-9 {
				t.Fatalf("windows cover [0, %v), want [0, %v)", expectStart, tc.duration)
			}
		})
	}
}

func TestSplitProducesUniqueClipFiles(t *testing.T) {
	t.Parallel()

	extractor := &fakeExtractor{duration: 10800}
	c := chunker.New(extractor, t.TempDir(), logging.NewNop())
	clips, err := c.Split(context.Background(), "/media/long.mkv", 3600)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	seen := map[string]struct{}{}
	for _, clip := range clips {
		if _, dup := seen[clip.Path]; dup {
			t.Fatalf("duplicate clip path %q", clip.Path)
		}
		seen[clip.Path] = struct{}{}
		if !strings.HasSuffix(clip.Path, ".mkv") {
			t.Fatalf("clip %q lost the source extension", clip.Path)
		}
		if _, err := os.Stat(clip.Path); err != nil {
			t.Fatalf("clip file missing: %v", err)
		}
	}
}

func TestSplitFailureCleansUpAndReportsWindow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	extractor := &fakeExtractor{duration: 9000, failAt: 2}
	c := chunker.New(extractor, dir, logging.NewNop())

	_, err := c.Split(context.Background(), "/media/long.mkv", 3600)
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if !strings.Contains(err.Error(), "3600.000-7200.000") {
		t.Fatalf("error missing failed window bounds: %v", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read work dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no clips left after failure, found %d", len(entries))
	}
}

func TestSplitPropagatesProbeFailure(t *testing.T) {
	t.Parallel()

	extractor := &fakeExtractor{durationErr: errors.New("probe boom")}
	c := chunker.New(extractor, t.TempDir(), logging.NewNop())
	if _, err := c.Split(context.Background(), "/media/long.mkv", 3600); !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestSplitRejectsNonPositiveMax(t *testing.T) {
	t.Parallel()

	c := chunker.New(&fakeExtractor{duration: 100}, t.TempDir(), logging.NewNop())
	if _, err := c.Split(context.Background(), "/media/in.mkv", 0); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
