package chunker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"subgen/internal/logging"
	"subgen/internal/services"
)

// Clip is a temporary media file covering one window of the original video.
// The consumer owns the file and must remove it when done.
type Clip struct {
	Path   string
	Index  int
	Start  float64
	Length float64
}

// End returns the exclusive end of the clip's window in the original timeline.
func (c Clip) End() float64 {
	return c.Start + c.Length
}

// Extractor is the media collaborator the chunker drives.
type Extractor interface {
	Duration(ctx context.Context, path string) (float64, error)
	ExtractRange(ctx context.Context, source string, start, length float64, dest string) error
}

// Chunker produces clips in a work directory.
type Chunker struct {
	extractor Extractor
	workDir   string
	logger    *slog.Logger
}

// New creates a Chunker writing clips into workDir.
func New(extractor Extractor, workDir string, logger *slog.Logger) *Chunker {
	return &Chunker{
		extractor: extractor,
		workDir:   workDir,
		logger:    logging.WithComponent(logger, "chunker"),
	}
}

// Split partitions [0, duration) into consecutive windows of maxSeconds (the
// last window may be shorter) and stream-copies each window into its own
// uniquely named clip file. A failed extraction aborts the whole split,
// removes any clips already produced, and reports the failed window's bounds.
func (c *Chunker) Split(ctx context.Context, path string, maxSeconds float64) ([]Clip, error) {
	if maxSeconds <= 0 {
		return nil, services.Wrap(services.ErrValidation, "chunker", "split", fmt.Sprintf("non-positive max duration %v", maxSeconds), nil)
	}

	total, err := c.extractor.Duration(ctx, path)
	if err != nil {
		return nil, services.Wrap(services.ErrExtraction, "chunker", "split", "probe duration", err)
	}

	if err := os.MkdirAll(c.workDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "chunker", "split", "ensure work directory", err)
	}

	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".mkv"
	}

	var clips []Clip
	for start := 0.0; start < total; start += maxSeconds {
		length := maxSeconds
		if remaining := total - start; remaining < length {
			length = remaining
		}
		dest := filepath.Join(c.workDir, uuid.NewString()+ext)
		if err := c.extractor.ExtractRange(ctx, path, start, length, dest); err != nil {
			removeClips(clips, c.logger)
			detail := fmt.Sprintf("window %.3f-%.3f", start, start+length)
			return nil, services.Wrap(services.ErrExtraction, "chunker", "split", detail, err)
		}
		clips = append(clips, Clip{Path: dest, Index: len(clips), Start: start, Length: length})
		c.logger.Debug("clip extracted",
			logging.Int(logging.FieldChunk, len(clips)),
			logging.Float64("start", start),
			logging.Float64("length", length))
	}
	return clips, nil
}

func removeClips(clips []Clip, logger *slog.Logger) {
	for _, clip := range clips {
		if err := os.Remove(clip.Path); err != nil && !os.IsNotExist(err) {
			logger.Warn("failed to remove clip", logging.String("path", clip.Path), logging.Error(err))
		}
	}
}
