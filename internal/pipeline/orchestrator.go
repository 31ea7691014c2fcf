package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"subgen/internal/chunker"
	"subgen/internal/logging"
	"subgen/internal/services"
	"subgen/internal/subtitle"
)

// DurationProber reports the duration of a media file.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Splitter produces clips covering a media file.
type Splitter interface {
	Split(ctx context.Context, path string, maxSeconds float64) ([]chunker.Clip, error)
}

// Transcriber converts one media file into timed segments.
type Transcriber interface {
	Transcribe(ctx context.Context, source string) ([]subtitle.Segment, error)
}

// Orchestrator assembles a subtitle document for a single video.
type Orchestrator struct {
	prober       DurationProber
	splitter     Splitter
	transcriber  Transcriber
	chunkSeconds float64
	logger       *slog.Logger
}

// New creates an Orchestrator. Videos longer than chunkSeconds are split into
// windows of at most chunkSeconds before transcription.
func New(prober DurationProber, splitter Splitter, transcriber Transcriber, chunkSeconds float64, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		prober:       prober,
		splitter:     splitter,
		transcriber:  transcriber,
		chunkSeconds: chunkSeconds,
		logger:       logging.WithComponent(logger, "pipeline"),
	}
}

// Transcribe produces the full subtitle document for path. Short videos are
// transcribed in one call with the original path; long videos are split,
// transcribed clip by clip, and each clip's segment times are rebased by the
// clip's offset before the combined list is stable-sorted by start time.
// Clip files are removed on every exit path. Nothing is retried.
func (o *Orchestrator) Transcribe(ctx context.Context, path string) (subtitle.Document, error) {
	total, err := o.prober.Duration(ctx, path)
	if err != nil {
		return subtitle.Document{}, services.Wrap(services.ErrExtraction, "pipeline", "transcribe", "probe duration", err)
	}

	if total <= o.chunkSeconds {
		segments, err := o.transcriber.Transcribe(ctx, path)
		if err != nil {
			return subtitle.Document{}, services.Wrap(services.ErrTranscription, "pipeline", "transcribe", path, err)
		}
		doc := subtitle.Document{Segments: segments}
		doc.Sort()
		return doc, nil
	}

	clips, err := o.splitter.Split(ctx, path, o.chunkSeconds)
	if err != nil {
		return subtitle.Document{}, err
	}

	var merged []subtitle.Segment
	for i, clip := range clips {
		segments, err := o.transcriber.Transcribe(ctx, clip.Path)
		o.removeClip(clip)
		if err != nil {
			o.removeClips(clips[i+1:])
			detail := fmt.Sprintf("chunk %d/%d: %s", i+1, len(clips), clip.Path)
			return subtitle.Document{}, services.Wrap(services.ErrTranscription, "pipeline", "transcribe", detail, err)
		}
		for _, segment := range segments {
			merged = append(merged, segment.Shifted(clip.Start))
		}
		o.logger.Info("chunk transcribed",
			logging.Int(logging.FieldChunk, i+1),
			logging.Int("chunks", len(clips)),
			logging.Int("segments", len(segments)))
	}

	doc := subtitle.Document{Segments: merged}
	doc.Sort()
	return doc, nil
}

func (o *Orchestrator) removeClip(clip chunker.Clip) {
	if err := os.Remove(clip.Path); err != nil && !os.IsNotExist(err) {
		// A leaked clip wastes disk but must not abort the document.
		o.logger.Warn("failed to remove clip",
			logging.String("path", clip.Path),
			logging.Error(services.Wrap(services.ErrFilesystem, "pipeline", "cleanup", clip.Path, err)))
	}
}

func (o *Orchestrator) removeClips(clips []chunker.Clip) {
	for _, clip := range clips {
		o.removeClip(clip)
	}
}
