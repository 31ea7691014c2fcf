package app

import (
	"context"
	"fmt"
	"log/slog"

	"subgen/internal/history"
	"subgen/internal/logging"
	"subgen/internal/services"
	"subgen/internal/subtitle"
)

// DurationProber reports the duration of a media file.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Orchestrator assembles the subtitle document for a video.
type Orchestrator interface {
	Transcribe(ctx context.Context, path string) (subtitle.Document, error)
}

// Writer serializes a document to a subtitle file.
type Writer interface {
	Write(doc subtitle.Document, format string) (string, error)
}

// Recorder persists job outcomes. A nil recorder disables history.
type Recorder interface {
	StartJob(ctx context.Context, sourcePath, format string, durationSeconds float64) (*history.Job, error)
	MarkCompleted(ctx context.Context, id int64, outputPath string, segmentCount int) error
	MarkFailed(ctx context.Context, id int64, kind, message string) error
}

// App wires the pipeline components behind a single entry point.
type App struct {
	prober       DurationProber
	orchestrator Orchestrator
	writer       Writer
	recorder     Recorder
	maxSeconds   float64
	logger       *slog.Logger
}

// New creates the façade. maxSeconds is the hard cap on input duration.
func New(prober DurationProber, orchestrator Orchestrator, writer Writer, recorder Recorder, maxSeconds float64, logger *slog.Logger) *App {
	return &App{
		prober:       prober,
		orchestrator: orchestrator,
		writer:       writer,
		recorder:     recorder,
		maxSeconds:   maxSeconds,
		logger:       logging.WithComponent(logger, "app"),
	}
}

// Process transcribes path and writes a subtitle file in the requested
// format, returning the output path. Errors carry the sentinel taxonomy from
// the services package so callers and tests can classify failures.
func (a *App) Process(ctx context.Context, path, format string) (string, error) {
	total, err := a.prober.Duration(ctx, path)
	if err != nil {
		return "", services.Wrap(services.ErrExtraction, "app", "process", "probe duration", err)
	}
	if total > a.maxSeconds {
		return "", services.Wrap(services.ErrDurationExceeded, "app", "process",
			fmt.Sprintf("duration %.0fs exceeds cap %.0fs", total, a.maxSeconds), nil)
	}

	jobID := a.recordStart(ctx, path, format, total)

	doc, err := a.orchestrator.Transcribe(ctx, path)
	if err != nil {
		a.recordFailure(ctx, jobID, err)
		return "", err
	}

	outputPath, err := a.writer.Write(doc, format)
	if err != nil {
		a.recordFailure(ctx, jobID, err)
		return "", err
	}

	a.recordSuccess(ctx, jobID, outputPath, len(doc.Segments))
	a.logger.Info("subtitle file written",
		logging.String(logging.FieldSource, path),
		logging.String("output", outputPath),
		logging.Int("segments", len(doc.Segments)))
	return outputPath, nil
}

// Run preserves the historical external contract: every failure is logged
// and collapsed to an empty path, so nothing propagates to the caller.
func (a *App) Run(ctx context.Context, path, format string) string {
	outputPath, err := a.Process(ctx, path, format)
	if err != nil {
		a.logger.Error("transcription failed",
			logging.String(logging.FieldSource, path),
			logging.String("kind", services.Kind(err)),
			logging.Error(err))
		return ""
	}
	return outputPath
}

// recordStart returns 0 when history is disabled or unavailable.
func (a *App) recordStart(ctx context.Context, path, format string, total float64) int64 {
	if a.recorder == nil {
		return 0
	}
	job, err := a.recorder.StartJob(ctx, path, format, total)
	if err != nil {
		a.logger.Warn("failed to record job start", logging.Error(err))
		return 0
	}
	return job.ID
}

func (a *App) recordSuccess(ctx context.Context, jobID int64, outputPath string, segments int) {
	if a.recorder == nil || jobID == 0 {
		return
	}
	if err := a.recorder.MarkCompleted(ctx, jobID, outputPath, segments); err != nil {
		a.logger.Warn("failed to record job completion", logging.Error(err))
	}
}

func (a *App) recordFailure(ctx context.Context, jobID int64, cause error) {
	if a.recorder == nil || jobID == 0 {
		return
	}
	if err := a.recorder.MarkFailed(ctx, jobID, services.Kind(cause), cause.Error()); err != nil {
		a.logger.Warn("failed to record job failure", logging.Error(err))
	}
}
