package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	langpkg "subgen/internal/language"
	"subgen/internal/subtitle"
)

// Service invokes WhisperX through uvx.
type Service struct {
	cfg           Config
	outputDir     string
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a WhisperX service writing tool output into outputDir.
func NewService(cfg Config, outputDir string) *Service {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if lang := langpkg.ToISO2(cfg.Language); lang != "" {
		cfg.Language = lang
	} else {
		cfg.Language = DefaultLanguage
	}
	return &Service{cfg: cfg, outputDir: outputDir}
}

// DetectCUDA reports whether an NVIDIA accelerator appears usable. The probe
// only checks for nvidia-smi on PATH.
func DetectCUDA() bool {
	_, err := exec.LookPath(NvidiaSMICommand)
	return err == nil
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

// CUDAEnabled returns whether GPU transcription is active.
func (s *Service) CUDAEnabled() bool {
	return s.cfg.CUDAEnabled
}

// Transcribe runs WhisperX over the source media file and returns the timed
// segments it produced. Times are relative to the start of the source file.
func (s *Service) Transcribe(ctx context.Context, source string) ([]subtitle.Segment, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("transcribe: source path required")
	}

	// WhisperX names its payload after the source basename, so each
	// invocation gets its own scratch directory. Concurrent runs over
	// sources with the same basename must not read each other's payload.
	runDir := filepath.Join(s.outputDir, uuid.NewString())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("transcribe: ensure output dir: %w", err)
	}
	defer os.RemoveAll(runDir)

	args := s.buildArgs(source, runDir)
	if err := s.run(ctx, UVXCommand, args...); err != nil {
		return nil, fmt.Errorf("whisperx: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	segments, err := LoadSegments(filepath.Join(runDir, baseName+".json"))
	if err != nil {
		return nil, fmt.Errorf("whisperx output: %w", err)
	}
	return segments, nil
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// buildArgs constructs the uvx command arguments for WhisperX.
func (s *Service) buildArgs(source, outputDir string) []string {
	args := make([]string, 0, 24)

	if s.cfg.CUDAEnabled {
		args = append(args,
			"--index-url", CUDAIndexURL,
			"--extra-index-url", PypiIndexURL,
		)
	} else {
		args = append(args, "--index-url", PypiIndexURL)
	}

	args = append(args,
		"whisperx",
		source,
		"--model", s.cfg.Model,
		"--batch_size", BatchSize,
		"--beam_size", BeamSize,
		"--temperature", Temperature,
		"--output_dir", outputDir,
		"--output_format", OutputFormat,
		"--language", s.cfg.Language,
	)

	if s.cfg.CUDAEnabled {
		args = append(args, "--device", CUDADevice, "--compute_type", CUDAComputeType)
	} else {
		args = append(args, "--device", CPUDevice, "--compute_type", CPUComputeType)
	}

	return args
}

type whisperXPayload struct {
	Segments []subtitle.Segment `json:"segments"`
}

// LoadSegments loads segments from a WhisperX JSON file.
func LoadSegments(jsonPath string) ([]subtitle.Segment, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, err
	}
	var payload whisperXPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse whisperx json: %w", err)
	}
	return payload.Segments, nil
}
