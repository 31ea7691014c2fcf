package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subgen/internal/app"
	"subgen/internal/chunker"
	"subgen/internal/history"
	"subgen/internal/logging"
	"subgen/internal/media"
	"subgen/internal/pipeline"
	"subgen/internal/subtitle"
	"subgen/internal/transcribe"
	"subgen/internal/workspace"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "process <path>",
		Short: "Transcribe a video and write a subtitle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			info, err := os.Stat(absPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file does not exist: %s", absPath)
				}
				return fmt.Errorf("inspect file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", absPath)
			}

			format := formatFlag
			if format == "" {
				format = cfg.Output.Format
			}

			ws := workspace.New(cfg.Paths.WorkDir)
			release, err := ws.AcquireShared()
			if err != nil {
				return err
			}
			defer release()

			toolset := media.NewToolset(cfg.FFmpegBinary(), cfg.FFprobeBinary())

			cudaEnabled := cfg.Transcriber.CUDAEnabled
			if !cudaEnabled {
				cudaEnabled = transcribe.DetectCUDA()
			}
			transcriber := transcribe.NewService(transcribe.Config{
				Model:       cfg.Transcriber.Model,
				Language:    cfg.Transcriber.Language,
				CUDAEnabled: cudaEnabled,
			}, ws.Dir())
			logger.Info("transcriber ready",
				logging.String("model", transcriber.Model()),
				logging.Bool("cuda", transcriber.CUDAEnabled()))

			split := chunker.New(toolset, ws.Dir(), logger)
			orchestrator := pipeline.New(toolset, split, transcriber, cfg.ChunkThresholdSeconds(), logger)
			writer := subtitle.NewWriter(cfg.Paths.OutputDir)

			var recorder app.Recorder
			store, err := history.Open(cfg)
			if err != nil {
				logger.Warn("job history unavailable", logging.Error(err))
			} else {
				defer store.Close()
				recorder = store
			}

			facade := app.New(toolset, orchestrator, writer, recorder, cfg.MaxDurationSeconds(), logger)
			outputPath, err := facade.Process(cmd.Context(), absPath, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Subtitle format: srt or vtt (defaults to the configured format)")
	return cmd
}
