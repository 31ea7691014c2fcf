package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"subgen/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent transcription jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			jobs, err := store.List(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jobs recorded yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderJobTable(jobs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum number of jobs to show (0 for all)")
	return cmd
}

func renderJobTable(jobs []*history.Job) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Created", "Status", "Format", "Duration", "Cues", "Source", "Result"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for _, job := range jobs {
		result := job.OutputPath
		if job.Status == history.StatusFailed {
			result = job.ErrorKind
		}
		tw.AppendRow(table.Row{
			job.ID,
			job.CreatedAt.Local().Format("2006-01-02 15:04"),
			job.Status,
			job.Format,
			formatDuration(job.DurationSeconds),
			job.SegmentCount,
			filepath.Base(job.SourcePath),
			result,
		})
	}
	return tw.Render()
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return d.String()
}
