package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"subgen/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the external tools subgen depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(deps.Defaults(cfg))
			fmt.Fprintln(cmd.OutOrStdout(), renderDepsTable(statuses))

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required binaries: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}

func renderDepsTable(statuses []deps.Status) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Name", "Command", "Status", "Notes"})

	for _, status := range statuses {
		state := "ok"
		if !status.Available {
			state = "missing"
			if status.Optional {
				state = "absent (optional)"
			}
		}
		notes := status.Description
		if status.Detail != "" {
			notes = status.Detail
		}
		tw.AppendRow(table.Row{status.Name, status.Command, state, notes})
	}
	return tw.Render()
}
