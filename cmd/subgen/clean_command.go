package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subgen/internal/workspace"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove stale chunk files left by crashed runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			removed, err := workspace.New(cfg.Paths.WorkDir).Clean()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d stale file(s) from %s\n", removed, cfg.Paths.WorkDir)
			return nil
		},
	}
}
