package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/activeplan/distance"
)

func runDistances(cmd *cobra.Command, f *cliFlags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	_, stop, err := startTelemetry(cmd, cfg, f)
	if err != nil {
		return err
	}
	defer stop()

	g, err := loadGraph(cmd, cfg, args)
	if err != nil {
		newLogger(cmd, cfg, "cli").Error("cannot load cave", "error", err)
		return err
	}
	tbl, err := distance.Compute(cmd.Context(), g, distance.WithConcurrency(cfg.Concurrency))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tbl)
	return nil
}
