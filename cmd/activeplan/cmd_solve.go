package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/activeplan/planner"
)

func runSolve(cmd *cobra.Command, f *cliFlags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg, "cli")
	reg, stop, err := startTelemetry(cmd, cfg, f)
	if err != nil {
		return err
	}
	defer stop()

	g, err := loadGraph(cmd, cfg, args)
	if err != nil {
		logger.Error("cannot load cave", "error", err)
		return err
	}

	opts := append(cfg.PlannerOptions(), planner.WithLogger(newLogger(cmd, cfg, "planner")))
	res, err := planner.SolveGraph(cmd.Context(), g, cfg.Planner(), opts...)
	if reg != nil {
		defer func() {
			if derr := dumpMetrics(cmd.ErrOrStderr(), reg); derr != nil {
				logger.Warn("cannot dump metrics", "error", derr)
			}
		}()
	}

	out := cmd.OutOrStdout()
	var te *planner.TimeoutError
	if errors.As(err, &te) {
		fmt.Fprintf(out, "interrupted: best %d, optimum at most %d\n", te.LowerBound, te.UpperBound)
		return err
	}
	if err != nil {
		return err
	}

	if cfg.Plan {
		for _, st := range res.Plan {
			fmt.Fprintf(out, "minute %2d  agent %d  %-4s +%d\n", st.At, st.Agent, st.Node, st.Gain)
		}
	}
	fmt.Fprintln(out, res.Value)
	return nil
}

// parseTimeout accepts Go durations ("1m30s") and bare seconds ("90").
func parseTimeout(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var secs int64
	if _, err := fmt.Sscanf(s, "%d", &secs); err != nil || fmt.Sprint(secs) != s {
		return 0, fmt.Errorf("invalid --timeout %q", s)
	}
	return time.Duration(secs) * time.Second, nil
}

// dumpMetrics writes this program's metric families in text exposition
// format, merging the process registry with the OpenTelemetry bridge in reg.
func dumpMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := prometheus.Gatherers{prometheus.DefaultGatherer, reg}.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "activeplan_") {
			continue
		}
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
