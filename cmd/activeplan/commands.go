package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/activeplan/builder"
	"github.com/katalvlaran/activeplan/config"
	"github.com/katalvlaran/activeplan/core"
	"github.com/katalvlaran/activeplan/telemetry"
)

// cliFlags holds raw flag values; file settings apply first, then flags the
// user actually set.
type cliFlags struct {
	configPath    string
	logLevel      string
	logFormat     string
	budget        int64
	agents        int
	start         string
	directed      bool
	timeout       string
	maxExpansions int
	concurrency   int
	plan          bool
	metrics       bool
	trace         bool
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "activeplan",
		Short: "Plan time-bounded valve activations for one or more agents",
		Long: `activeplan reads a cave description (one valve per line) and computes
the activation schedule that releases the most pressure within the budget.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&f.logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&f.start, "start", "", "Start node ID (default AA)")
	rootCmd.PersistentFlags().BoolVar(&f.directed, "directed", false, "Treat tunnels as one-way")
	rootCmd.PersistentFlags().IntVar(&f.concurrency, "concurrency", 0, "Parallel distance searches")
	rootCmd.PersistentFlags().BoolVar(&f.trace, "trace", false, "Print OpenTelemetry spans to stderr")

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Compute the maximum reward within the time budget",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f, args)
		},
	}
	solveCmd.Flags().Int64VarP(&f.budget, "budget", "b", 0, "Time budget in minutes (default 30)")
	solveCmd.Flags().IntVarP(&f.agents, "agents", "a", 0, "Number of cooperating agents (default 1)")
	solveCmd.Flags().StringVar(&f.timeout, "timeout", "", "Stop the search after this long, e.g. 10s")
	solveCmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "Stop the search after this many states")
	solveCmd.Flags().BoolVar(&f.plan, "plan", false, "Print the activation schedule")
	solveCmd.Flags().BoolVar(&f.metrics, "metrics", false, "Dump collected metrics to stderr when done")

	distancesCmd := &cobra.Command{
		Use:   "distances [file]",
		Short: "Print the travel-time table between the start and reward nodes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistances(cmd, f, args)
		},
	}

	rootCmd.AddCommand(solveCmd, distancesCmd)
	return rootCmd
}

// resolveConfig merges defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, f *cliFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if flags.Changed("start") {
		cfg.Start = f.start
	}
	if flags.Changed("directed") {
		cfg.Directed = f.directed
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if flags.Changed("budget") {
		cfg.TimeBudget = f.budget
	}
	if flags.Changed("agents") {
		cfg.Agents = f.agents
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	if flags.Changed("plan") {
		cfg.Plan = f.plan
	}
	if flags.Changed("trace") {
		cfg.Traces = "none"
		if f.trace {
			cfg.Traces = "stdout"
		}
	}
	if flags.Changed("timeout") {
		d, err := parseTimeout(f.timeout)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadGraph parses the description named by args (stdin when absent or "-").
func loadGraph(cmd *cobra.Command, cfg config.Config, args []string) (*core.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}

	opts := []builder.ParseOption{builder.WithStart(cfg.Start)}
	if cfg.Directed {
		opts = append(opts, builder.WithDirectedTunnels())
	}
	return builder.Parse(r, opts...)
}

// startTelemetry installs the exporters requested by cfg and f. The returned
// registry holds the OpenTelemetry metric bridge; it is nil without --metrics.
func startTelemetry(cmd *cobra.Command, cfg config.Config, f *cliFlags) (*prometheus.Registry, func(), error) {
	tcfg := telemetry.DefaultConfig()
	tcfg.Traces = cfg.Traces
	tcfg.Writer = cmd.ErrOrStderr()
	var reg *prometheus.Registry
	if f.metrics {
		reg = prometheus.NewRegistry()
		tcfg.Metrics = "prometheus"
		tcfg.Registerer = reg
	}
	shutdown, err := telemetry.Init(cmd.Context(), tcfg)
	if err != nil {
		return nil, nil, err
	}
	return reg, func() { _ = shutdown(context.Background()) }, nil
}

// newLogger writes to the command's stderr and tags the component.
func newLogger(cmd *cobra.Command, cfg config.Config, component string) *slog.Logger {
	return cfg.NewLogger(cmd.ErrOrStderr()).With(slog.String("component", component))
}
