// Package config loads planner run settings from YAML and validates them.
//
// A file looks like:
//
//	time_budget: 26
//	agents: 2
//	start: AA
//	timeout: 30s
//	log_level: info
//	traces: stdout
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/activeplan/core"
	"github.com/katalvlaran/activeplan/planner"
)

var (
	// ErrRead indicates the configuration source could not be read or decoded.
	ErrRead = errors.New("config: cannot read configuration")

	// ErrInvalid indicates a configuration that fails validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// configValidate is shared; validator.Validate caches struct metadata.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("nodeid", validateNodeID)
}

// validateNodeID accepts IDs the text format can express.
func validateNodeID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return id != "" && !strings.ContainsAny(id, " \t,;=")
}

// Config is one planner run.
type Config struct {
	// TimeBudget is the number of minutes available.
	TimeBudget int64 `yaml:"time_budget" validate:"gt=0"`
	// Agents is the number of cooperating agents.
	Agents int `yaml:"agents" validate:"gte=1,lte=8"`
	// Start is the node every agent starts on.
	Start string `yaml:"start" validate:"nodeid"`
	// Directed keeps tunnels one-way as listed.
	Directed bool `yaml:"directed"`
	// Timeout bounds the search; zero means unbounded.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	// MaxExpansions bounds the search; zero means unbounded.
	MaxExpansions int `yaml:"max_expansions" validate:"gte=0"`
	// Concurrency bounds parallel distance searches.
	Concurrency int `yaml:"concurrency" validate:"gte=1,lte=256"`
	// Plan prints the activation schedule.
	Plan bool `yaml:"plan"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
	// Traces selects the span exporter: none or stdout.
	Traces string `yaml:"traces" validate:"oneof=none stdout"`
}

// Default returns the single-agent, thirty-minute scenario.
func Default() Config {
	return Config{
		TimeBudget:  30,
		Agents:      1,
		Start:       core.DefaultStart,
		Concurrency: 1,
		LogLevel:    "info",
		LogFormat:   "text",
		Traces:      "none",
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML from r over Default and validates the result. An empty
// document yields Default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its validate tag.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Planner returns the scenario part of c.
func (c Config) Planner() planner.Config {
	return planner.Config{TimeBudget: c.TimeBudget, Agents: c.Agents}
}

// PlannerOptions translates the run limits into planner options.
func (c Config) PlannerOptions() []planner.Option {
	opts := []planner.Option{planner.WithDistanceConcurrency(c.Concurrency)}
	if c.Timeout > 0 {
		opts = append(opts, planner.WithTimeLimit(c.Timeout))
	}
	if c.MaxExpansions > 0 {
		opts = append(opts, planner.WithMaxExpansions(c.MaxExpansions))
	}
	if c.Plan {
		opts = append(opts, planner.WithPlan())
	}
	return opts
}

// SlogLevel maps LogLevel to a slog.Level (info for unknown values).
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger described by c.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
