package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/panelsched/verify"
)

// DefaultMaxPanelists is the per-slot capacity when none is configured.
const DefaultMaxPanelists = 8

// ScheduleConfig controls the solver.
type ScheduleConfig struct {
	// MaxPanelists is the number of panelists a slot accepts.
	MaxPanelists int `json:"max_panelists"`
	// Verify cross-checks every result against the flow and LP bounds.
	Verify bool `json:"verify"`
	// FlowAlgorithm is the max-flow routine used by Verify:
	// dinic, edmonds-karp or ford-fulkerson.
	FlowAlgorithm string `json:"flow_algorithm"`
}

// SetDefaults applies sane defaults.
func (c *ScheduleConfig) SetDefaults() {
	if c.MaxPanelists == 0 {
		c.MaxPanelists = DefaultMaxPanelists
	}
	if c.FlowAlgorithm == "" {
		c.FlowAlgorithm = string(verify.Dinic)
	}
}

// Validate checks mandatory fields.
func (c ScheduleConfig) Validate() error {
	if c.MaxPanelists < 1 {
		return fmt.Errorf("max_panelists must be at least 1, got %d", c.MaxPanelists)
	}
	if _, err := verify.ParseAlgorithm(c.FlowAlgorithm); err != nil {
		return fmt.Errorf("flow_algorithm: %w", err)
	}
	return nil
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `json:"level"`
	// Format is "json" or "console".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %s", c.Level)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written after each run when set.
	Textfile string `json:"textfile"`
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace"`
}

// SetDefaults applies sane defaults.
func (c *MetricsConfig) SetDefaults() {
	if c.Namespace == "" {
		c.Namespace = "panelsched"
	}
}

// Validate checks mandatory fields.
func (c MetricsConfig) Validate() error {
	if strings.ContainsAny(c.Namespace, " -.") {
		return fmt.Errorf("invalid namespace %q", c.Namespace)
	}
	return nil
}
