// Package config loads graphtrace settings and optional graph definitions
// from YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/katalvlaran/graphtrace/export"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Algorithm names accepted in Config.Algorithms and as CLI subcommands.
const (
	AlgorithmDFS      = "dfs"
	AlgorithmBFS      = "bfs"
	AlgorithmDijkstra = "dijkstra"
	AlgorithmPrim     = "prim"
)

// Algorithms lists every known algorithm name in run order.
var Algorithms = []string{AlgorithmDFS, AlgorithmBFS, AlgorithmDijkstra, AlgorithmPrim}

type Config struct {
	// Start is the start node name; empty picks one at random.
	Start string `yaml:"start"`

	// Algorithms run by "graphtrace all", in order.
	Algorithms []string `yaml:"algorithms"`

	Output OutputConfig `yaml:"output"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Interactive enables the start-node prompt when stdin is a terminal.
	Interactive bool `yaml:"interactive"`

	// GraphFile replaces the built-in city network when set.
	GraphFile string `yaml:"graph_file,omitempty"`
}

type OutputConfig struct {
	Dir     string `yaml:"dir"`     // e.g. ./traces
	Format  string `yaml:"format"`  // json or yaml
	Console bool   `yaml:"console"` // render steps to stdout
	Verbose bool   `yaml:"verbose"` // include visited/path/candidates per step
}

// DefaultConfig runs DFS, Dijkstra and Prim from a random city and writes
// JSON traces to the working directory.
func DefaultConfig() Config {
	return Config{
		Start:      "",
		Algorithms: []string{AlgorithmDFS, AlgorithmDijkstra, AlgorithmPrim},
		Output: OutputConfig{
			Dir:     ".",
			Format:  string(export.FormatJSON),
			Console: true,
		},
		LogLevel:    "info",
		Interactive: true,
	}
}

// Validate checks algorithm names, output format and log level.
func (c Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms selected", ErrInvalidConfig)
	}
	for _, a := range c.Algorithms {
		if !slices.Contains(Algorithms, a) {
			return fmt.Errorf("%w: unknown algorithm %q (want one of %s)",
				ErrInvalidConfig, a, strings.Join(Algorithms, ", "))
		}
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseLevel maps a log_level string to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}

	return lvl, nil
}
