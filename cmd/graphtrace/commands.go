package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/config"
	"github.com/katalvlaran/graphtrace/export"
	"github.com/katalvlaran/graphtrace/runner"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	stderr io.Writer

	// flags
	configPath string
	start      string
	outDir     string
	format     string
	logLevel   string
	noPrompt   bool
	verbose    bool

	// resolved in PersistentPreRunE
	cfg    config.Config
	graph  *builder.NamedGraph
	logger *slog.Logger
	rng    *rand.Rand

	// prompt asks for a start node; replaced in tests
	prompt func(names []string, def string) (string, error)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stderr: stderr,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		prompt: promptStart,
	}

	rootCmd := &cobra.Command{
		Use:   "graphtrace",
		Short: "Record step-by-step traces of graph algorithms",
		Long: `graphtrace runs DFS, BFS, Dijkstra and Prim over a weighted road network
and records every intermediate state (visited nodes, committed edges,
candidate edges) as a trace the web visualizer can replay.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "graphtrace.yaml", "Path to the YAML config file (missing file means defaults)")
	pf.StringVarP(&a.start, "start", "s", "", "Start node name (default: random, or prompt on a terminal)")
	pf.StringVarP(&a.outDir, "out", "o", "", "Directory for trace files")
	pf.StringVarP(&a.format, "format", "f", "", "Trace file format: json or yaml")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&a.noPrompt, "no-prompt", false, "Never prompt for the start node")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Print visited, path and candidate edges for every step")

	for _, name := range config.Algorithms {
		rootCmd.AddCommand(a.algorithmCmd(name))
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every algorithm listed in the config from one start node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, a.cfg.Algorithms)
		},
	})
	rootCmd.AddCommand(a.graphCmd())

	return rootCmd
}

var algorithmTitles = map[string]string{
	config.AlgorithmDFS:      "Depth-first traversal",
	config.AlgorithmBFS:      "Breadth-first traversal",
	config.AlgorithmDijkstra: "Dijkstra shortest paths",
	config.AlgorithmPrim:     "Prim minimum spanning tree",
}

func (a *app) algorithmCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: algorithmTitles[name] + " with a recorded trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, []string{name})
		},
	}
}

// setup loads the config, applies flag overrides and builds the logger and graph.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = a.start
	}
	if flags.Changed("out") {
		cfg.Output.Dir = a.outDir
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("verbose") {
		cfg.Output.Verbose = a.verbose
	}
	if a.noPrompt {
		cfg.Interactive = false
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := config.ParseLevel(cfg.LogLevel)
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))

	a.graph, err = cfg.Graph()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded", "config", a.configPath, "nodes", a.graph.Graph.NodeCount(),
		"edges", a.graph.Graph.EdgeCount())

	return nil
}

// run resolves the start node once and records every algorithm from it.
func (a *app) run(cmd *cobra.Command, algorithms []string) error {
	console := export.NewConsole(cmd.OutOrStdout())
	console.Verbose = a.cfg.Output.Verbose

	format, _ := export.ParseFormat(a.cfg.Output.Format)
	files, err := export.NewFileSink(a.cfg.Output.Dir, format)
	if err != nil {
		return err
	}
	sinks := []export.Sink{files}
	if a.cfg.Output.Console {
		sinks = append(sinks, console)
	}

	r := runner.New(a.graph, a.logger, sinks...)
	start, err := a.chooseStart(r)
	if err != nil {
		return err
	}

	docs, err := r.RunAll(cmd.Context(), algorithms, start)
	for _, doc := range docs {
		console.Info("%s trace written to %s", doc.Algorithm, files.Path(doc.Algorithm))
	}
	if err != nil {
		console.Error("%v", err)
		return err
	}

	return nil
}

// chooseStart returns the configured start, or a random node optionally
// confirmed through the interactive prompt.
func (a *app) chooseStart(r *runner.Runner) (string, error) {
	if a.cfg.Start != "" {
		return a.cfg.Start, nil
	}

	def := r.RandomStart(a.rng)
	if !a.cfg.Interactive || !stdinIsTerminal() {
		a.logger.Info("using random start node", "start", def)
		return def, nil
	}

	choice, err := a.prompt(a.graph.Names.Names(), def)
	if err != nil {
		return "", fmt.Errorf("start node prompt: %w", err)
	}

	return choice, nil
}
