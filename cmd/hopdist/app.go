package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopdist/config"
	"github.com/katalvlaran/hopdist/core"
	"github.com/katalvlaran/hopdist/groups"
	"github.com/katalvlaran/hopdist/loader"
	"github.com/katalvlaran/hopdist/logging"
	"github.com/katalvlaran/hopdist/metrics"
	"github.com/katalvlaran/hopdist/report"
	"github.com/katalvlaran/hopdist/stats"
)

var (
	errMissingEdges  = errors.New("no edge list given (use --edges or HOPDIST_EDGES)")
	errMissingLabels = errors.New("no label list given (use --labels or HOPDIST_LABELS)")
)

// app carries per-invocation state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	flags      config.Config

	cfg   config.Config
	log   *slog.Logger
	runID string
	rec   *metrics.Recorder
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// logger returns the configured logger, or a plain stderr logger when
// configuration never got that far.
func (a *app) logger() *slog.Logger {
	if a.log != nil {
		return a.log
	}
	return logging.New(config.Default().Logging, a.stderr)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hopdist",
		Short:         "Shortest-path hop distance statistics for undirected graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.flushMetrics()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVarP(&a.flags.Input.Edges, "edges", "e", "", "edge list file (.gz accepted, - for stdin)")
	pf.StringVarP(&a.flags.Input.Labels, "labels", "l", "", "node→group label file (.gz accepted)")
	pf.IntVarP(&a.flags.Compute.Workers, "workers", "w", 1, "parallel BFS runs (0 = one per CPU)")
	pf.IntVar(&a.flags.Compute.MaxDepth, "max-depth", 0, "bound every traversal to this depth (0 = unlimited)")
	pf.StringVarP(&a.flags.Output.Format, "output", "o", config.FormatText, "result format: text|json")
	pf.StringVar(&a.flags.Output.Color, "color", config.ColorAuto, "color mode: auto|always|never")
	pf.StringVar(&a.flags.Logging.Level, "log-level", "info", "log level: debug|info|warn|error")
	pf.StringVar(&a.flags.Logging.Format, "log-format", "text", "log format: text|json")
	pf.StringVar(&a.flags.Metrics.Textfile, "metrics-textfile", "", "write Prometheus metrics to this file")

	root.AddCommand(
		a.runCmd(),
		a.globalCmd(),
		a.groupsCmd(),
		a.bfsCmd(),
		a.infoCmd(),
	)

	return root
}

// setup resolves configuration (defaults, file, env, then explicit flags),
// builds the logger, and prepares the metrics recorder.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("edges") {
		cfg.Input.Edges = a.flags.Input.Edges
	}
	if fs.Changed("labels") {
		cfg.Input.Labels = a.flags.Input.Labels
	}
	if fs.Changed("workers") {
		cfg.Compute.Workers = a.flags.Compute.Workers
	}
	if fs.Changed("max-depth") {
		cfg.Compute.MaxDepth = a.flags.Compute.MaxDepth
	}
	if fs.Changed("output") {
		cfg.Output.Format = a.flags.Output.Format
	}
	if fs.Changed("color") {
		cfg.Output.Color = a.flags.Output.Color
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = a.flags.Logging.Level
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = a.flags.Logging.Format
	}
	if fs.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = a.flags.Metrics.Textfile
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Output.Color = strings.ToLower(cfg.Output.Color)

	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.runID = uuid.NewString()
	a.log = logging.New(cfg.Logging, a.stderr).With(
		slog.String("run_id", a.runID),
		slog.String("command", cmd.Name()),
	)
	a.rec = metrics.NewRecorder()

	return nil
}

func (a *app) flushMetrics() error {
	if a.cfg.Metrics.Textfile == "" || a.rec == nil {
		return nil
	}
	if err := a.rec.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return err
	}
	a.log.Info("metrics written", slog.String("path", a.cfg.Metrics.Textfile))
	return nil
}

func (a *app) statsOptions() []stats.Option {
	return []stats.Option{
		stats.WithWorkers(a.cfg.Compute.Workers),
		stats.WithMaxDepth(a.cfg.Compute.MaxDepth),
		stats.WithLogger(a.log),
		stats.WithObserver(a.rec),
	}
}

func (a *app) loadGraph() (*core.Graph, error) {
	path := a.cfg.Input.Edges
	if path == "" {
		return nil, errMissingEdges
	}
	g, counts, err := loader.LoadGraph(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("edge list loaded",
		slog.String("path", path),
		slog.Int("records", counts.Records),
		slog.Int("skipped", counts.Skipped),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
	)
	return g, nil
}

func (a *app) loadGroups() (*groups.Index, error) {
	path := a.cfg.Input.Labels
	if path == "" {
		return nil, errMissingLabels
	}
	idx, counts, err := loader.LoadGroups(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("labels loaded",
		slog.String("path", path),
		slog.Int("records", counts.Records),
		slog.Int("skipped", counts.Skipped),
		slog.Int("nodes", idx.Len()),
		slog.Int("groups", idx.GroupCount()),
	)
	return idx, nil
}

// emit writes s in the configured format.
func (a *app) emit(s report.Summary) error {
	if a.cfg.Output.Format == config.FormatJSON {
		s.RunID = a.runID
		return report.WriteJSON(a.stdout, s)
	}
	opts := report.TextOptions{Color: report.ColorEnabled(a.cfg.Output.Color, a.stdout)}
	if err := report.WriteText(a.stdout, s, opts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
