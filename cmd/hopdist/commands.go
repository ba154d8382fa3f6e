package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/config"
	"github.com/katalvlaran/hopdist/dfs"
	"github.com/katalvlaran/hopdist/report"
	"github.com/katalvlaran/hopdist/stats"
)

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [edges [labels]]",
		Short: "Global average plus per-group averages and extremes",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.cfg.Input.Edges = args[0]
			}
			if len(args) > 1 {
				a.cfg.Input.Labels = args[1]
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			idx, err := a.loadGroups()
			if err != nil {
				return err
			}

			glob, err := stats.Global(cmd.Context(), g, a.statsOptions()...)
			if err != nil {
				return err
			}
			rep, err := stats.PerGroup(cmd.Context(), g, idx, a.statsOptions()...)
			if err != nil {
				return err
			}
			return a.emit(report.Summary{Global: &glob, Groups: rep})
		},
	}
}

func (a *app) globalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "global",
		Short: "Average hop distance over all reachable ordered pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			glob, err := stats.Global(cmd.Context(), g, a.statsOptions()...)
			if err != nil {
				return err
			}
			return a.emit(report.Summary{Global: &glob})
		},
	}
}

func (a *app) groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Per-group average hop distance with lowest and highest groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			idx, err := a.loadGroups()
			if err != nil {
				return err
			}
			rep, err := stats.PerGroup(cmd.Context(), g, idx, a.statsOptions()...)
			if err != nil {
				return err
			}
			return a.emit(report.Summary{Groups: rep})
		},
	}
}

func (a *app) bfsCmd() *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Hop distances from one vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := bfs.ShortestPaths(g, from,
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(a.cfg.Compute.MaxDepth),
			)
			if err != nil {
				return err
			}
			if a.cfg.Output.Format == config.FormatJSON {
				return report.WriteJSON(a.stdout, res)
			}
			opts := report.TextOptions{Color: report.ColorEnabled(a.cfg.Output.Color, a.stdout)}
			return report.WriteDistances(a.stdout, res, opts)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "start vertex")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Size, degree and component structure of the loaded graph",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			conn, err := dfs.Connectivity(g)
			if err != nil {
				return err
			}
			return a.emit(report.Summary{Graph: g.Stats(), Connectivity: &conn})
		},
	}
}
