// SPDX-License-Identifier: MIT
// Package: hopdist/stats
//
// aggregate.go - global and per-group distance aggregation.
//
// Flow:
//   1) Validate options and graph (non-nil, frozen).
//   2) Select BFS start vertices (all vertices, or a group's present members).
//   3) fanout: one bfs.Summarize per start, sequential or via errgroup.
//   4) Merge per-start tallies in start order into one Accumulator.
//
// Complexity:
//   • Global: O(V·(V+E)). PerGroup: O(L·(V+E)) for L labeled vertices.

package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/core"
	"github.com/katalvlaran/hopdist/groups"
)

// Global runs one BFS from every vertex and averages all recorded
// (destination, distance) pairs. Unreachable pairs and self-distances are
// never counted. An empty or edgeless graph yields Average 0.0.
//
// Errors: ErrGraphNil, ErrNotFrozen, ErrOptionViolation, or the context error
// if ctx is cancelled mid-run.
func Global(ctx context.Context, g *core.Graph, opts ...Option) (GlobalResult, error) {
	var res GlobalResult
	o, err := resolve(opts)
	if err != nil {
		return res, err
	}
	if err = checkGraph(g); err != nil {
		return res, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	began := time.Now()
	starts := g.Vertices()
	acc, diameter, err := fanout(ctx, g, starts, o)
	if err != nil {
		return res, fmt.Errorf("stats: Global: %w", err)
	}

	res = GlobalResult{
		Accumulator: acc,
		Average:     acc.Average(),
		Sources:     len(starts),
		Diameter:    diameter,
		Elapsed:     time.Since(began),
	}
	o.logger.Info("global average computed",
		slog.Int("sources", res.Sources),
		slog.Int64("sum", res.Sum),
		slog.Int64("count", res.Count),
		slog.Float64("average", res.Average),
		slog.Duration("elapsed", res.Elapsed),
	)
	o.observer.ObserveGlobal(res)
	o.observer.ObserveAggregation(ScopeGlobal, res.Elapsed)

	return res, nil
}

// GlobalAverage is Global with a background context and default options.
func GlobalAverage(g *core.Graph) (float64, error) {
	res, err := Global(context.Background(), g)
	if err != nil {
		return 0, err
	}
	return res.Average, nil
}

// PerGroup computes one average per group in idx, scanning groups in
// ascending ID order. Each member present in g is a BFS source over the full
// graph; destinations are not restricted to the group. Members missing from g
// are counted in GroupStat.Absent and contribute nothing.
//
// Lowest is updated only on a strictly smaller average and Highest only on a
// strictly greater one, so the first group in scan order wins ties.
func PerGroup(ctx context.Context, g *core.Graph, idx *groups.Index, opts ...Option) (*GroupReport, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = checkGraph(g); err != nil {
		return nil, err
	}
	if idx == nil {
		return nil, ErrIndexNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	began := time.Now()
	ids := idx.Groups()
	rep := &GroupReport{
		Groups:  make([]GroupStat, 0, len(ids)),
		Lowest:  Extreme{Average: lowestSentinel},
		Highest: Extreme{Average: highestSentinel},
	}

	for _, gid := range ids {
		members := idx.Members(gid)
		starts := make([]int, 0, len(members))
		for _, m := range members {
			if g.HasVertex(m) {
				starts = append(starts, m)
			}
		}

		acc, _, err := fanout(ctx, g, starts, o)
		if err != nil {
			return nil, fmt.Errorf("stats: PerGroup: group %d: %w", gid, err)
		}
		stat := GroupStat{
			Accumulator: acc,
			Group:       gid,
			Average:     acc.Average(),
			Members:     len(starts),
			Absent:      len(members) - len(starts),
		}
		rep.Groups = append(rep.Groups, stat)

		if stat.Average < rep.Lowest.Average {
			rep.Lowest = Extreme{Group: gid, Average: stat.Average, Found: true}
		}
		if stat.Average > rep.Highest.Average {
			rep.Highest = Extreme{Group: gid, Average: stat.Average, Found: true}
		}

		o.logger.Debug("group aggregated",
			slog.Int("group", gid),
			slog.Int("members", stat.Members),
			slog.Int("absent", stat.Absent),
			slog.Int64("count", stat.Count),
			slog.Float64("average", stat.Average),
		)
		o.observer.ObserveGroup(stat)
	}

	// No groups: leave extremes zeroed with Found=false.
	if !rep.Lowest.Found {
		rep.Lowest = Extreme{}
	}
	if !rep.Highest.Found {
		rep.Highest = Extreme{}
	}
	rep.Elapsed = time.Since(began)

	o.logger.Info("group averages computed",
		slog.Int("groups", len(rep.Groups)),
		slog.Int("lowest_group", rep.Lowest.Group),
		slog.Float64("lowest_average", rep.Lowest.Average),
		slog.Int("highest_group", rep.Highest.Group),
		slog.Float64("highest_average", rep.Highest.Average),
		slog.Duration("elapsed", rep.Elapsed),
	)
	o.observer.ObserveAggregation(ScopeGroups, rep.Elapsed)

	return rep, nil
}

func checkGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Frozen() {
		return ErrNotFrozen
	}
	return nil
}

// fanout runs bfs.Summarize from each start and merges the tallies in start
// order. It returns the merged accumulator and the largest eccentricity.
func fanout(ctx context.Context, g *core.Graph, starts []int, o options) (Accumulator, int, error) {
	var acc Accumulator
	tallies := make([]bfs.Tally, len(starts))

	run := func(ctx context.Context, i int) error {
		began := time.Now()
		t, err := bfs.Summarize(g, starts[i], bfs.WithContext(ctx), bfs.WithMaxDepth(o.maxDepth))
		if err != nil {
			return fmt.Errorf("bfs from %d: %w", starts[i], err)
		}
		tallies[i] = t
		o.observer.ObserveBFS(starts[i], t, time.Since(began))
		return nil
	}

	if o.workers <= 1 || len(starts) <= 1 {
		for i := range starts {
			if err := run(ctx, i); err != nil {
				return acc, 0, err
			}
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(o.workers)
		for i := range starts {
			eg.Go(func() error { return run(egCtx, i) })
		}
		if err := eg.Wait(); err != nil {
			return acc, 0, err
		}
	}

	diameter := 0
	for _, t := range tallies {
		acc.AddTally(t)
		if t.Eccentricity > diameter {
			diameter = t.Eccentricity
		}
	}

	return acc, diameter, nil
}
