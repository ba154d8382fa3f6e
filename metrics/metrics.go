// SPDX-License-Identifier: MIT

// Package metrics records aggregation telemetry in Prometheus collectors.
//
// A Recorder owns a private registry, so several recorders can coexist (one
// per CLI run or per test) without colliding on the global default registry.
// Recorder implements stats.Observer; pass it with stats.WithObserver.
//
// Batch runs have no scrape endpoint, so the usual export path is
// WriteTextfile, which writes the node-exporter textfile format.
//
// All methods are safe for concurrent use.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/stats"
)

const namespace = "hopdist"

// Recorder holds the collectors for one aggregation run.
type Recorder struct {
	reg *prometheus.Registry

	// BFSRuns counts completed BFS runs.
	BFSRuns prometheus.Counter
	// BFSReached counts destinations recorded across all runs.
	BFSReached prometheus.Counter
	// BFSDuration observes per-run wall time.
	BFSDuration prometheus.Histogram
	// AggregationDuration observes wall time per scope (global, groups).
	AggregationDuration *prometheus.HistogramVec
	// GroupAverage is the latest average per group.
	GroupAverage *prometheus.GaugeVec
	// GlobalAverage is the latest global average.
	GlobalAverage prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		BFSRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bfs_runs_total",
			Help:      "Number of completed breadth-first traversals.",
		}),
		BFSReached: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bfs_reached_total",
			Help:      "Number of (source, destination) pairs reached, sources excluded.",
		}),
		BFSDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bfs_duration_seconds",
			Help:      "Wall time of a single traversal.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		AggregationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Wall time of a full aggregation by scope.",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 12),
		}, []string{"scope"}),
		GroupAverage: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "group_average",
			Help:      "Average hop distance from members of a group.",
		}, []string{"group"}),
		GlobalAverage: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "global_average",
			Help:      "Average hop distance over all reachable ordered pairs.",
		}),
	}
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveBFS implements stats.Observer.
func (r *Recorder) ObserveBFS(_ int, t bfs.Tally, elapsed time.Duration) {
	r.BFSRuns.Inc()
	r.BFSReached.Add(float64(t.Count))
	r.BFSDuration.Observe(elapsed.Seconds())
}

// ObserveGroup implements stats.Observer.
func (r *Recorder) ObserveGroup(st stats.GroupStat) {
	r.GroupAverage.WithLabelValues(strconv.Itoa(st.Group)).Set(st.Average)
}

// ObserveGlobal implements stats.Observer.
func (r *Recorder) ObserveGlobal(res stats.GlobalResult) {
	r.GlobalAverage.Set(res.Average)
}

// ObserveAggregation implements stats.Observer.
func (r *Recorder) ObserveAggregation(scope string, elapsed time.Duration) {
	r.AggregationDuration.WithLabelValues(scope).Observe(elapsed.Seconds())
}

// WriteTextfile writes every collector to path in the text exposition
// format. The file is written atomically (temp file plus rename).
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

var _ stats.Observer = (*Recorder)(nil)
