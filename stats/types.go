// SPDX-License-Identifier: MIT
// Package: hopdist/stats
//
// types.go - accumulators, result shapes, options and sentinel errors.

package stats

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/katalvlaran/hopdist/bfs"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("stats: graph is nil")

	// ErrIndexNil is returned when PerGroup receives a nil group index.
	ErrIndexNil = errors.New("stats: group index is nil")

	// ErrNotFrozen is returned when the graph has not been frozen.
	ErrNotFrozen = errors.New("stats: graph must be frozen before aggregation")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("stats: invalid option supplied")
)

// Scope labels passed to Observer.ObserveAggregation.
const (
	ScopeGlobal = "global"
	ScopeGroups = "groups"
)

// Accumulator is a running (sum of distances, count of pairs) pair.
// The zero value is ready to use.
type Accumulator struct {
	Sum   int64 `json:"sum"`
	Count int64 `json:"count"`
}

// Add records one reached destination at the given hop distance.
func (a *Accumulator) Add(distance int) {
	a.Sum += int64(distance)
	a.Count++
}

// AddTally folds a whole BFS run into the accumulator.
func (a *Accumulator) AddTally(t bfs.Tally) {
	a.Sum += t.Sum
	a.Count += t.Count
}

// Merge adds other into a.
func (a *Accumulator) Merge(other Accumulator) {
	a.Sum += other.Sum
	a.Count += other.Count
}

// Average returns Sum/Count, or 0.0 when Count is zero.
func (a Accumulator) Average() float64 {
	if a.Count == 0 {
		return 0.0
	}
	return float64(a.Sum) / float64(a.Count)
}

// GlobalResult is the outcome of Global.
type GlobalResult struct {
	Accumulator
	Average float64 `json:"average"`
	// Sources is the number of BFS runs (one per vertex).
	Sources int `json:"sources"`
	// Diameter is the largest finite distance seen, 0 for edgeless graphs.
	Diameter int           `json:"diameter"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// GroupStat is the aggregate for one group.
type GroupStat struct {
	Accumulator
	Group   int     `json:"group"`
	Average float64 `json:"average"`
	// Members counts labeled nodes that exist in the graph (BFS sources).
	Members int `json:"members"`
	// Absent counts labeled nodes that never appeared in the graph.
	Absent int `json:"absent"`
}

// Extreme names the group holding the lowest or highest average.
// Found is false only when there are no groups at all.
type Extreme struct {
	Group   int     `json:"group"`
	Average float64 `json:"average"`
	Found   bool    `json:"found"`
}

// GroupReport is the outcome of PerGroup. Groups are in ascending ID order.
type GroupReport struct {
	Groups  []GroupStat   `json:"groups"`
	Lowest  Extreme       `json:"lowest"`
	Highest Extreme       `json:"highest"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Averages returns group ID → average.
func (r *GroupReport) Averages() map[int]float64 {
	out := make(map[int]float64, len(r.Groups))
	for _, s := range r.Groups {
		out[s.Group] = s.Average
	}
	return out
}

// Observer receives aggregation events. Implementations must be safe for
// concurrent use when WithWorkers(n > 1) is in effect.
type Observer interface {
	ObserveBFS(start int, t bfs.Tally, elapsed time.Duration)
	ObserveGroup(stat GroupStat)
	ObserveGlobal(res GlobalResult)
	ObserveAggregation(scope string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveBFS(int, bfs.Tally, time.Duration) {}
func (nopObserver) ObserveGroup(GroupStat) {}
func (nopObserver) ObserveGlobal(GlobalResult) {}
func (nopObserver) ObserveAggregation(string, time.Duration) {}

// Option configures an aggregation run.
type Option func(*options)

type options struct {
	workers  int
	maxDepth int
	logger   *slog.Logger
	observer Observer
	err      error
}

func defaultOptions() options {
	return options{
		workers:  1,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
	}
}

// WithWorkers sets the number of concurrent BFS runs. 0 selects
// runtime.GOMAXPROCS(0); 1 runs sequentially; negative is an error.
func WithWorkers(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers=%d", ErrOptionViolation, n)
		case n == 0:
			o.workers = runtime.GOMAXPROCS(0)
		default:
			o.workers = n
		}
	}
}

// WithMaxDepth bounds every BFS run; 0 means unlimited.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth=%d", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithLogger sets the structured logger. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver installs an event sink (for example a metrics recorder).
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func resolve(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// lowestSentinel exceeds any average; highestSentinel is below any average.
var (
	lowestSentinel  = math.Inf(1)
	highestSentinel = -1.0
)
