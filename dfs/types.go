// Package dfs defines types and options for depth-first search traversal,
// including cancellation, a pre-order hook, depth limiting and full-graph
// (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, restarts from every unvisited vertex in
	// insertion order, covering all components.
	FullTraversal bool

	err error
}

// DefaultOptions returns DFSOptions with a background context, no hook,
// no depth limit, and single-root traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth. Values below -1 are rejected.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: max depth=%d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []int

	// Depth maps each visited vertex ID to its tree depth from its root.
	Depth map[int]int

	// Parent maps each non-root visited vertex to its discoverer.
	Parent map[int]int

	// Roots lists the tree roots in the order they were started.
	Roots []int
}

// ConnectivityStats summarizes the component structure of a graph.
type ConnectivityStats struct {
	Components int `json:"components"`
	Largest    int `json:"largest_component"`
	// ReachablePairs counts ordered pairs (u, v), u != v, joined by a path:
	// the sum of s·(s-1) over component sizes s.
	ReachablePairs int64 `json:"reachable_pairs"`
}
