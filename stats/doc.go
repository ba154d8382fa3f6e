// Package stats aggregates breadth-first hop distances into global and
// per-group averages.
//
// What:
//
//   - Global: one BFS per vertex over the whole graph. Every (destination,
//     distance) pair is summed, so each unordered pair {u,v} contributes twice
//     (once from u, once from v). The ratio is unaffected; Sum and Count are
//     both double the unordered totals.
//   - PerGroup: for each group, one BFS per member present in the graph. The
//     traversal and the destinations span the full graph, not just the group.
//   - Lowest and Highest groups are chosen by strict comparison while groups
//     are scanned in ascending ID order, so the first group wins ties at both
//     ends.
//
// Conventions:
//
//   - An accumulator with Count == 0 averages to 0.0. This covers the empty
//     graph, a single isolated vertex, and groups whose members reach nothing.
//   - The highest-average sentinel is -1, so when every group averages 0.0
//     the first group is reported as both lowest and highest.
//
// Concurrency:
//
//	WithWorkers(n) fans BFS runs out over an errgroup limited to n goroutines.
//	Each run produces its own partial Accumulator; partials are merged by
//	integer addition in start-vertex order, so results are identical to the
//	sequential path. The graph must be frozen (core.Graph.Freeze) so that all
//	runs share one immutable View.
package stats
