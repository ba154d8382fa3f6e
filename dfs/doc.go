// Package dfs implements depth-first traversal and connected-component
// analysis on a frozen core.Graph.
//
// What:
//
//   - DFS(g, start, opts...): iterative pre-order traversal from one root, or
//     a forest over every vertex with WithFullTraversal. Neighbors are explored
//     in adjacency order, so the visit order is deterministic.
//   - Components(g): vertex sets of the connected components, each sorted
//     ascending, listed in order of their first vertex's insertion.
//   - Connectivity(g): component count, largest component size, and the
//     number of ordered vertex pairs joined by some path.
//
// Why:
//
//	Hop-distance averages only count reachable pairs, so the component
//	structure determines how many pairs an aggregation will see. For a graph
//	traversed without a depth bound, Connectivity(g).ReachablePairs equals the
//	pair count of a global aggregation.
//
// Complexity:
//
//   - DFS, Components, Connectivity: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit
package dfs
