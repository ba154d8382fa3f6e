// Package bfs provides single-source breadth-first search over a core.Graph,
// returning unweighted shortest-path distances (hop counts).
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - ShortestPaths returns a Result containing:
//   - Dist:  map from reachable vertex → distance from start (start excluded)
//   - Order: reached vertices in dequeue order (start excluded)
//   - Summarize runs the same traversal but returns only a Tally
//     (sum of distances, number of reached vertices, eccentricity).
//   - Supports functional hooks:
//   - OnEnqueue (every enqueue, duplicates included)
//   - OnVisit   (first dequeue of each vertex; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Algorithm
//
//	queue ← [(start, 0)]; visited ← ∅
//	while queue not empty:
//	    (v, d) ← dequeue
//	    if v ∈ visited: continue
//	    visited ← visited ∪ {v}
//	    if v ≠ start: record(v, d)
//	    for n in neighbors(v): if n ∉ visited: enqueue (n, d+1)
//
// Because every edge has unit weight, vertices leave the queue in
// non-decreasing distance order, so the first dequeue of a vertex carries its
// minimum hop count. Neighbor order therefore never changes distances.
// Vertices that cannot be reached never appear in the result.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the visited set plus queue entries
//
// Usage
//
//	res, err := bfs.ShortestPaths(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx errors, or hook errors
//	}
//	fmt.Println(res.Dist[3])
//
//	tally, err := bfs.Summarize(g, 0, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled (checked once per dequeue).
package bfs
