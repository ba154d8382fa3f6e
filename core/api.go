// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: stream construction, freezing, and read-only summaries.
// Policy:
//   - No algorithms here beyond a single O(V+E) summary scan.
//   - Concurrency model and invariants are defined in types.go/doc.go.
// AI-HINT (file):
//   - Build(...) is the canonical way to obtain a frozen graph from an edge stream.
//   - Stats() is an O(V) snapshot; rely on it for quick diagnostics.

package core

import (
	"fmt"
	"iter"
)

// Build creates a graph from an edge stream and freezes it.
//
// Implementation:
//   - Stage 1: Allocate a graph with the given options.
//   - Stage 2: AddEdge for every (u, v) yielded by edges, in stream order.
//   - Stage 3: Freeze, so the result is immutable and View() is cached.
//
// Errors:
//   - Wrapped ErrInvalidVertexID / ErrTooManyVertices from AddEdge, annotated with
//     the offending pair. The stream is not drained past the first error.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func Build(edges iter.Seq2[int, int], opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for u, v := range edges {
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("core: Build: edge (%d,%d): %w", u, v, err)
		}
	}
	g.Freeze()

	return g, nil
}

// Freeze seals the graph against mutation and caches its View.
// Freeze is idempotent; calling it again is a no-op.
//
// Complexity:
//   - Time O(V + E) on the first call, O(1) afterwards.
func (g *Graph) Freeze() {
	g.freezeOnce.Do(func() {
		// Flip the flag under muVert so no mutator is mid-flight once it is set.
		g.muVert.Lock()
		g.frozen.Store(true)
		g.muVert.Unlock()

		g.view.Store(newView(g))
	})
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen.Load() }

// Stats produces a read-only snapshot of counters.
//
// Complexity:
//   - Time O(V) over the snapshot, Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	v := g.View()

	g.muEdgeAdj.RLock()
	loops := g.loops
	g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		VertexCount: v.Len(),
		EdgeCount:   v.EdgeCount(),
		SelfLoops:   loops,
		Frozen:      g.Frozen(),
	}
	for i := 0; i < v.Len(); i++ {
		d := v.Degree(i)
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
