// File: methods_edges.go
// Role: Edge insertion & edge-level queries.
//
// Policy:
//   - Edges are undirected: AddEdge(u,v) makes v a neighbor of u and u a neighbor of v.
//   - Adjacency is a set: a repeated AddEdge(u,v) or AddEdge(v,u) is accepted and ignored.
//   - Self-loops (u==v) register the vertex and are counted, but never enter adjacency,
//     so a vertex is never its own neighbor.
//
// Concurrency:
//   - AddEdge holds muVert then muEdgeAdj (write) for the whole insertion.
package core

import "fmt"

// AddEdge inserts the undirected edge {u, v}, registering both endpoints.
//
// Implementation:
//   - Stage 1: Validate both IDs are non-negative.
//   - Stage 2: Under muVert write lock, reject frozen graphs and register endpoints.
//   - Stage 3: Under muEdgeAdj write lock, insert the canonical pair key once and
//     append each endpoint to the other's neighbor slice.
//
// Behavior highlights:
//   - Duplicate edges return nil and leave adjacency untouched.
//   - u == v registers u and is otherwise a no-op for adjacency.
//
// Errors:
//   - ErrInvalidVertexID: if u < 0 or v < 0.
//   - ErrFrozen: if the graph has been frozen.
//   - ErrTooManyVertices: if the dense index space is exhausted.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("%w: edge (%d,%d)", ErrInvalidVertexID, u, v)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if g.frozen.Load() {
		return ErrFrozen
	}

	ui, err := g.ensureVertexLocked(u)
	if err != nil {
		return err
	}
	vi, err := g.ensureVertexLocked(v)
	if err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if ui == vi {
		g.loops++
		return nil
	}

	key := pairKey(ui, vi)
	if _, seen := g.pairs[key]; seen {
		return nil
	}
	g.pairs[key] = struct{}{}
	g.adjacency[ui] = append(g.adjacency[ui], vi)
	g.adjacency[vi] = append(g.adjacency[vi], ui)

	return nil
}

// HasEdge reports whether the undirected edge {u, v} exists.
// HasEdge(u, v) == HasEdge(v, u) for all u, v. Self-loops always report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.muVert.RLock()
	ui, okU := g.index[u]
	vi, okV := g.index[v]
	g.muVert.RUnlock()
	if !okU || !okV || ui == vi {
		return false
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.pairs[pairKey(ui, vi)]

	return ok
}

// EdgeCount returns the number of distinct undirected edges.
// Duplicates and self-loops are not counted.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.pairs)
}
