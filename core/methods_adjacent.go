// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - NeighborIDs returns neighbors in the order their edges were first added.
//
// AI-Hints (file):
//   - Traversals over a frozen graph should use View().Neighbors on dense indices;
//     NeighborIDs allocates a fresh slice per call.
package core

import "fmt"

// NeighborIDs returns the IDs adjacent to id, each exactly once.
//
// Implementation:
//   - Stage 1: Resolve the dense index (from the cached View when frozen).
//   - Stage 2: Translate dense neighbor indices back to vertex IDs.
//
// Returns:
//   - []int: fresh slice; empty (non-nil) for a vertex with no edges.
//
// Errors:
//   - ErrVertexNotFound: id was never registered. Callers that treat unknown
//     vertices as "no neighbors" can ignore this error and use the empty result.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if v := g.view.Load(); v != nil {
		idx, ok := v.Index(id)
		if !ok {
			return []int{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
		}
		nbrs := v.Neighbors(idx)
		out := make([]int, len(nbrs))
		for i, n := range nbrs {
			out[i] = v.ID(int(n))
		}
		return out, nil
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	idx, ok := g.index[id]
	if !ok {
		return []int{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	nbrs := g.adjacency[idx]
	out := make([]int, len(nbrs))
	for i, n := range nbrs {
		out[i] = g.ids[n]
	}

	return out, nil
}

// AdjacencyList returns a map from vertex ID to its neighbor IDs.
// Every registered vertex appears as a key, isolated ones with an empty slice.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[int][]int {
	v := g.View()
	out := make(map[int][]int, v.Len())
	for i := 0; i < v.Len(); i++ {
		nbrs := v.Neighbors(i)
		ids := make([]int, len(nbrs))
		for j, n := range nbrs {
			ids[j] = v.ID(int(n))
		}
		out[v.ID(i)] = ids
	}

	return out
}
