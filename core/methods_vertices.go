// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order (first time a vertex was registered).
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import (
	"fmt"
	"math"
)

// AddVertex registers a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate the ID is non-negative (ErrInvalidVertexID).
//   - Stage 2: Under muVert write lock, reject frozen graphs and check presence.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap an empty neighbor slot.
//
// Errors:
//   - ErrInvalidVertexID: if id < 0.
//   - ErrFrozen: if the graph has been frozen.
//   - ErrTooManyVertices: if the dense index space is exhausted.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVertexID, id)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if g.frozen.Load() {
		return ErrFrozen
	}
	_, err := g.ensureVertexLocked(id)

	return err
}

// ensureVertexLocked returns the dense index of id, registering it if needed.
// Caller must hold muVert write lock.
func (g *Graph) ensureVertexLocked(id int) (int32, error) {
	if idx, ok := g.index[id]; ok {
		return idx, nil
	}
	if len(g.ids) >= math.MaxInt32 {
		return 0, ErrTooManyVertices
	}

	idx := int32(len(g.ids))
	g.ids = append(g.ids, id)
	g.index[id] = idx

	// Keep adjacency aligned with the catalog: slot i always exists for vertex i.
	g.muEdgeAdj.Lock()
	g.adjacency = append(g.adjacency, nil)
	g.muEdgeAdj.Unlock()

	return idx, nil
}

// HasVertex reports whether id has been registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	if v := g.view.Load(); v != nil {
		_, ok := v.Index(id)
		return ok
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Vertices returns every registered vertex ID in insertion order.
// The returned slice is a fresh copy.
//
// Callers must not rely on this order for correctness; it exists so output
// stays reproducible across runs over the same input.
//
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	if v := g.view.Load(); v != nil {
		return v.Vertices()
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, len(g.ids))
	copy(out, g.ids)

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.ids)
}

// Degree returns the size of id's neighbor set.
// Self-loops are never counted.
//
// Errors:
//   - ErrVertexNotFound: if id is not registered.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.muVert.RLock()
	idx, ok := g.index[id]
	g.muVert.RUnlock()
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[idx]), nil
}
