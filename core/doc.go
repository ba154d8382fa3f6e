// Package core provides a thread-safe in-memory undirected graph over
// non-negative integer vertex IDs, with a minimal, composable API surface.
//
// The Graph G = (V,E) is the store every distance computation reads:
//
//   - Undirected, unweighted edges; adjacency is a set (duplicates collapse).
//   - Sparse IDs: each ID maps to a dense int32 index in insertion order, so an
//     ID like 1_000_000 costs one map entry, not a million array slots.
//   - Self-loops are accepted and counted, but a vertex is never its own neighbor.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//   - Freeze seals the graph and caches an immutable CSR View for lock-free reads.
//
// Lifecycle:
//
//	g, err := core.Build(edges)   // AddEdge for every pair, then Freeze
//	v := g.View()                 // shared snapshot, safe for concurrent traversal
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph              // O(1)
//	Build(edges iter.Seq2[int,int]) (*Graph, error)   // O(V+E), returns frozen graph
//	AddVertex(id int) error                           // O(1), idempotent
//	AddEdge(u, v int) error                           // O(1)†, idempotent per pair
//	Freeze()                                          // O(V+E) once
//
//	// Query
//	HasVertex(id int) bool                 // O(1)
//	HasEdge(u, v int) bool                 // O(1), symmetric
//	NeighborIDs(id int) ([]int, error)     // O(deg), insertion order
//	Vertices() []int                       // O(V), insertion order
//	Degree(id int) (int, error)            // O(1)
//	VertexCount() int / EdgeCount() int    // O(1)
//	AdjacencyList() map[int][]int          // O(V+E)
//	View() *View                           // O(1) when frozen
//	Stats() *GraphStats                    // O(V)
//
// Errors:
//
//	ErrInvalidVertexID  – negative vertex ID
//	ErrVertexNotFound   – missing vertex (NeighborIDs, Degree)
//	ErrFrozen           – mutation after Freeze
//	ErrTooManyVertices  – more than math.MaxInt32 vertices
//
//	† amortized constant time: map insertion + slice append.
package core
