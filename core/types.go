// Package core defines the central Graph and View types and provides
// thread-safe primitives for building and querying an undirected, unweighted graph
// over non-negative integer vertex identifiers.
//
// All mutating core APIs use separate sync.RWMutex locks internally (muVert for the
// vertex catalog, muEdgeAdj for adjacency and the edge set). Once Freeze is called the
// graph is sealed: mutators fail with ErrFrozen and readers go through an immutable,
// lock-free View snapshot.
//
// This file declares Graph, GraphOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidVertexID   - vertex ID is negative.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrFrozen            - mutation attempted on a frozen graph.
//	ErrTooManyVertices   - dense index space (int32) exhausted.
package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexID indicates that the provided vertex ID is negative.
	ErrInvalidVertexID = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrTooManyVertices indicates the dense index space is exhausted.
	ErrTooManyVertices = errors.New("core: too many vertices")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for roughly n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// The graph is always undirected and unweighted. Adjacency has set semantics:
// adding the same edge twice leaves a single neighbor entry on each side.
// Vertices are stored under a dense int32 index assigned in insertion order,
// so sparse or large IDs cost one map entry each rather than an array slot.
//
// muVert protects ids and index; muEdgeAdj protects adjacency, pairs and loops.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards ids, index
	muEdgeAdj sync.RWMutex // guards adjacency, pairs, loops

	capacity int // pre-size hint from WithCapacity

	// Vertex catalog.
	ids   []int         // dense index -> vertex ID (insertion order)
	index map[int]int32 // vertex ID -> dense index

	// adjacency[i] lists dense neighbor indices of vertex i in first-seen order.
	adjacency [][]int32
	// pairs holds one canonical key per undirected edge (see pairKey).
	pairs map[uint64]struct{}
	// loops counts accepted self-loop records; they never enter adjacency.
	loops int

	freezeOnce sync.Once
	frozen     atomic.Bool          // set once by Freeze
	view       atomic.Pointer[View] // cached snapshot of a frozen graph
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1) plus any pre-sizing requested by options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	g.ids = make([]int, 0, g.capacity)
	g.index = make(map[int]int32, g.capacity)
	g.adjacency = make([][]int32, 0, g.capacity)
	g.pairs = make(map[uint64]struct{})

	return g
}

// GraphStats is a read-only snapshot of graph counters, returned by Stats.
type GraphStats struct {
	// VertexCount is the number of registered vertices.
	VertexCount int `json:"vertices"`
	// EdgeCount is the number of distinct undirected vertex pairs.
	EdgeCount int `json:"edges"`
	// SelfLoops counts accepted u==v records (no adjacency effect).
	SelfLoops int `json:"self_loops"`
	// Isolated is the number of vertices with no neighbors.
	Isolated int `json:"isolated"`
	// MaxDegree is the largest neighbor-set size.
	MaxDegree int `json:"max_degree"`
	// Frozen reports whether Freeze has been called.
	Frozen bool `json:"frozen"`
}

// pairKey packs an unordered pair of dense indices into a canonical key.
func pairKey(a, b int32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}
