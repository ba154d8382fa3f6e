// File: view.go
// Role: Immutable, lock-free snapshot of graph topology in compressed (CSR) form.
// Determinism:
//   - Dense indices follow vertex insertion order; neighbor order follows edge insertion order.
// Concurrency:
//   - A View never changes after construction and is safe for any number of concurrent readers.
// AI-HINT (file):
//   - On a frozen graph View() is computed once by Freeze and shared.
//   - Traversal engines should work on dense indices (0..Len()-1) and map back with ID().

package core

// View is a read-only snapshot of a Graph.
//
// Neighbors of dense vertex i are targets[offsets[i]:offsets[i+1]].
type View struct {
	ids     []int         // dense index -> vertex ID
	index   map[int]int32 // vertex ID -> dense index
	offsets []int         // len(ids)+1 prefix sums over degrees
	targets []int32       // concatenated neighbor lists
	edges   int           // distinct undirected edges
}

// View returns a snapshot of the current topology.
//
// For a frozen graph the snapshot built by Freeze is returned (O(1)).
// Otherwise a fresh snapshot is built under read locks (O(V + E)); it will not
// observe later mutations.
func (g *Graph) View() *View {
	if v := g.view.Load(); v != nil {
		return v
	}

	return newView(g)
}

// newView copies topology into CSR form under read locks (muVert -> muEdgeAdj).
func newView(g *Graph) *View {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := len(g.ids)
	v := &View{
		ids:     make([]int, n),
		index:   make(map[int]int32, n),
		offsets: make([]int, n+1),
		targets: make([]int32, 0, 2*len(g.pairs)),
		edges:   len(g.pairs),
	}
	copy(v.ids, g.ids)
	for id, idx := range g.index {
		v.index[id] = idx
	}
	for i := 0; i < n; i++ {
		v.offsets[i] = len(v.targets)
		v.targets = append(v.targets, g.adjacency[i]...)
	}
	v.offsets[n] = len(v.targets)

	return v
}

// Len returns the number of vertices in the snapshot.
func (v *View) Len() int { return len(v.ids) }

// EdgeCount returns the number of distinct undirected edges in the snapshot.
func (v *View) EdgeCount() int { return v.edges }

// ID maps a dense index back to its vertex ID. Panics if i is out of range.
func (v *View) ID(i int) int { return v.ids[i] }

// Index maps a vertex ID to its dense index.
func (v *View) Index(id int) (int, bool) {
	idx, ok := v.index[id]
	return int(idx), ok
}

// Neighbors returns the dense neighbor indices of dense vertex i.
// The slice aliases the snapshot and must not be modified.
func (v *View) Neighbors(i int) []int32 {
	return v.targets[v.offsets[i]:v.offsets[i+1]]
}

// Degree returns the neighbor count of dense vertex i.
func (v *View) Degree(i int) int { return v.offsets[i+1] - v.offsets[i] }

// Vertices returns a copy of all vertex IDs in dense-index order.
func (v *View) Vertices() []int {
	out := make([]int, len(v.ids))
	copy(out, v.ids)
	return out
}
