// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances from a single start vertex.
//
// BFS explores vertices in non-decreasing distance from a start vertex,
// with optional hooks and depth limiting.
package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/hopdist/core"
)

// queueItem pairs a dense vertex index with its BFS depth.
type queueItem struct {
	idx   int32
	depth int32
}

// walker encapsulates mutable BFS state for a single traversal.
type walker struct {
	view    *core.View
	opts    BFSOptions
	ctx     context.Context
	queue   *linkedlistqueue.Queue
	visited []bool
	start   int32

	// record receives every reached vertex other than the start.
	record func(id int, depth int)
}

// ShortestPaths runs breadth-first search on g from start and returns the hop
// count to every vertex reachable from start, excluding start itself.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Complexity: O(V + E) time; O(V) memory plus queue entries.
func ShortestPaths(g *core.Graph, start int, opts ...Option) (*Result, error) {
	res := &Result{Start: start}
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	res.Dist = make(map[int]int)
	res.Order = make([]int, 0)
	w.record = func(id int, depth int) {
		res.Dist[id] = depth
		res.Order = append(res.Order, id)
	}

	return res, w.loop()
}

// Summarize runs the same traversal as ShortestPaths but only keeps the
// running sum and count of distances, avoiding the per-run map.
//
// On error the returned Tally reflects the vertices processed so far.
func Summarize(g *core.Graph, start int, opts ...Option) (Tally, error) {
	var t Tally
	w, err := newWalker(g, start, opts)
	if err != nil {
		return t, err
	}

	w.record = func(_ int, depth int) {
		t.Sum += int64(depth)
		t.Count++
		if depth > t.Eccentricity {
			t.Eccentricity = depth
		}
	}
	err = w.loop()

	return t, err
}

// newWalker validates input, resolves options, and seeds the queue with (start, 0).
func newWalker(g *core.Graph, start int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	view := g.View()
	idx, ok := view.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		view:    view,
		opts:    o,
		ctx:     o.Ctx,
		queue:   linkedlistqueue.New(),
		visited: make([]bool, view.Len()),
		start:   int32(idx),
	}
	w.enqueue(w.start, 0)

	return w, nil
}

// enqueue calls OnEnqueue and appends the item to the FIFO queue.
func (w *walker) enqueue(idx int32, d int32) {
	w.opts.OnEnqueue(w.view.ID(int(idx)), int(d))
	w.queue.Enqueue(queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
//
// A vertex can sit in the queue several times (reached by more than one
// frontier vertex before its first dequeue). The first dequeue wins and later
// copies are discarded; with unit weights that first copy carries the minimum
// depth, which is also why duplicate edges cannot distort distances.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		if w.visited[item.idx] {
			continue
		}
		w.visited[item.idx] = true

		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the vertex (unless it is the start) and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.view.ID(int(item.idx))
	if item.idx != w.start {
		w.record(id, int(item.depth))
	}
	if err := w.opts.OnVisit(id, int(item.depth)); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unvisited neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && int(next) > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.view.Neighbors(int(item.idx)) {
		if !w.visited[nbr] {
			w.enqueue(nbr, next)
		}
	}
}
