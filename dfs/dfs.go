// SPDX-License-Identifier: MIT
// Package: hopdist/dfs
//
// dfs.go - iterative depth-first traversal over the frozen CSR view.
//
// Implementation:
//   - Explicit LIFO stack (gods arraystack) of (index, depth, parent).
//   - Neighbors are pushed in reverse so the first neighbor is explored first,
//     reproducing the order a recursive traversal would take.
//   - A vertex popped after it was already visited is discarded.

package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/hopdist/core"
)

// frame is one pending stack entry; parent is -1 for roots.
type frame struct {
	idx    int32
	depth  int32
	parent int32
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	view    *core.View
	opts    DFSOptions
	res     *DFSResult
	stack   *arraystack.Stack
	visited []bool
}

// DFS performs depth-first search on g from start, or over every component
// when WithFullTraversal is set (start is then ignored).
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	view := g.View()
	w := &dfsWalker{
		view:    view,
		opts:    dopts,
		stack:   arraystack.New(),
		visited: make([]bool, view.Len()),
		res: &DFSResult{
			Order:  make([]int, 0, view.Len()),
			Depth:  make(map[int]int, view.Len()),
			Parent: make(map[int]int, view.Len()),
		},
	}

	if dopts.FullTraversal {
		for i := 0; i < view.Len(); i++ {
			if w.visited[i] {
				continue
			}
			if err := w.tree(int32(i)); err != nil {
				return w.res, err
			}
		}
		return w.res, nil
	}

	idx, ok := view.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	if err := w.tree(int32(idx)); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// tree explores the component reachable from root.
func (w *dfsWalker) tree(root int32) error {
	w.res.Roots = append(w.res.Roots, w.view.ID(int(root)))
	w.stack.Push(frame{idx: root, depth: 0, parent: -1})

	for !w.stack.Empty() {
		// Cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			w.stack.Clear()
			return w.opts.Ctx.Err()
		default:
		}

		top, _ := w.stack.Pop()
		f := top.(frame)
		if w.visited[f.idx] {
			continue
		}
		w.visited[f.idx] = true

		id := w.view.ID(int(f.idx))
		w.res.Order = append(w.res.Order, id)
		w.res.Depth[id] = int(f.depth)
		if f.parent >= 0 {
			w.res.Parent[id] = w.view.ID(int(f.parent))
		}
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(id, int(f.depth)); err != nil {
				w.stack.Clear()
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
			}
		}

		// Depth limit: do not descend below MaxDepth.
		if w.opts.MaxDepth >= 0 && int(f.depth) >= w.opts.MaxDepth {
			continue
		}
		nbrs := w.view.Neighbors(int(f.idx))
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !w.visited[nbrs[i]] {
				w.stack.Push(frame{idx: nbrs[i], depth: f.depth + 1, parent: f.idx})
			}
		}
	}

	return nil
}
