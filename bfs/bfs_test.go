package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/core"
)

// mustGraph builds a frozen graph from a flat u,v,u,v,... list.
func mustGraph(t testing.TB, flat ...int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(flat); i += 2 {
		if err := g.AddEdge(flat[i], flat[i+1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", flat[i], flat[i+1], err)
		}
	}
	g.Freeze()
	return g
}

// fiveCycle is 0-1-2-3-4-0.
func fiveCycle(t testing.TB) *core.Graph {
	return mustGraph(t, 0, 1, 1, 2, 2, 3, 3, 4, 4, 0)
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.ShortestPaths(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := fiveCycle(t)
	if _, err := bfs.ShortestPaths(g, 42); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.Summarize(g, 42); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("Summarize missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.ShortestPaths(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestShortestPaths_FiveCycle is the reference fixture: from 0 the distances
// are {1:1, 2:2, 3:2, 4:1} and 0 itself is excluded.
func TestShortestPaths_FiveCycle(t *testing.T) {
	res, err := bfs.ShortestPaths(fiveCycle(t), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[int]int{1: 1, 2: 2, 3: 2, 4: 1}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	if _, ok := res.Dist[0]; ok {
		t.Error("start vertex must not appear in Dist")
	}
	if len(res.Order) != 4 {
		t.Fatalf("Order = %v; want 4 entries", res.Order)
	}
	// Depth-1 layer {1,4} precedes depth-2 layer {2,3}.
	layer1 := map[int]bool{res.Order[0]: true, res.Order[1]: true}
	if !layer1[1] || !layer1[4] {
		t.Errorf("depth-1 layer = %v; want {1,4}", res.Order[:2])
	}
}

// TestSummarize_MatchesShortestPaths checks Tally against the full result.
func TestSummarize_MatchesShortestPaths(t *testing.T) {
	g := fiveCycle(t)
	for _, start := range g.Vertices() {
		res, err := bfs.ShortestPaths(g, start)
		if err != nil {
			t.Fatal(err)
		}
		tally, err := bfs.Summarize(g, start)
		if err != nil {
			t.Fatal(err)
		}
		var sum int64
		ecc := 0
		for _, d := range res.Dist {
			sum += int64(d)
			if d > ecc {
				ecc = d
			}
		}
		if tally.Sum != sum || tally.Count != int64(len(res.Dist)) || tally.Eccentricity != ecc {
			t.Errorf("start %d: tally %+v; want sum=%d count=%d ecc=%d", start, tally, sum, len(res.Dist), ecc)
		}
	}
	// every start on the 5-cycle sees sum 6 over 4 vertices
	tally, _ := bfs.Summarize(g, 3)
	if tally.Sum != 6 || tally.Count != 4 {
		t.Errorf("tally from 3 = %+v; want sum=6 count=4", tally)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := mustGraph(t, 10, 11, 11, 12, 20, 21)

	res, _ := bfs.ShortestPaths(g, 10)
	if want := map[int]int{11: 1, 12: 2}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("From 10: got %v; want %v", res.Dist, want)
	}
	res, _ = bfs.ShortestPaths(g, 21)
	if want := map[int]int{20: 1}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("From 21: got %v; want %v", res.Dist, want)
	}
}

// TestBFS_IsolatedStart verifies a vertex with no edges reaches nothing.
func TestBFS_IsolatedStart(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1)
	_ = g.AddVertex(5)
	g.Freeze()

	res, err := bfs.ShortestPaths(g, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Dist) != 0 || len(res.Order) != 0 {
		t.Errorf("isolated start reached %v", res.Dist)
	}
	tally, _ := bfs.Summarize(g, 5)
	if tally.Reached() {
		t.Errorf("isolated tally = %+v; want empty", tally)
	}
}

// TestBFS_DuplicateEdges ensures repeated edges do not change distances.
func TestBFS_DuplicateEdges(t *testing.T) {
	plain := mustGraph(t, 0, 1, 1, 2, 2, 3)
	dup := mustGraph(t, 0, 1, 1, 0, 0, 1, 1, 2, 2, 1, 2, 3, 3, 2, 2, 3)

	a, _ := bfs.ShortestPaths(plain, 0)
	b, _ := bfs.ShortestPaths(dup, 0)
	if !reflect.DeepEqual(a.Dist, b.Dist) {
		t.Errorf("duplicate edges changed distances: %v vs %v", a.Dist, b.Dist)
	}
}

// TestBFS_MultiplePaths covers a vertex reachable by several frontier vertices
// before its first dequeue: it is enqueued twice but visited once.
func TestBFS_MultiplePaths(t *testing.T) {
	// 0 connects to 1 and 2, both connect to 3.
	g := mustGraph(t, 0, 1, 0, 2, 1, 3, 2, 3)

	enqueued := map[int]int{}
	visited := map[int]int{}
	res, err := bfs.ShortestPaths(g, 0,
		bfs.WithOnEnqueue(func(id, _ int) { enqueued[id]++ }),
		bfs.WithOnVisit(func(id, _ int) error { visited[id]++; return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if enqueued[3] != 2 {
		t.Errorf("vertex 3 enqueued %d times; want 2", enqueued[3])
	}
	for id, n := range visited {
		if n != 1 {
			t.Errorf("vertex %d visited %d times; want 1", id, n)
		}
	}
	if res.Dist[3] != 2 {
		t.Errorf("Dist[3] = %d; want 2", res.Dist[3])
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustGraph(t, 0, 1, 1, 2, 2, 3)

	res, _ := bfs.ShortestPaths(g, 0, bfs.WithMaxDepth(1))
	if want := map[int]int{1: 1}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("depth 1: got %v; want %v", res.Dist, want)
	}
	res, _ = bfs.ShortestPaths(g, 0, bfs.WithMaxDepth(0))
	if len(res.Dist) != 3 {
		t.Errorf("depth 0 (no limit): got %v; want 3 entries", res.Dist)
	}
}

// TestBFS_OnVisitError verifies hook errors abort and are wrapped.
func TestBFS_OnVisitError(t *testing.T) {
	g := fiveCycle(t)
	stop := errors.New("stop")
	_, err := bfs.ShortestPaths(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestBFS_ContextCancel verifies a cancelled context aborts the traversal.
func TestBFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Summarize(fiveCycle(t), 0, bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_UnfrozenGraph verifies traversal also works on a mutable graph.
func TestBFS_UnfrozenGraph(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	res, err := bfs.ShortestPaths(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := map[int]int{1: 1, 0: 2}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("got %v; want %v", res.Dist, want)
	}
}
