package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/core"
)

// ExampleShortestPaths demonstrates hop counts on a 5-vertex cycle 0-1-2-3-4-0.
func ExampleShortestPaths() {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(i, (i+1)%5)
	}
	g.Freeze()

	res, err := bfs.ShortestPaths(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range []int{1, 2, 3, 4} {
		fmt.Printf("0 -> %d: %d\n", id, res.Dist[id])
	}
	// Output:
	// 0 -> 1: 1
	// 0 -> 2: 2
	// 0 -> 3: 2
	// 0 -> 4: 1
}

// ExampleSummarize shows the aggregate form used for averages.
func ExampleSummarize() {
	// A path 0-1-2-3 plus an unreachable pair 8-9.
	g := core.NewGraph()
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(8, 9)
	g.Freeze()

	t, _ := bfs.Summarize(g, 0)
	fmt.Printf("sum=%d count=%d eccentricity=%d\n", t.Sum, t.Count, t.Eccentricity)
	// Output:
	// sum=6 count=3 eccentricity=3
}
