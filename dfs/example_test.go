package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/hopdist/builder"
	"github.com/katalvlaran/hopdist/dfs"
)

// ExampleComponents lists the components of a two-piece graph.
func ExampleComponents() {
	g, _ := builder.BuildGraph(nil,
		builder.Cycle(3),
		builder.Shifted(10, builder.Path(2)),
	)
	comps, _ := dfs.Components(g)
	fmt.Println(comps)
	// Output: [[0 1 2] [10 11]]
}
