package stats_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hopdist/builder"
	"github.com/katalvlaran/hopdist/groups"
	"github.com/katalvlaran/hopdist/stats"
)

// ExampleGlobal shows the doubled sum and count on a five-cycle.
func ExampleGlobal() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(5))
	res, err := stats.Global(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("sum=%d count=%d avg=%.2f\n", res.Sum, res.Count, res.Average)
	// Output: sum=30 count=20 avg=1.50
}

// ExamplePerGroup reports per-group averages and the extremes.
func ExamplePerGroup() {
	g, _ := builder.BuildGraph(nil, builder.Path(4))
	idx := groups.NewIndex()
	idx.Set(0, 1)
	idx.Set(3, 1)
	idx.Set(1, 2)

	rep, err := stats.PerGroup(context.Background(), g, idx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, st := range rep.Groups {
		fmt.Printf("group %d: %.3f\n", st.Group, st.Average)
	}
	fmt.Println("lowest:", rep.Lowest.Group, "highest:", rep.Highest.Group)
	// Output:
	// group 1: 2.000
	// group 2: 1.333
	// lowest: 2 highest: 1
}
