package groups_test

import (
	"fmt"

	"github.com/katalvlaran/hopdist/groups"
)

func ExampleIndex() {
	idx := groups.NewIndex()
	idx.Set(4, 2)
	idx.Set(1, 7)
	idx.Set(3, 2)
	idx.Set(1, 2) // relabel: group 7 is dropped

	for _, g := range idx.Groups() {
		fmt.Println(g, idx.Members(g))
	}
	// Output: 2 [1 3 4]
}
