// SPDX-License-Identifier: MIT
// Package: hopdist/dfs

package dfs

import (
	"slices"

	"github.com/katalvlaran/hopdist/core"
)

// Components returns the connected components of g. Each component lists its
// vertex IDs in ascending order; components appear in the insertion order of
// their first vertex. Isolated vertices form singleton components.
func Components(g *core.Graph) ([][]int, error) {
	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Roots split Order into trees: each tree is contiguous in pre-order.
	out := make([][]int, 0, len(res.Roots))
	start := 0
	for i := 1; i <= len(res.Order); i++ {
		if i == len(res.Order) || res.Depth[res.Order[i]] == 0 {
			comp := slices.Clone(res.Order[start:i])
			slices.Sort(comp)
			out = append(out, comp)
			start = i
		}
	}

	return out, nil
}

// Connectivity summarizes the component structure of g.
func Connectivity(g *core.Graph) (ConnectivityStats, error) {
	var st ConnectivityStats
	comps, err := Components(g)
	if err != nil {
		return st, err
	}

	st.Components = len(comps)
	for _, c := range comps {
		s := int64(len(c))
		st.ReachablePairs += s * (s - 1)
		if len(c) > st.Largest {
			st.Largest = len(c)
		}
	}

	return st, nil
}
