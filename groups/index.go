// SPDX-License-Identifier: MIT
// Package: hopdist/groups
//
// index.go - GroupIndex: node → group labels with ordered enumeration.
//
// Contract:
//   • Negative node or group IDs are ignored by Set.
//   • Last write wins for a node; empty groups are dropped.
//
// Complexity:
//   • Set: O(log G + log M). Group: O(1). Groups: O(G). Members: O(M).

package groups

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
)

// Index records at most one group per node.
type Index struct {
	byNode map[int]int
	// group ID (int) → *treeset.Set of node IDs (int).
	byGroup *treemap.Map
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		byNode:  make(map[int]int),
		byGroup: treemap.NewWithIntComparator(),
	}
}

// FromPairs builds an Index from (node, group) records in stream order.
func FromPairs(pairs iter.Seq2[int, int]) *Index {
	idx := NewIndex()
	for node, group := range pairs {
		idx.Set(node, group)
	}

	return idx
}

// Set assigns node to group, replacing any earlier assignment.
func (x *Index) Set(node, group int) {
	if node < 0 || group < 0 {
		return
	}
	if prev, ok := x.byNode[node]; ok {
		if prev == group {
			return
		}
		x.remove(node, prev)
	}
	x.byNode[node] = group

	var members *treeset.Set
	if v, found := x.byGroup.Get(group); found {
		members = v.(*treeset.Set)
	} else {
		members = treeset.NewWithIntComparator()
		x.byGroup.Put(group, members)
	}
	members.Add(node)
}

func (x *Index) remove(node, group int) {
	v, found := x.byGroup.Get(group)
	if !found {
		return
	}
	members := v.(*treeset.Set)
	members.Remove(node)
	if members.Empty() {
		x.byGroup.Remove(group)
	}
}

// Group returns the group of node and whether the node is labeled.
func (x *Index) Group(node int) (int, bool) {
	g, ok := x.byNode[node]
	return g, ok
}

// Groups returns all group IDs in ascending order.
func (x *Index) Groups() []int {
	keys := x.byGroup.Keys()
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = k.(int)
	}

	return out
}

// Members returns the nodes of group in ascending order, or an empty slice
// when the group does not exist.
func (x *Index) Members(group int) []int {
	v, found := x.byGroup.Get(group)
	if !found {
		return []int{}
	}
	vals := v.(*treeset.Set).Values()
	out := make([]int, len(vals))
	for i, n := range vals {
		out[i] = n.(int)
	}

	return out
}

// Len returns the number of labeled nodes.
func (x *Index) Len() int { return len(x.byNode) }

// GroupCount returns the number of non-empty groups.
func (x *Index) GroupCount() int { return x.byGroup.Size() }
