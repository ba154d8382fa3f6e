// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in idempotent vertex/edge insertion and set-semantics adjacency.
//   - Validate frozen-graph enforcement and the unknown-vertex contract.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopdist/core"
)

// TestGraph_AddVertex verifies idempotency and ID validation.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(-1), core.ErrInvalidVertexID)
	require.NoError(t, g.AddVertex(7))
	require.NoError(t, g.AddVertex(7))
	require.Equal(t, 1, g.VertexCount())
	require.True(t, g.HasVertex(7))
	require.False(t, g.HasVertex(8))

	nbrs, err := g.NeighborIDs(7)
	require.NoError(t, err)
	require.Empty(t, nbrs)
}

// TestGraph_AddEdge_Undirected verifies both endpoints see each other.
func TestGraph_AddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))

	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 1))

	n1, err := g.NeighborIDs(1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, n1)

	n2, err := g.NeighborIDs(2)
	require.NoError(t, err)
	require.Equal(t, []int{1}, n2)
}

// TestGraph_AddEdge_Duplicates verifies a repeated edge, in either orientation,
// is accepted without growing adjacency.
func TestGraph_AddEdge_Duplicates(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(1, 0))
	}

	require.Equal(t, 1, g.EdgeCount())
	d0, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 1, d0)
	d1, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 1, d1)
}

// TestGraph_AddEdge_SelfLoop verifies a loop registers the vertex but adds no neighbor.
func TestGraph_AddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(4, 4))

	require.True(t, g.HasVertex(4))
	require.False(t, g.HasEdge(4, 4))
	require.Equal(t, 0, g.EdgeCount())

	nbrs, err := g.NeighborIDs(4)
	require.NoError(t, err)
	require.Empty(t, nbrs)
	require.Equal(t, 1, g.Stats().SelfLoops)
}

// TestGraph_AddEdge_InvalidIDs verifies negative endpoints are rejected atomically.
func TestGraph_AddEdge_InvalidIDs(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge(-1, 2), core.ErrInvalidVertexID)
	require.ErrorIs(t, g.AddEdge(2, -5), core.ErrInvalidVertexID)
	require.Equal(t, 0, g.VertexCount())
}

// TestGraph_NeighborIDs_Unknown verifies the unknown-vertex contract:
// an error plus an empty, non-nil slice.
func TestGraph_NeighborIDs_Unknown(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))

	nbrs, err := g.NeighborIDs(99)
	require.True(t, errors.Is(err, core.ErrVertexNotFound))
	require.NotNil(t, nbrs)
	require.Empty(t, nbrs)

	g.Freeze()
	nbrs, err = g.NeighborIDs(99)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Empty(t, nbrs)

	_, err = g.Degree(99)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_Vertices_InsertionOrder anchors the enumeration order.
func TestGraph_Vertices_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(30, 10))
	require.NoError(t, g.AddVertex(20))
	require.NoError(t, g.AddEdge(10, 1_000_000))

	require.Equal(t, []int{30, 10, 20, 1_000_000}, g.Vertices())
	g.Freeze()
	require.Equal(t, []int{30, 10, 20, 1_000_000}, g.Vertices())
}

// TestGraph_Freeze verifies mutators fail after Freeze and reads keep working.
func TestGraph_Freeze(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.False(t, g.Frozen())

	g.Freeze()
	g.Freeze() // idempotent

	require.True(t, g.Frozen())
	require.ErrorIs(t, g.AddVertex(2), core.ErrFrozen)
	require.ErrorIs(t, g.AddEdge(1, 2), core.ErrFrozen)
	require.Equal(t, 2, g.VertexCount())
	require.True(t, g.HasEdge(0, 1))
}

// TestGraph_AdjacencyList covers isolated vertices and mirrored entries.
func TestGraph_AdjacencyList(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddVertex(9))

	adj := g.AdjacencyList()
	require.Equal(t, map[int][]int{
		0: {1},
		1: {0, 2},
		2: {1},
		9: {},
	}, adj)
}

// TestGraph_Stats covers the summary counters.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddVertex(5))
	g.Freeze()

	st := g.Stats()
	require.Equal(t, &core.GraphStats{
		VertexCount: 5,
		EdgeCount:   3,
		Isolated:    1,
		MaxDegree:   3,
		Frozen:      true,
	}, st)
}
