// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_edges.go - implementation of the Edges(flat...) constructor.
//
// Contract:
//   • flat is u0,v0,u1,v1,...; odd length → ErrConstructFailed.
//   • Values are indices passed through cfg.idFn, so WithIDScheme and Shifted apply.
//   • Duplicates and self-loops are forwarded to core unchanged.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const methodEdges = "Edges"

// Edges returns a Constructor that adds an explicit edge list.
func Edges(flat ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(flat)%2 != 0 {
			return fmt.Errorf("%s: odd length %d: %w", methodEdges, len(flat), ErrConstructFailed)
		}
		for i := 0; i < len(flat); i += 2 {
			if err := addEdge(methodEdges, g, cfg, flat[i], flat[i+1]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Isolated returns a Constructor that registers n vertices with no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("Isolated: n=%d < 0: %w", n, ErrTooFewVertices)
		}
		return addVertices("Isolated", g, cfg, n)
	}
}
