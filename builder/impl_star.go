// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 total vertices (else ErrTooFewVertices).
//   • Index 0 is the hub; indices 1..n-1 are leaves.
//   • Emits edges {0, i} for i=1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star K_{1,n-1} with hub at index 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}
