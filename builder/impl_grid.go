// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) has index r*cols + c and ID cfg.idFn(r*cols + c).
//   • Stable edge order: for each (r,c) in row-major order emit Right then Bottom.
//
// Complexity:
//   • Time: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// The hop distance between two cells equals their Manhattan distance.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addVertices(methodGrid, g, cfg, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
