// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order, freezes g.
//   - All public factories are declared in impl_*.go, one topology per file.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble disconnected fixtures;
//     wrap all but one in Shifted(base, ...) to keep their IDs apart.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, applies all constructors in order, and freezes the result.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, plus O(V+E) for Freeze.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g.Freeze()

	return g, nil
}

// Shifted runs c with every ID moved up by base, so that several constructors
// can share one BuildGraph call without colliding. base must be ≥ 0.
func Shifted(base int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		if base < 0 {
			return fmt.Errorf("Shifted: base=%d < 0: %w", base, ErrTooFewVertices)
		}
		inner := cfg.idFn
		cfg.idFn = func(i int) int { return base + inner(i) }
		return c(g, cfg)
	}
}

// addVertices registers cfg.idFn(0..n-1) in ascending index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
	}
	return nil
}

// addEdge connects the vertices at indices i and j, wrapping core errors with context.
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}
	return nil
}
