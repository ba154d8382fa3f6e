// Package builder provides deterministic, functional-options style topology
// constructors for the hopdist core graph. It is used to assemble fixtures for
// tests, examples and benchmarks of the BFS engine and the distance aggregator.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   creates a core.Graph, runs constructors in order, freezes it.
//     – Shifted:      runs a constructor with IDs moved up by a fixed base.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithIDScheme, WithIDOffset, WithSeed, WithRand.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:  identity (index i → ID i).
//     – OffsetIDFn:   base + i.
//     – StrideIDFn:   i * stride.
//   - Topologies:
//     – Cycle, Path, Star, Complete, Grid, RandomSparse, Edges, Isolated.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs,
//     including vertex insertion order.
//   - Runtime errors are returned as wrapped sentinels (errors.Is friendly);
//     only option constructors panic, and only on programmer error (nil inputs).
//   - The returned graph is frozen and safe for concurrent readers.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Cycle(5),
//	    builder.Shifted(100, builder.Path(3)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.VertexCount()) // 8
package builder
