// Package hopdist computes shortest-path hop-distance statistics on static,
// unweighted, undirected graphs: the average distance over every reachable
// ordered pair, and the average distance from each labeled group's members
// to everything they can reach, with the lowest and highest groups.
//
// 🚀 What is inside?
//
//	• Core primitive: an int-ID undirected graph that freezes into a CSR view
//	• Traversals: BFS (distances, tallies) and DFS (components)
//	• Aggregation: global and per-group averages with optional parallel fan-out
//	• Collaborators: edge/label loaders, text and JSON reports, a cobra CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     - Graph, Freeze, View; thread-safe build, lock-free reads
//	bfs/      - single-source breadth-first traversal on the frozen view
//	dfs/      - depth-first traversal and connected components
//	groups/   - node → group index with ordered enumeration
//	stats/    - global and per-group distance aggregation
//	loader/   - whitespace pair files, optionally gzip-compressed
//	report/   - text (lipgloss) and JSON (go-json) rendering
//	metrics/  - Prometheus collectors and textfile export
//	config/   - defaults, YAML and environment configuration
//	logging/  - slog construction
//	builder/  - deterministic topology fixtures
//	cmd/hopdist - the command-line entry point
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a four-cycle: every vertex reaches two neighbors at distance 1 and the
//	opposite corner at distance 2, so the global average is 4/3.
//
//	go install github.com/katalvlaran/hopdist/cmd/hopdist@latest
package hopdist
