// Package sssp is a single-source shortest-path toolkit over plain edge
// lists: build a graph, solve it, look at the answer.
//
// What is in the box?
//
//	A small, dependency-light library that brings together:
//		• Core types: Edge, adjacency lists, distance arrays with ±Inf sentinels
//		• A 1-indexed binary min-heap that tolerates duplicate entries
//		• Shortest paths: lazy Dijkstra (non-negative costs)
//		• Shortest paths: Bellman–Ford with negative-cycle marking (−Inf)
//		• Graph builders: path, cycle, star, complete, grid, random sparse
//		• Graphviz DOT rendering of solved graphs
//
// Graphs are given as []core.Edge over the dense node range [0, n). Results
// are core.Distances of length n where each slot is a finite cost, +Inf
// (unreachable) or −Inf (on or after a negative cycle).
//
// Package layout:
//
//	core/        - Edge, AdjacencyList, Distances and input validation
//	minheap/     - the priority queue used by Dijkstra
//	dijkstra/    - lazy Dijkstra with early stop, distance cap and settle hook
//	bellmanford/ - Bellman–Ford with −Inf propagation and a cycle hook
//	builder/     - deterministic and seeded graph constructors
//	render/      - Graphviz DOT output
//	cmd/sssp/    - command-line front end (solve, generate)
//
// This root package adds Compute, which picks a solver by name or
// automatically from the edge costs:
//
//	dist, err := sssp.Compute(edges, n, 0, sssp.DefaultOptions())
//
// Quick ASCII example:
//
//	    0 ──4──▶ 1
//	    │        ▲
//	    1        2
//	    ▼        │
//	    2 ───────┘
//
//	Compute from 0 gives [0 3 1]: the detour through 2 beats the direct edge.
//
//	go get github.com/katalvlaran/sssp
package sssp
