// Package dijkstra implements the lazy variant of Dijkstra's shortest-path
// algorithm over an edge list with non-negative costs.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from one source node to every node
//     of a directed graph whose node IDs are the dense range [0, n).
//   - Nodes are settled in non-decreasing distance order using the
//     minheap package, a binary heap with no decrease-key.
//   - Improving a node pushes a duplicate heap entry; stale entries are
//     recognised on extraction (recorded distance > best known distance)
//     and skipped.
//
// Key features:
//
//   - WithTarget:        stop as soon as the target is settled.
//   - WithMaxDistance:   do not explore beyond a cost cap.
//   - WithOnSettle:      observe every node at the moment it is finalised.
//   - WithoutValidation: skip the O(E) precondition scan on trusted input.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E)
//   - Each node is settled at most once.
//   - Each successful relaxation pushes one entry (up to E pushes).
//   - Space: O(V + E) for distances, visited flags, adjacency and heap.
//
// An indexed heap would bring the bound to O((V + E) log V); the lazy form
// trades that for a heap with no node→slot bookkeeping.
//
// Error handling (sentinel errors):
//
//   - core.ErrInvalidVertexCount: n < 0.
//   - core.ErrNodeOutOfRange:     source, target or an edge endpoint outside [0, n).
//   - core.ErrNaNCost:            an edge cost is NaN.
//   - ErrNegativeWeight:          any edge cost < 0 (detected by a pre-scan).
//   - ErrBadMaxDistance:          panic from WithMaxDistance on a negative cap.
//
// Thread safety:
//
//   - Each call owns its distances, adjacency and heap. Concurrent calls
//     sharing one read-only edge slice are safe.
//
// See also:
//
//   - bellmanford.BellmanFord for graphs with negative costs.
//   - sssp.Compute to pick a solver automatically.
package dijkstra
