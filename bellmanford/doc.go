// Package bellmanford implements the Bellman–Ford single-source shortest-path
// algorithm over an edge list whose costs may be negative.
//
// Overview:
//
//   - BellmanFord computes the minimum cost from one source node to every
//     node of a directed graph whose node IDs are the dense range [0, n).
//   - Negative cycles are not an error. Every node lying on a negative cycle
//     reachable from the source, and every node reachable from such a cycle,
//     receives −Inf. Unreachable nodes keep +Inf.
//
// Algorithm outline:
//
//  1. Initialise dist[source] = 0 and every other slot to +Inf.
//  2. Relax all edges, in input order, up to n−1 times. Stop early on a pass
//     that changes nothing.
//  3. If the last relaxation pass still changed something, run detection
//     passes: any edge that still relaxes marks its destination −Inf.
//     −Inf propagates along outgoing edges until a pass changes nothing
//     (at most n passes).
//
// Key features:
//
//   - WithOnNegativeCycle: observe each node the detection phase marks.
//   - WithoutValidation:   skip the O(E) precondition scan on trusted input.
//
// Performance and complexity:
//
//   - Time:  O(V·E) worst case; graphs without negative cycles often reach
//     the fixed point after a few passes.
//   - Space: O(V) beyond the caller's edge slice.
//
// Error handling (sentinel errors):
//
//   - core.ErrInvalidVertexCount: n < 0.
//   - core.ErrNodeOutOfRange:     source or an edge endpoint outside [0, n).
//   - core.ErrNaNCost:            an edge cost is NaN.
//
// Thread safety:
//
//   - The edge slice is only read. Each call owns its distances.
//
// See also:
//
//   - dijkstra.Dijkstra for faster solving when every cost is non-negative.
//   - sssp.Compute to pick a solver automatically.
package bellmanford
