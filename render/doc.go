// Package render turns edge lists and solver results into Graphviz DOT
// documents, built with github.com/awalterschulze/gographviz.
//
// Usage:
//
//	dist, _ := bellmanford.BellmanFord(edges, n, 0)
//	dot, err := render.DOT(edges, n, dist, render.WithSource(0))
//	// dot | dot -Tsvg > graph.svg
//
// Options:
//
//   - WithGraphName: DOT graph identifier (default "sssp").
//   - WithRankDir:   layout direction (default "LR").
//   - WithSource:    highlight the search origin.
//
// Errors:
//
//   - core.ErrInvalidVertexCount, core.ErrNodeOutOfRange, core.ErrNaNCost
//     for malformed graphs.
//   - ErrDistanceLength when dist is non-nil and len(dist) != n.
package render
