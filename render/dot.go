package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/sssp/core"
)

// DOT renders the graph given by edges over [0, n) as a Graphviz digraph.
//
// Every node is drawn, connected or not. When dist is non-nil it must have
// length n; each node label then carries its distance and the fill color
// tells the slot kind:
//
//	source       steelblue2
//	finite       seagreen2
//	+Inf         seashell2
//	−Inf         tomato2
//
// Edges are labelled with their cost; negative costs are drawn in red.
// Parallel edges and self-loops are kept.
func DOT(edges []core.Edge, n int, dist core.Distances, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := core.ValidateVertexCount(n); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := core.ValidateEdges(edges, n); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if dist != nil && len(dist) != n {
		return "", fmt.Errorf("%w: %d != %d", ErrDistanceLength, len(dist), n)
	}
	if cfg.Source >= n {
		return "", fmt.Errorf("render: source: %w", core.ErrNodeOutOfRange)
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(cfg.GraphName); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := graph.SetDir(true); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	parent := cfg.GraphName
	for _, attr := range [][2]string{
		{"rankdir", cfg.RankDir},
		{"nodesep", "0.5"},
		{"ranksep", "0.3"},
	} {
		if err := graph.AddAttr(parent, attr[0], attr[1]); err != nil {
			return "", fmt.Errorf("render: graph attr %s: %w", attr[0], err)
		}
	}

	for id := 0; id < n; id++ {
		if err := graph.AddNode(parent, nodeName(id), nodeAttrs(id, dist, cfg.Source)); err != nil {
			return "", fmt.Errorf("render: node %d: %w", id, err)
		}
	}

	for i, e := range edges {
		if err := graph.AddEdge(nodeName(e.From), nodeName(e.To), true, edgeAttrs(e)); err != nil {
			return "", fmt.Errorf("render: edge[%d] %s: %w", i, e, err)
		}
	}

	return graph.String(), nil
}

func nodeName(id int) string {
	return strconv.Itoa(id)
}

func nodeAttrs(id int, dist core.Distances, source int) map[string]string {
	attrs := map[string]string{
		"shape":     "circle",
		"style":     "filled",
		"fontsize":  "12",
		"fillcolor": colorReachable,
		"label":     strconv.Quote(nodeName(id)),
	}
	if dist != nil {
		// "\n" stays escaped so Graphviz, not DOT parsing, breaks the line.
		attrs["label"] = fmt.Sprintf(`"%d\n%s"`, id, formatDist(dist[id]))
		switch {
		case dist.Unbounded(id):
			attrs["fillcolor"] = colorUnbounded
		case !dist.Reachable(id):
			attrs["fillcolor"] = colorUnreachable
		}
	}
	if id == source {
		attrs["fillcolor"] = colorSource
		attrs["penwidth"] = "2"
	}

	return attrs
}

func edgeAttrs(e core.Edge) map[string]string {
	attrs := map[string]string{
		"label": strconv.Quote(formatCost(e.Cost)),
		"color": colorEdge,
	}
	if e.Cost < 0 {
		attrs["color"] = colorNegEdge
		attrs["fontcolor"] = colorNegEdge
	}

	return attrs
}

// formatDist prints a distance slot; the infinities use the ∞ sign.
func formatDist(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "∞"
	case math.IsInf(d, -1):
		return "-∞"
	default:
		return formatCost(d)
	}
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
