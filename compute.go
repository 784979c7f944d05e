package sssp

import (
	"fmt"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// Resolve maps method to the concrete solver that Compute would run on edges.
// MethodAuto (or "") becomes MethodDijkstra when no cost is negative and
// MethodBellmanFord otherwise.
func Resolve(edges []core.Edge, method string) (string, error) {
	switch method {
	case MethodDijkstra, MethodBellmanFord:
		return method, nil
	case MethodAuto, "":
		if _, neg := core.HasNegativeCost(edges); neg {
			return MethodBellmanFord, nil
		}
		return MethodDijkstra, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Compute selects and runs a shortest-path solver based on opts.Method.
//
//	– MethodDijkstra:    dijkstra.Dijkstra, with WithTarget when HasTarget.
//	– MethodBellmanFord: bellmanford.BellmanFord.
//	– MethodAuto:        whichever Resolve picks.
//	– Otherwise:         ErrUnknownMethod.
//
// Solver errors are returned unchanged, so errors.Is works against the
// sentinels of core and dijkstra.
func Compute(edges []core.Edge, n, source int, opts Options) (core.Distances, error) {
	method, err := Resolve(edges, opts.Method)
	if err != nil {
		return nil, err
	}

	switch method {
	case MethodDijkstra:
		var dopts []dijkstra.Option
		if opts.HasTarget {
			dopts = append(dopts, dijkstra.WithTarget(opts.Target))
		}
		return dijkstra.Dijkstra(edges, n, source, dopts...)
	default:
		if opts.HasTarget {
			if err = core.ValidateNode(opts.Target, n); err != nil {
				return nil, fmt.Errorf("bellmanford: target: %w", err)
			}
		}
		return bellmanford.BellmanFord(edges, n, source)
	}
}
