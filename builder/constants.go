// Package builder defines shared constants used by edge-list builders,
// ensuring consistent minima and error context across all constructors.
package builder

// Constructor names, used to prefix errors.
const (
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
)

// Minimum sizes per constructor.
const (
	// MinPathNodes is the smallest path with at least one edge.
	MinPathNodes = 2
	// MinCycleNodes is the smallest ring without self-loops or parallel edges.
	MinCycleNodes = 3
	// MinStarNodes is one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a hub plus a rim of at least MinCycleNodes.
	MinWheelNodes = 4
	// MinCompleteNodes allows K_1, which has no edges.
	MinCompleteNodes = 1
	// MinPartitionSize is the smallest side of a complete bipartite graph.
	MinPartitionSize = 1
	// MinGridDim is the smallest allowed grid dimension; a 1×1 grid has no edges.
	MinGridDim = 1
	// MinRandomSparseNodes allows a single isolated node.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, both inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
