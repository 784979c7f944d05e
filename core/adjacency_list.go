package core

// AdjacencyList maps a source node ID to its outgoing arcs.
//
// Arcs for one source keep the relative order in which their edges appeared
// in the input slice. Nodes with no outgoing edge have no key at all, so a
// missing key and an empty slice mean the same thing to readers.
type AdjacencyList map[int][]Arc

// BuildAdjacency groups edges by source in a single pass, appending
// Arc{To, Cost} under Edge.From and creating the key on first sight.
//
// No bounds checking happens here: out-of-range IDs become ordinary keys.
// Solvers validate their input before calling BuildAdjacency.
//
// Complexity: O(E) time, O(V + E) space.
func BuildAdjacency(edges []Edge) AdjacencyList {
	adj := make(AdjacencyList)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], Arc{To: e.To, Cost: e.Cost})
	}

	return adj
}

// Arcs returns the outgoing arcs of id, or nil when id has none.
func (a AdjacencyList) Arcs(id int) []Arc {
	return a[id]
}

// OutDegree returns the number of outgoing arcs of id.
func (a AdjacencyList) OutDegree(id int) int {
	return len(a[id])
}
