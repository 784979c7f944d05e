// Package minheap provides the priority queue behind the lazy Dijkstra solver:
// a binary min-heap of (node, distance) entries with no decrease-key.
//
// Layout:
//
//	The heap lives in one slice, logically 1-indexed. Slot 0 is a sentinel
//	and is never read, so the index arithmetic stays the textbook form:
//
//	    parent(i) = i / 2      (integer division, truncating)
//	    left(i)   = 2i
//	    right(i)  = 2i + 1
//
//	A separate length field tracks the number of live entries; it does not
//	depend on the slice capacity.
//
// Lazy decrease-key:
//
//	MinHeap has no index from node to slot, so a node's priority cannot be
//	lowered in place. Callers push a fresh entry with the improved distance
//	and treat the heap as a multiset. When an entry surfaces whose distance
//	is larger than the best distance the caller has on record, the entry is
//	stale and is skipped. The price is up to E entries in the heap instead of
//	V, giving O((V + E) log E) for Dijkstra.
//
// Empty heap:
//
//	Peek and ExtractMin on an empty heap return (Entry{}, false). They never
//	panic and never return an error; check the boolean or IsEmpty first.
//
// Complexity:
//
//	Insert, ExtractMin: O(log n). Peek, Len, IsEmpty, Clear: O(1).
package minheap
