package minheap

// Entry is one (node, tentative distance) pair stored in the heap.
// Several entries may carry the same Node; the heap never deduplicates.
type Entry struct {
	Node int     // node ID
	Dist float64 // tentative distance recorded when the entry was pushed
}

// root is the logical index of the minimum; slot 0 is an unused sentinel.
const root = 1

// MinHeap is an array-backed binary min-heap of Entry ordered by Dist.
//
// Storage is logically 1-indexed: data[0] is a sentinel that is never read,
// and the live entries occupy data[1..length]. For every index i in
// [2, length], data[parent(i)].Dist ≤ data[i].Dist.
//
// There is no decrease-key. To improve a node's priority, Insert a new entry
// with the smaller distance and let the consumer drop the stale one when it
// surfaces (the "lazy" scheme).
//
// A MinHeap is not safe for concurrent use.
type MinHeap struct {
	data   []Entry // data[0] is the sentinel
	length int     // number of live entries, independent of cap(data)
}

// New returns an empty heap.
func New() *MinHeap {
	return NewWithCapacity(0)
}

// NewWithCapacity returns an empty heap whose storage can hold capacity
// entries before growing. Negative capacities are treated as zero.
func NewWithCapacity(capacity int) *MinHeap {
	if capacity < 0 {
		capacity = 0
	}
	data := make([]Entry, 1, capacity+1)

	return &MinHeap{data: data}
}

// Len returns the number of live entries, stale ones included.
func (h *MinHeap) Len() int { return h.length }

// IsEmpty reports whether the heap holds no entries.
func (h *MinHeap) IsEmpty() bool { return h.length == 0 }

// Clear drops every entry, keeping the allocated storage.
func (h *MinHeap) Clear() {
	h.data = h.data[:1]
	h.length = 0
}

// Insert appends (node, dist) and sifts it up while it is smaller than its
// parent.
// Complexity: O(log n).
func (h *MinHeap) Insert(node int, dist float64) {
	h.data = append(h.data, Entry{Node: node, Dist: dist})
	h.length++
	h.siftUp(h.length)
}

// Peek returns the minimum entry without removing it.
// On an empty heap it returns (Entry{}, false).
func (h *MinHeap) Peek() (Entry, bool) {
	if h.length == 0 {
		return Entry{}, false
	}

	return h.data[root], true
}

// ExtractMin removes and returns the minimum entry.
// On an empty heap it returns (Entry{}, false) and leaves the heap untouched.
//
// The last entry is moved into the root slot, the logical length shrinks by
// one, and the new root is sifted down.
// Complexity: O(log n).
func (h *MinHeap) ExtractMin() (Entry, bool) {
	if h.length == 0 {
		return Entry{}, false
	}

	top := h.data[root]
	h.swap(root, h.length)
	h.data = h.data[:h.length]
	h.length--
	h.siftDown(root)

	return top, true
}

// siftUp moves the entry at i towards the root while its parent is larger.
func (h *MinHeap) siftUp(i int) {
	for i > root {
		p := parent(i)
		if h.data[p].Dist <= h.data[i].Dist {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// siftDown moves the entry at i towards the leaves while it is larger than
// its smaller child. The right child is only considered when it exists.
func (h *MinHeap) siftDown(i int) {
	for {
		smallest := left(i)
		if smallest > h.length {
			return // leaf
		}
		if r := right(i); r <= h.length && h.data[r].Dist < h.data[smallest].Dist {
			smallest = r
		}
		if h.data[i].Dist <= h.data[smallest].Dist {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *MinHeap) swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }

// parent uses integer division, which truncates: parent(2) == parent(3) == 1.
func parent(i int) int { return i / 2 }

func left(i int) int { return 2 * i }

func right(i int) int { return 2*i + 1 }
