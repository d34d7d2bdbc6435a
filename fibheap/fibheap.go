package fibheap

import (
	"math/bits"

	"github.com/PlotoZypresse/heapix"
)

// none is the null node handle.
const none = -1

// node is one tree node in the arena. Sibling links form a circular doubly
// linked list; a detached node is self-circular.
type node[K any] struct {
	item   heapix.Item[K]
	degree int
	mark   bool
	parent int
	child  int
	left   int
	right  int
}

// Heap is an indexed Fibonacci min-heap over items ordered by a
// caller-supplied comparison function.
type Heap[K any] struct {
	nodes []node[K] // arena; a handle is an index, stable while its node is live
	free  []int     // recycled arena slots
	pos   heapix.Positions
	min   int // handle of the minimum root, or none
	n     int
	less  func(a, b K) bool
}

var _ heapix.Heap[int] = (*Heap[int])(nil)

// New returns an empty heap ordered by less, which must define a strict
// total order over keys.
func New[K any](less func(a, b K) bool) *Heap[K] {
	return &Heap[K]{min: none, less: less}
}

// Build returns a heap containing items. Each item is an O(1) root-list
// splice; no consolidation happens until the first PopMin. Ids must be
// unique within items.
func Build[K any](less func(a, b K) bool, items []heapix.Item[K]) *Heap[K] {
	h := New[K](less)
	for _, item := range items {
		h.Insert(item.ID, item.Key)
	}
	return h
}

// Len returns the number of items in the heap.
func (h *Heap[K]) Len() int { return h.n }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[K]) IsEmpty() bool { return h.n == 0 }

// Clear discards the whole forest, keeping the backing storage for reuse.
func (h *Heap[K]) Clear() {
	h.nodes = h.nodes[:0]
	h.free = h.free[:0]
	h.pos.Clear()
	h.min = none
	h.n = 0
}

// Insert wraps the item in a singleton tree and splices it into the root
// list, updating min if the new key is smaller.
func (h *Heap[K]) Insert(id int, key K) {
	idx := h.alloc(heapix.Item[K]{ID: id, Key: key})
	h.pos.Set(id, idx)
	h.addRoot(idx)
	h.updateMin(idx)
	h.n++
}

// Min returns the smallest item without removing it.
func (h *Heap[K]) Min() (heapix.Item[K], bool) {
	if h.min == none {
		return heapix.Item[K]{}, false
	}
	return h.nodes[h.min].item, true
}

// PopMin removes and returns the smallest item. Its children are promoted
// to the root list, then the remaining roots are consolidated so that every
// root degree is distinct.
func (h *Heap[K]) PopMin() (heapix.Item[K], bool) {
	z := h.min
	if z == none {
		return heapix.Item[K]{}, false
	}

	// Promote the children of z to the root list. The saved right link of
	// each child still points at an unprocessed sibling because processed
	// ones have been detached.
	if first := h.nodes[z].child; first != none {
		cur := first
		for i := h.nodes[z].degree; i > 0; i-- {
			next := h.nodes[cur].right
			h.detach(cur)
			h.nodes[cur].parent = none
			h.nodes[cur].mark = false
			h.addRoot(cur)
			cur = next
		}
		h.nodes[z].child = none
		h.nodes[z].degree = 0
	}

	successor := h.nodes[z].right
	h.detach(z)

	item := h.nodes[z].item
	h.pos.Remove(item.ID)
	h.free = append(h.free, z)
	h.n--

	if successor == z {
		// z was the last root.
		h.min = none
	} else {
		h.min = successor
		h.consolidate()
	}
	return item, true
}

// DecreaseKey lowers the key of the item with the given id. If heap order
// with the parent breaks, the node is cut to the root list and a cascading
// cut walks the ancestor chain.
func (h *Heap[K]) DecreaseKey(id int, key K) error {
	idx := h.pos.Get(id)
	if idx == heapix.NotInHeap {
		return heapix.ErrNotFound
	}
	if !h.less(key, h.nodes[idx].item.Key) {
		return heapix.ErrInvalidDecrease
	}
	h.nodes[idx].item.Key = key

	if p := h.nodes[idx].parent; p != none && h.less(key, h.nodes[p].item.Key) {
		h.cut(idx, p)
		h.cascadingCut(p)
	}
	if h.nodes[idx].parent == none {
		h.updateMin(idx)
	}
	return nil
}

// alloc places item in a fresh or recycled arena slot and returns its
// handle, self-circular and ready to splice.
func (h *Heap[K]) alloc(item heapix.Item[K]) int {
	idx := len(h.nodes)
	if k := len(h.free); k > 0 {
		idx = h.free[k-1]
		h.free = h.free[:k-1]
	} else {
		h.nodes = append(h.nodes, node[K]{})
	}
	h.nodes[idx] = node[K]{item: item, parent: none, child: none, left: idx, right: idx}
	return idx
}

// addRoot splices a detached node into the root list next to min.
func (h *Heap[K]) addRoot(idx int) {
	if h.min == none {
		h.min = idx
		return
	}
	m := h.min
	l := h.nodes[m].left
	h.nodes[idx].left = l
	h.nodes[idx].right = m
	h.nodes[l].right = idx
	h.nodes[m].left = idx
}

// updateMin points min at idx if its key is smaller, or if the heap had no
// min. idx must be a root.
func (h *Heap[K]) updateMin(idx int) {
	if h.min == none || h.less(h.nodes[idx].item.Key, h.nodes[h.min].item.Key) {
		h.min = idx
	}
}

// detach unlinks idx from its sibling list, leaving it self-circular. The
// parent link is untouched.
func (h *Heap[K]) detach(idx int) {
	l := h.nodes[idx].left
	r := h.nodes[idx].right
	h.nodes[l].right = r
	h.nodes[r].left = l
	h.nodes[idx].left = idx
	h.nodes[idx].right = idx
}

// link makes root y a child of root x, which must not have a larger key.
func (h *Heap[K]) link(y, x int) {
	h.detach(y)
	if c := h.nodes[x].child; c != none {
		l := h.nodes[c].left
		h.nodes[y].left = l
		h.nodes[y].right = c
		h.nodes[l].right = y
		h.nodes[c].left = y
	} else {
		h.nodes[x].child = y
	}
	h.nodes[y].parent = x
	h.nodes[y].mark = false
	h.nodes[x].degree++
}

// consolidate links equal-degree roots (larger key under smaller) via a
// degree-indexed table until every root degree is distinct, then rebuilds
// the root list and recomputes min. Single pass over the roots plus the
// table, O(log n + number of roots).
func (h *Heap[K]) consolidate() {
	aux := make([]int, maxDegree(h.n))
	for i := range aux {
		aux[i] = none
	}

	// Snapshot the roots first; linking mutates the list being walked.
	var roots []int
	for w := h.min; ; {
		roots = append(roots, w)
		w = h.nodes[w].right
		if w == h.min {
			break
		}
	}

	for _, x := range roots {
		d := h.nodes[x].degree
		for {
			for d >= len(aux) {
				aux = append(aux, none)
			}
			y := aux[d]
			if y == none {
				aux[d] = x
				break
			}
			// Equal keys: the root scanned later stays on top.
			if h.less(h.nodes[y].item.Key, h.nodes[x].item.Key) {
				x, y = y, x
			}
			aux[d] = none
			h.link(y, x)
			d++
		}
	}

	h.min = none
	for _, idx := range aux {
		if idx == none {
			continue
		}
		h.nodes[idx].left = idx
		h.nodes[idx].right = idx
		h.nodes[idx].parent = none
		h.addRoot(idx)
		h.updateMin(idx)
	}
}

// cut detaches idx from parent's child list and promotes it to the root
// list as an unmarked root.
func (h *Heap[K]) cut(idx, parent int) {
	if h.nodes[parent].child == idx {
		if h.nodes[idx].right == idx {
			h.nodes[parent].child = none
		} else {
			h.nodes[parent].child = h.nodes[idx].right
		}
	}
	h.detach(idx)
	h.nodes[parent].degree--
	h.nodes[idx].parent = none
	h.nodes[idx].mark = false
	h.addRoot(idx)
}

// cascadingCut walks up from a node that just lost a child: marked
// ancestors are cut in turn, the first unmarked non-root ancestor is marked
// and stops the cascade, a root stops it unmarked. Iterative on purpose;
// cascades can run the full height of a tree.
func (h *Heap[K]) cascadingCut(idx int) {
	for {
		p := h.nodes[idx].parent
		if p == none {
			return
		}
		if !h.nodes[idx].mark {
			h.nodes[idx].mark = true
			return
		}
		h.cut(idx, p)
		idx = p
	}
}

// maxDegree bounds the degree of any node in a heap of n items: a node of
// degree d has at least F(d+2) descendants, so degrees stay logarithmic
// in n.
func maxDegree(n int) int {
	return bits.Len(uint(n)) + 2
}
