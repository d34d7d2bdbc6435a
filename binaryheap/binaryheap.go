package binaryheap

import (
	"github.com/PlotoZypresse/heapix"
)

// Heap is an indexed binary min-heap over items ordered by a caller-supplied
// comparison function.
type Heap[K any] struct {
	items []heapix.Item[K]
	pos   heapix.Positions
	less  func(a, b K) bool
}

var _ heapix.Heap[int] = (*Heap[int])(nil)

// New returns an empty heap ordered by less, which must define a strict
// total order over keys.
func New[K any](less func(a, b K) bool) *Heap[K] {
	return &Heap[K]{less: less}
}

// Build returns a heap containing items, heapifying bottom-up from the last
// parent in O(n). Ids must be unique within items.
func Build[K any](less func(a, b K) bool, items []heapix.Item[K]) *Heap[K] {
	h := &Heap[K]{
		items: append([]heapix.Item[K](nil), items...),
		less:  less,
	}
	for i, item := range h.items {
		h.pos.Set(item.ID, i)
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

// Len returns the number of items in the heap.
func (h *Heap[K]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[K]) IsEmpty() bool { return len(h.items) == 0 }

// Clear removes all items, keeping the backing storage for reuse.
func (h *Heap[K]) Clear() {
	h.items = h.items[:0]
	h.pos.Clear()
}

// Insert adds an item and sifts it up to its place. The id must not be held
// by a live item.
func (h *Heap[K]) Insert(id int, key K) {
	h.items = append(h.items, heapix.Item[K]{ID: id, Key: key})
	idx := len(h.items) - 1
	h.pos.Set(id, idx)
	h.up(idx)
}

// Min returns the smallest item without removing it.
func (h *Heap[K]) Min() (heapix.Item[K], bool) {
	if len(h.items) == 0 {
		return heapix.Item[K]{}, false
	}
	return h.items[0], true
}

// PopMin removes and returns the smallest item: the root is swapped with the
// last item, the slice shrinks by one, and the new root sifts down. When
// both children compare equal the left one wins.
func (h *Heap[K]) PopMin() (heapix.Item[K], bool) {
	if len(h.items) == 0 {
		return heapix.Item[K]{}, false
	}

	min := h.items[0]
	last := len(h.items) - 1
	h.swap(0, last)
	h.items = h.items[:last]
	h.pos.Remove(min.ID)

	if len(h.items) > 0 {
		h.down(0)
	}
	return min, true
}

// DecreaseKey lowers the key of the item with the given id and sifts it up.
func (h *Heap[K]) DecreaseKey(id int, key K) error {
	idx := h.pos.Get(id)
	if idx == heapix.NotInHeap {
		return heapix.ErrNotFound
	}
	if !h.less(key, h.items[idx].Key) {
		return heapix.ErrInvalidDecrease
	}
	h.items[idx].Key = key
	h.up(idx)
	return nil
}

// swap exchanges the items at i and j and keeps the position table in sync.
func (h *Heap[K]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos.Set(h.items[i].ID, i)
	h.pos.Set(h.items[j].ID, j)
}

// up moves the item at index i toward the root until heap order holds.
func (h *Heap[K]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i].Key, h.items[parent].Key) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the item at index i toward the leaves until heap order holds.
func (h *Heap[K]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(h.items) && h.less(h.items[left].Key, h.items[smallest].Key) {
			smallest = left
		}
		if right < len(h.items) && h.less(h.items[right].Key, h.items[smallest].Key) {
			smallest = right
		}

		if smallest == i {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}
