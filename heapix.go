package heapix

import "errors"

// Errors returned by DecreaseKey. Both leave the heap exactly as it was
// before the call.
var (
	// ErrNotFound reports that the id has no item currently in the heap.
	ErrNotFound = errors.New("heapix: id not present in heap")
	// ErrInvalidDecrease reports that the new key is not strictly smaller
	// than the item's current key.
	ErrInvalidDecrease = errors.New("heapix: new key is not smaller than current key")
)

// Item is an (id, key) pair stored in a heap. The id is a dense,
// caller-assigned non-negative integer, unique among the items currently in
// the heap; the key carries the priority and is ordered by the comparison
// function the heap was built with.
type Item[K any] struct {
	ID  int
	Key K
}

// Heap is the operation set common to both backends. Implementations return
// Item values by copy, so callers can never reach into internal storage.
//
// A Heap is not safe for concurrent use.
type Heap[K any] interface {
	// Insert adds an item. The id must not be held by a live item;
	// inserting a duplicate id is unspecified.
	Insert(id int, key K)

	// Min returns the smallest item without removing it. ok is false when
	// the heap is empty.
	Min() (item Item[K], ok bool)

	// PopMin removes and returns the smallest item. ok is false when the
	// heap is empty.
	PopMin() (item Item[K], ok bool)

	// DecreaseKey lowers the key of the item with the given id. It returns
	// ErrNotFound if no live item holds the id, and ErrInvalidDecrease if
	// key is not strictly smaller than the item's current key.
	DecreaseKey(id int, key K) error

	// Len returns the number of items in the heap.
	Len() int

	// IsEmpty reports whether the heap holds no items.
	IsEmpty() bool

	// Clear removes all items.
	Clear()
}
