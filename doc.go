// Package heapix defines the contract shared by the indexed min-heap
// implementations in this module. A heap stores (id, key) items, always
// knows its minimum, and supports decreasing an item's key addressed by the
// caller-assigned id.
//
// Two interchangeable backends implement the Heap interface:
//   - binaryheap: array-backed binary heap. O(log n) Insert, PopMin and
//     DecreaseKey, O(1) Min, O(n) bulk Build.
//   - fibheap: Fibonacci heap. O(1) amortized Insert and DecreaseKey,
//     O(log n) amortized PopMin, O(1) Min.
//
// Key features:
//   - Generic over the key type; ordering comes from a caller-supplied
//     comparison function, so keys need only a total order
//   - O(1) id lookup through the shared Positions table
//   - Min and PopMin return item copies, never references into the heap
//   - Distinguishable DecreaseKey failures (ErrNotFound, ErrInvalidDecrease)
//     that leave the heap unchanged
//
// Basic usage:
//
//	h := binaryheap.New[int](func(a, b int) bool { return a < b })
//
//	h.Insert(0, 42)
//	h.Insert(1, 17)
//
//	if item, ok := h.Min(); ok {
//		fmt.Printf("min: id=%d key=%d\n", item.ID, item.Key)
//	}
//
//	if err := h.DecreaseKey(0, 5); err != nil {
//		// errors.Is(err, heapix.ErrNotFound) or heapix.ErrInvalidDecrease
//	}
//
//	for !h.IsEmpty() {
//		item, _ := h.PopMin()
//		fmt.Println(item.ID, item.Key)
//	}
//
// Ids are dense non-negative integers assigned by the caller and must be
// unique among the items currently in a heap. The structures perform no
// internal synchronization; callers sharing a heap across goroutines own
// the locking.
package heapix
