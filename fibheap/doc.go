// Package fibheap implements an indexed Fibonacci min-heap.
//
// The heap is a forest of heap-ordered multi-way trees whose roots form a
// circular doubly linked list, with a min handle always on the smallest
// root. Nodes live in an arena and refer to each other by integer handles;
// a handle stays valid for as long as its item is in the heap, so the shared
// position table can map each id straight to its node. Child lists are
// circular in the same arena, which makes splicing a subtree in or out O(1).
//
// Key features:
//   - O(1) amortized Insert and DecreaseKey
//   - O(log n) amortized PopMin
//   - O(1) Min, Len, IsEmpty and Clear
//   - O(n) bulk construction via Build (n inserts, no restructuring)
//   - O(1) id lookup through the position table
//
// Basic usage:
//
//	h := fibheap.New[int](func(a, b int) bool { return a < b })
//
//	h.Insert(0, 42)
//	h.Insert(1, 17)
//	h.Insert(2, 58)
//
//	_ = h.DecreaseKey(2, 13)
//	item, _ := h.PopMin() // (2, 13)
//
// Implementation details:
//
// Insert splices a singleton tree into the root list and never restructures,
// so trees only grow during the consolidation step of PopMin, which links
// equal-degree roots (larger key under smaller) via a degree-indexed table
// until all root degrees are distinct. DecreaseKey cuts a node that drops
// below its parent and promotes it to the root list, then walks the ancestor
// chain: every marked ancestor is cut in turn, the first unmarked non-root
// ancestor is marked and stops the cascade. The mark discipline is what
// bounds a degree-d node below by F(d+2) descendants, which in turn yields
// the amortized costs above; it is a correctness requirement of the cost
// model, not an optimization.
//
// When two root keys compare equal during consolidation, the root scanned
// later wins and the earlier one becomes its child; ordering among equal
// keys is otherwise unspecified but consistent within a run.
package fibheap
