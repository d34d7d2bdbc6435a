// Package binaryheap implements an indexed array-backed binary min-heap.
//
// Items live in a dense slice forming an implicit tree: the children of
// index i sit at 2i+1 and 2i+2, and index 0 is always the minimum. A shared
// position table maps each item's id to its current slice index and is kept
// in sync on every swap, which is what makes DecreaseKey addressable by id.
//
// Key features:
//   - O(log n) Insert, PopMin and DecreaseKey
//   - O(1) Min, Len, IsEmpty and Clear
//   - O(n) bulk construction via Build (bottom-up heapify, not n inserts)
//   - O(1) id lookup through the position table
//
// Basic usage:
//
//	h := binaryheap.New[float64](func(a, b float64) bool { return a < b })
//
//	h.Insert(0, 3.14)
//	h.Insert(1, 2.71)
//
//	item, _ := h.Min()      // (1, 2.71)
//	_ = h.DecreaseKey(0, 1) // id 0 now carries key 1.0
//	item, _ = h.PopMin()    // (0, 1.0)
//
// When two keys compare equal, sift-down prefers the left child; ordering
// among equal keys is otherwise unspecified but consistent within a run.
package binaryheap
