package heapix

// NotInHeap is the Positions entry for an id with no live item.
const NotInHeap = -1

// Positions maps caller-assigned ids to locations inside a backend: slice
// indices for the binary heap, arena handles for the Fibonacci heap. The
// table grows to fit the largest id seen; growth never invalidates existing
// entries. An entry for a removed id is stale and must not be read until a
// fresh Insert reuses that id.
type Positions []int

// Get returns the location recorded for id, or NotInHeap if there is none.
func (p Positions) Get(id int) int {
	if id < 0 || id >= len(p) {
		return NotInHeap
	}
	return p[id]
}

// Set records the location for id, growing the table as needed.
func (p *Positions) Set(id, loc int) {
	for id >= len(*p) {
		*p = append(*p, NotInHeap)
	}
	(*p)[id] = loc
}

// Remove marks id as absent. Ids beyond the table are already absent.
func (p Positions) Remove(id int) {
	if id >= 0 && id < len(p) {
		p[id] = NotInHeap
	}
}

// Clear forgets every entry, keeping the backing storage for reuse.
func (p *Positions) Clear() {
	*p = (*p)[:0]
}
