package digitlist

// handle addresses a node inside an arena. The zero handle means "no node",
// so a zero-value List is a valid empty list.
type handle uint32

const none handle = 0

// node holds one digit and the handles of its neighbours.
type node struct {
	digit uint8
	prev  handle
	next  handle
}

// arena owns every node of a single list. Nodes live in one contiguous
// slice and are addressed by 1-based handles; released slots are kept on a
// free list and handed out again before the slice grows.
type arena struct {
	nodes []node
	free  []handle
}

// alloc returns the handle of a fresh, unlinked node holding d.
func (a *arena) alloc(d uint8) handle {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[h-1] = node{digit: d}
		return h
	}
	a.nodes = append(a.nodes, node{digit: d})
	return handle(len(a.nodes))
}

// at returns a pointer to the node addressed by h. The pointer is only valid
// until the next alloc, which may grow the backing slice.
func (a *arena) at(h handle) *node {
	return &a.nodes[h-1]
}

// release returns h to the free list.
func (a *arena) release(h handle) {
	a.nodes[h-1] = node{}
	a.free = append(a.free, h)
}

// reset drops every node while keeping the backing capacity for reuse.
func (a *arena) reset() {
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}

// live returns the number of nodes currently allocated.
func (a *arena) live() int {
	return len(a.nodes) - len(a.free)
}
