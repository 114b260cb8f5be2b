package digitlist

// Swap exchanges the digits at i and j. Unlike the indexed accessors it
// does not return an error: it reports false, leaving the list untouched,
// when either index is out of range.
func (l *List) Swap(i, j int) bool {
	if i < 0 || i >= l.size || j < 0 || j >= l.size {
		return false
	}
	if i == j {
		return true
	}
	a, b := l.nodes.at(l.nodeAt(i)), l.nodes.at(l.nodeAt(j))
	a.digit, b.digit = b.digit, a.digit
	return true
}

// ShiftLeft rotates the list one step to the left: the head node becomes
// the tail.
func (l *List) ShiftLeft() {
	if l.size <= 1 {
		return
	}
	first := l.head
	f := l.nodes.at(first)
	l.head = f.next
	l.nodes.at(l.head).prev = none

	f.prev, f.next = l.tail, none
	l.nodes.at(l.tail).next = first
	l.tail = first
	l.mods++
}

// ShiftRight rotates the list one step to the right: the tail node becomes
// the head.
func (l *List) ShiftRight() {
	if l.size <= 1 {
		return
	}
	last := l.tail
	t := l.nodes.at(last)
	l.tail = t.prev
	l.nodes.at(l.tail).next = none

	t.prev, t.next = none, l.head
	l.nodes.at(l.head).prev = last
	l.head = last
	l.mods++
}

// SortAscending orders the digits from smallest to largest and returns the
// number of exchanges performed. Equal digits keep their relative order.
func (l *List) SortAscending() int {
	return l.bubble(func(a, b uint8) bool { return a > b })
}

// SortDescending orders the digits from largest to smallest and returns the
// number of exchanges performed. Equal digits keep their relative order.
func (l *List) SortDescending() int {
	return l.bubble(func(a, b uint8) bool { return a < b })
}

// bubble repeats passes over adjacent nodes, exchanging their digits when
// outOfOrder holds, until a pass makes no exchange.
func (l *List) bubble(outOfOrder func(a, b uint8) bool) int {
	if l.size <= 1 {
		return 0
	}
	swaps := 0
	for {
		swapped := false
		for h := l.head; h != none; {
			cur := l.nodes.at(h)
			if cur.next == none {
				break
			}
			next := l.nodes.at(cur.next)
			if outOfOrder(cur.digit, next.digit) {
				cur.digit, next.digit = next.digit, cur.digit
				swapped = true
				swaps++
			}
			h = cur.next
		}
		if !swapped {
			return swaps
		}
	}
}
