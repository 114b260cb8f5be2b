package digitlist

import (
	"iter"
	"slices"

	apperrors "github.com/agbru/numlist/internal/errors"
)

// MaxDigit is the largest digit value a list stores. Values 10..35 render
// as the letters A..Z.
const MaxDigit uint8 = 35

// List is a doubly-linked sequence of digits in a given base.
// The zero value is an empty list without a base.
type List struct {
	nodes arena
	head  handle
	tail  handle
	size  int
	base  int
	// mods counts structural changes; cursors use it to detect mutation
	// made behind their back.
	mods uint64
}

// New returns an empty list whose digits are expressed in base.
func New(base int) *List {
	return &List{base: base}
}

// NewWithDigits returns a list in base holding digits in order. Digits above
// MaxDigit are skipped rather than rejected.
func NewWithDigits(base int, digits ...uint8) *List {
	l := New(base)
	for _, d := range digits {
		if ValidDigit(d) {
			l.pushBack(d)
		}
	}
	return l
}

// ValidDigit reports whether d can be stored in a list.
func ValidDigit(d uint8) bool { return d <= MaxDigit }

func checkDigit(d uint8) error {
	if !ValidDigit(d) {
		return apperrors.DigitError{Digit: d, Max: MaxDigit}
	}
	return nil
}

// Len returns the number of digits in the list.
func (l *List) Len() int { return l.size }

// IsEmpty reports whether the list holds no digits.
func (l *List) IsEmpty() bool { return l.size == 0 }

// Base returns the radix the digits are expressed in. It is descriptive
// metadata and is not checked against the stored digits.
func (l *List) Base() int { return l.base }

// SetBase changes the radix tag without touching the digits.
func (l *List) SetBase(base int) { l.base = base }

// Append adds d at the end of the list.
func (l *List) Append(d uint8) error {
	if err := checkDigit(d); err != nil {
		return err
	}
	l.pushBack(d)
	return nil
}

// Get returns the digit at index.
func (l *List) Get(index int) (uint8, error) {
	if err := l.checkElementIndex("get", index); err != nil {
		return 0, err
	}
	return l.nodes.at(l.nodeAt(index)).digit, nil
}

// Set replaces the digit at index and returns the previous value.
func (l *List) Set(index int, d uint8) (uint8, error) {
	if err := l.checkElementIndex("set", index); err != nil {
		return 0, err
	}
	if err := checkDigit(d); err != nil {
		return 0, err
	}
	n := l.nodes.at(l.nodeAt(index))
	old := n.digit
	n.digit = d
	return old, nil
}

// Insert places d so that it ends up at index, shifting later digits right.
// Index may equal Len, in which case Insert behaves like Append.
func (l *List) Insert(index int, d uint8) error {
	if err := l.checkPositionIndex("insert", index); err != nil {
		return err
	}
	if err := checkDigit(d); err != nil {
		return err
	}
	if index == l.size {
		l.pushBack(d)
		return nil
	}
	l.linkBefore(d, l.nodeAt(index))
	return nil
}

// RemoveAt unlinks the digit at index and returns it.
func (l *List) RemoveAt(index int) (uint8, error) {
	if err := l.checkElementIndex("remove", index); err != nil {
		return 0, err
	}
	return l.unlink(l.nodeAt(index)), nil
}

// RemoveValue removes the first occurrence of d, scanning from the head.
// It reports whether a digit was removed.
func (l *List) RemoveValue(d uint8) bool {
	for h := l.head; h != none; h = l.nodes.at(h).next {
		if l.nodes.at(h).digit == d {
			l.unlink(h)
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of d, or -1.
func (l *List) IndexOf(d uint8) int {
	i := 0
	for h := l.head; h != none; h = l.nodes.at(h).next {
		if l.nodes.at(h).digit == d {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of d, or -1.
func (l *List) LastIndexOf(d uint8) int {
	i := l.size - 1
	for h := l.tail; h != none; h = l.nodes.at(h).prev {
		if l.nodes.at(h).digit == d {
			return i
		}
		i--
	}
	return -1
}

// Contains reports whether d occurs in the list.
func (l *List) Contains(d uint8) bool { return l.IndexOf(d) >= 0 }

// ContainsAll reports whether every digit of ds occurs in the list.
func (l *List) ContainsAll(ds []uint8) bool {
	for _, d := range ds {
		if !l.Contains(d) {
			return false
		}
	}
	return true
}

// AppendAll appends every valid digit of ds and reports whether the list
// changed. Invalid digits are skipped.
func (l *List) AppendAll(ds []uint8) bool {
	changed := false
	for _, d := range ds {
		if l.Append(d) == nil {
			changed = true
		}
	}
	return changed
}

// InsertAll inserts ds in order starting at index. Nothing is inserted if
// the index is out of range or any digit is invalid.
func (l *List) InsertAll(index int, ds []uint8) (bool, error) {
	if err := l.checkPositionIndex("insert", index); err != nil {
		return false, err
	}
	for _, d := range ds {
		if err := checkDigit(d); err != nil {
			return false, err
		}
	}
	if index == l.size {
		for _, d := range ds {
			l.pushBack(d)
		}
		return len(ds) > 0, nil
	}
	at := l.nodeAt(index)
	for _, d := range ds {
		l.linkBefore(d, at)
	}
	return len(ds) > 0, nil
}

// RemoveAll removes every occurrence of each digit in ds and reports whether
// the list changed.
func (l *List) RemoveAll(ds []uint8) bool {
	return l.removeIf(func(d uint8) bool { return slices.Contains(ds, d) })
}

// RetainAll removes every digit that does not occur in ds and reports
// whether the list changed.
func (l *List) RetainAll(ds []uint8) bool {
	return l.removeIf(func(d uint8) bool { return !slices.Contains(ds, d) })
}

// Clear removes every digit. The base is kept.
func (l *List) Clear() {
	l.nodes.reset()
	l.head, l.tail = none, none
	l.size = 0
	l.mods++
}

// Digits returns a copy of the digits, head to tail.
func (l *List) Digits() []uint8 {
	out := make([]uint8, 0, l.size)
	for d := range l.All() {
		out = append(out, d)
	}
	return out
}

// SubList returns a new list in the same base holding a copy of the digits
// in [from, to).
func (l *List) SubList(from, to int) (*List, error) {
	if from < 0 || to > l.size || from > to {
		idx := from
		if from >= 0 && from <= to {
			idx = to
		}
		return nil, apperrors.IndexError{Op: "sublist", Index: idx, Size: l.size}
	}
	sub := New(l.base)
	if from == to {
		return sub, nil
	}
	h := l.nodeAt(from)
	for i := from; i < to; i++ {
		n := l.nodes.at(h)
		sub.pushBack(n.digit)
		h = n.next
	}
	return sub, nil
}

// Clone returns an independent copy of the list.
func (l *List) Clone() *List {
	return NewWithDigits(l.base, l.Digits()...)
}

// All iterates over the digits from head to tail.
func (l *List) All() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for h := l.head; h != none; {
			n := l.nodes.at(h)
			if !yield(n.digit) {
				return
			}
			h = n.next
		}
	}
}

// Backward iterates over the digits from tail to head.
func (l *List) Backward() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for h := l.tail; h != none; {
			n := l.nodes.at(h)
			if !yield(n.digit) {
				return
			}
			h = n.prev
		}
	}
}

func (l *List) checkElementIndex(op string, index int) error {
	if index < 0 || index >= l.size {
		return apperrors.IndexError{Op: op, Index: index, Size: l.size}
	}
	return nil
}

func (l *List) checkPositionIndex(op string, index int) error {
	if index < 0 || index > l.size {
		return apperrors.IndexError{Op: op, Index: index, Size: l.size}
	}
	return nil
}

// nodeAt returns the handle of the node at a valid element index, walking
// from the nearer end.
func (l *List) nodeAt(index int) handle {
	if index < l.size/2 {
		h := l.head
		for i := 0; i < index; i++ {
			h = l.nodes.at(h).next
		}
		return h
	}
	h := l.tail
	for i := l.size - 1; i > index; i-- {
		h = l.nodes.at(h).prev
	}
	return h
}

func (l *List) pushBack(d uint8) handle {
	h := l.nodes.alloc(d)
	if l.tail == none {
		l.head, l.tail = h, h
	} else {
		l.nodes.at(h).prev = l.tail
		l.nodes.at(l.tail).next = h
		l.tail = h
	}
	l.size++
	l.mods++
	return h
}

// linkBefore splices a new node holding d in front of succ.
func (l *List) linkBefore(d uint8, succ handle) handle {
	h := l.nodes.alloc(d)
	pred := l.nodes.at(succ).prev
	n := l.nodes.at(h)
	n.prev, n.next = pred, succ
	l.nodes.at(succ).prev = h
	if pred == none {
		l.head = h
	} else {
		l.nodes.at(pred).next = h
	}
	l.size++
	l.mods++
	return h
}

// unlink splices h out of the list, releases it and returns its digit.
func (l *List) unlink(h handle) uint8 {
	n := l.nodes.at(h)
	d, prev, next := n.digit, n.prev, n.next
	if prev == none {
		l.head = next
	} else {
		l.nodes.at(prev).next = next
	}
	if next == none {
		l.tail = prev
	} else {
		l.nodes.at(next).prev = prev
	}
	l.nodes.release(h)
	l.size--
	l.mods++
	return d
}

func (l *List) removeIf(match func(uint8) bool) bool {
	changed := false
	for h := l.head; h != none; {
		n := l.nodes.at(h)
		next := n.next
		if match(n.digit) {
			l.unlink(h)
			changed = true
		}
		h = next
	}
	return changed
}
