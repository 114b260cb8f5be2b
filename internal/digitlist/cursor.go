package digitlist

import (
	apperrors "github.com/agbru/numlist/internal/errors"
)

// Cursor is a bidirectional position between two digits of a List.
// A cursor at index i sits between the digits at i-1 and i; Next returns
// the digit after the cursor and Previous the digit before it.
//
// Remove and Set act on the digit returned by the most recent Next or
// Previous. They fail with an illegal-state error before any move, after
// Remove, and after Insert. Structural changes made to the list through
// anything other than the cursor invalidate it.
type Cursor struct {
	list  *List
	next  handle // node after the cursor, none at the end
	last  handle // node returned by the last move, none when unset
	index int
	mods  uint64
}

// Cursor returns a cursor positioned before the digit at index.
// Index may equal Len, placing the cursor after the last digit.
func (l *List) Cursor(index int) (*Cursor, error) {
	if err := l.checkPositionIndex("cursor", index); err != nil {
		return nil, err
	}
	c := &Cursor{list: l, index: index, mods: l.mods}
	if index < l.size {
		c.next = l.nodeAt(index)
	}
	return c, nil
}

// HasNext reports whether a digit follows the cursor.
func (c *Cursor) HasNext() bool { return c.index < c.list.size }

// HasPrevious reports whether a digit precedes the cursor.
func (c *Cursor) HasPrevious() bool { return c.index > 0 }

// NextIndex returns the index of the digit Next would return.
func (c *Cursor) NextIndex() int { return c.index }

// PreviousIndex returns the index of the digit Previous would return.
func (c *Cursor) PreviousIndex() int { return c.index - 1 }

// Next returns the digit after the cursor and advances past it.
func (c *Cursor) Next() (uint8, error) {
	if err := c.checkMods("next"); err != nil {
		return 0, err
	}
	if !c.HasNext() {
		return 0, apperrors.ElementError{Op: "next"}
	}
	n := c.list.nodes.at(c.next)
	c.last = c.next
	c.next = n.next
	c.index++
	return n.digit, nil
}

// Previous returns the digit before the cursor and moves back over it.
func (c *Cursor) Previous() (uint8, error) {
	if err := c.checkMods("previous"); err != nil {
		return 0, err
	}
	if !c.HasPrevious() {
		return 0, apperrors.ElementError{Op: "previous"}
	}
	if c.next == none {
		c.next = c.list.tail
	} else {
		c.next = c.list.nodes.at(c.next).prev
	}
	c.last = c.next
	c.index--
	return c.list.nodes.at(c.next).digit, nil
}

// Remove deletes the digit returned by the last Next or Previous.
func (c *Cursor) Remove() error {
	if err := c.checkMods("remove"); err != nil {
		return err
	}
	if c.last == none {
		return apperrors.StateError{Op: "remove"}
	}
	if c.last == c.next {
		// Last move was Previous: the removed node sat right after the cursor.
		c.next = c.list.nodes.at(c.next).next
	} else {
		c.index--
	}
	c.list.unlink(c.last)
	c.last = none
	c.mods = c.list.mods
	return nil
}

// Set replaces the digit returned by the last Next or Previous.
func (c *Cursor) Set(d uint8) error {
	if err := c.checkMods("set"); err != nil {
		return err
	}
	if c.last == none {
		return apperrors.StateError{Op: "set"}
	}
	if err := checkDigit(d); err != nil {
		return err
	}
	c.list.nodes.at(c.last).digit = d
	return nil
}

// Insert places d immediately before the cursor; a following Next is
// unaffected and a following Previous returns d.
func (c *Cursor) Insert(d uint8) error {
	if err := c.checkMods("insert"); err != nil {
		return err
	}
	if err := checkDigit(d); err != nil {
		return err
	}
	if c.next == none {
		c.list.pushBack(d)
	} else {
		c.list.linkBefore(d, c.next)
	}
	c.index++
	c.last = none
	c.mods = c.list.mods
	return nil
}

func (c *Cursor) checkMods(op string) error {
	if c.mods != c.list.mods {
		return apperrors.StateError{Op: op, Reason: "list modified outside the cursor"}
	}
	return nil
}
