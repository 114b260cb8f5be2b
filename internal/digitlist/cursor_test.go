package digitlist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/agbru/numlist/internal/errors"
)

func TestCursorTraversal(t *testing.T) {
	t.Parallel()
	l := NewWithDigits(10, 1, 2, 3)
	c, err := l.Cursor(0)
	if err != nil {
		t.Fatal(err)
	}

	var fwd []uint8
	for c.HasNext() {
		d, err := c.Next()
		if err != nil {
			t.Fatal(err)
		}
		fwd = append(fwd, d)
	}
	if _, err := c.Next(); !errors.Is(err, apperrors.ErrNoSuchElement) {
		t.Errorf("Next at end: err = %v, want no such element", err)
	}

	var back []uint8
	for c.HasPrevious() {
		d, err := c.Previous()
		if err != nil {
			t.Fatal(err)
		}
		back = append(back, d)
	}
	if _, err := c.Previous(); !errors.Is(err, apperrors.ErrNoSuchElement) {
		t.Errorf("Previous at start: err = %v, want no such element", err)
	}

	if diff := cmp.Diff([]uint8{1, 2, 3}, fwd); diff != "" {
		t.Errorf("forward (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{3, 2, 1}, back); diff != "" {
		t.Errorf("backward (-want +got):\n%s", diff)
	}
}

func TestCursorStartingPositions(t *testing.T) {
	t.Parallel()
	l := NewWithDigits(10, 4, 5, 6)

	c, _ := l.Cursor(3)
	if c.HasNext() || c.NextIndex() != 3 || c.PreviousIndex() != 2 {
		t.Fatalf("cursor at end: HasNext=%v NextIndex=%d", c.HasNext(), c.NextIndex())
	}
	if d, _ := c.Previous(); d != 6 {
		t.Errorf("Previous from end = %d, want 6", d)
	}

	c, _ = l.Cursor(1)
	if d, _ := c.Next(); d != 5 {
		t.Errorf("Next from 1 = %d, want 5", d)
	}
}

func TestCursorIllegalState(t *testing.T) {
	t.Parallel()
	l := NewWithDigits(10, 1, 2, 3)
	c, _ := l.Cursor(0)

	if err := c.Remove(); !errors.Is(err, apperrors.ErrIllegalState) {
		t.Errorf("Remove before move: err = %v", err)
	}
	if err := c.Set(5); !errors.Is(err, apperrors.ErrIllegalState) {
		t.Errorf("Set before move: err = %v", err)
	}

	if _, err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if err := c.Remove(); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	if err := c.Remove(); !errors.Is(err, apperrors.ErrIllegalState) {
		t.Errorf("second Remove: err = %v", err)
	}
	if err := c.Set(5); !errors.Is(err, apperrors.ErrIllegalState) {
		t.Errorf("Set after Remove: err = %v", err)
	}

	if _, err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if err := c.Insert(9); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(5); !errors.Is(err, apperrors.ErrIllegalState) {
		t.Errorf("Set after Insert: err = %v", err)
	}
	if diff := cmp.Diff([]uint8{2, 9, 3}, l.Digits()); diff != "" {
		t.Errorf("digits mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorRemove(t *testing.T) {
	t.Parallel()

	t.Run("after Next", func(t *testing.T) {
		t.Parallel()
		l := NewWithDigits(10, 1, 2, 3)
		c, _ := l.Cursor(0)
		_, _ = c.Next()
		_, _ = c.Next()
		if err := c.Remove(); err != nil {
			t.Fatal(err)
		}
		if c.NextIndex() != 1 {
			t.Errorf("NextIndex after remove = %d, want 1", c.NextIndex())
		}
		if d, _ := c.Next(); d != 3 {
			t.Errorf("Next after remove = %d, want 3", d)
		}
		if diff := cmp.Diff([]uint8{1, 3}, l.Digits()); diff != "" {
			t.Errorf("digits mismatch (-want +got):\n%s", diff)
		}
		checkLinks(t, l)
	})

	t.Run("after Previous", func(t *testing.T) {
		t.Parallel()
		l := NewWithDigits(10, 1, 2, 3)
		c, _ := l.Cursor(3)
		_, _ = c.Previous()
		_, _ = c.Previous()
		if err := c.Remove(); err != nil {
			t.Fatal(err)
		}
		if c.NextIndex() != 1 {
			t.Errorf("NextIndex after remove = %d, want 1", c.NextIndex())
		}
		if d, _ := c.Next(); d != 3 {
			t.Errorf("Next after remove = %d, want 3", d)
		}
		if d, _ := c.Previous(); d != 3 {
			t.Errorf("Previous = %d, want 3", d)
		}
		if d, _ := c.Previous(); d != 1 {
			t.Errorf("Previous = %d, want 1", d)
		}
		checkLinks(t, l)
	})

	t.Run("drain from the tail", func(t *testing.T) {
		t.Parallel()
		l := NewWithDigits(10, 1, 2, 3)
		c, _ := l.Cursor(l.Len())
		for c.HasPrevious() {
			if _, err := c.Previous(); err != nil {
				t.Fatal(err)
			}
			if err := c.Remove(); err != nil {
				t.Fatal(err)
			}
		}
		if !l.IsEmpty() {
			t.Errorf("list not empty: %v", l.Digits())
		}
		checkLinks(t, l)
	})
}

func TestCursorSetAndInsert(t *testing.T) {
	t.Parallel()
	l := NewWithDigits(10, 1, 2)
	c, _ := l.Cursor(0)

	if err := c.Insert(0); err != nil {
		t.Fatal(err)
	}
	if c.NextIndex() != 1 {
		t.Errorf("Insert should advance the cursor, NextIndex = %d", c.NextIndex())
	}
	if d, _ := c.Next(); d != 1 {
		t.Errorf("Next after Insert = %d, want 1", d)
	}
	if err := c.Set(7); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(36); !errors.Is(err, apperrors.ErrInvalidDigit) {
		t.Errorf("Set(36): err = %v", err)
	}
	_, _ = c.Next()
	if err := c.Insert(5); err != nil {
		t.Fatal(err)
	}
	if d, _ := c.Previous(); d != 5 {
		t.Errorf("Previous after Insert at end = %d, want 5", d)
	}
	if diff := cmp.Diff([]uint8{0, 7, 2, 5}, l.Digits()); diff != "" {
		t.Errorf("digits mismatch (-want +got):\n%s", diff)
	}
	checkLinks(t, l)
}

func TestCursorDetectsOutsideMutation(t *testing.T) {
	t.Parallel()
	l := NewWithDigits(10, 1, 2, 3)
	c, _ := l.Cursor(1)
	l.ShiftLeft()

	if _, err := c.Next(); !errors.Is(err, apperrors.ErrIllegalState) {
		t.Errorf("Next after ShiftLeft: err = %v, want illegal state", err)
	}

	c, _ = l.Cursor(0)
	l.Swap(0, 2)
	l.SortAscending()
	if _, err := c.Next(); err != nil {
		t.Errorf("value-only changes should not invalidate the cursor: %v", err)
	}
}
