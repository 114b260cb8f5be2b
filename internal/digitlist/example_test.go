package digitlist_test

import (
	"fmt"

	"github.com/agbru/numlist/internal/digitlist"
)

// ExampleList_ShiftLeft shows the circular rotations.
func ExampleList_ShiftLeft() {
	l := digitlist.NewWithDigits(10, 7, 2, 9)

	l.ShiftLeft()
	fmt.Println(l.Digits())
	l.ShiftRight()
	fmt.Println(l.Digits())
	// Output:
	// [2 9 7]
	// [7 2 9]
}

// ExampleList_Cursor walks a list backwards and removes every zero.
func ExampleList_Cursor() {
	l := digitlist.NewWithDigits(3, 1, 0, 2, 0)

	c, _ := l.Cursor(l.Len())
	for c.HasPrevious() {
		d, _ := c.Previous()
		if d == 0 {
			_ = c.Remove()
		}
	}
	fmt.Println(l.Digits(), l.Len())
	// Output:
	// [1 2] 2
}

// ExampleList_RemoveAt shows that out-of-range access is reported, not corrected.
func ExampleList_RemoveAt() {
	l := digitlist.NewWithDigits(3, 1, 1, 1)

	_, err := l.RemoveAt(l.Len())
	fmt.Println(err)
	fmt.Println(l.Digits())
	// Output:
	// remove: index 3 out of range for size 3
	// [1 1 1]
}
