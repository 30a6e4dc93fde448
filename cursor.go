package numlist

// Cursor is a bidirectional position between digits of a number.
//
// A cursor at position k sits between the digits at k-1 and k. Next and Prev
// move over a digit and make it current; Remove and Set act on the current
// digit. Mutating the number other than through the cursor while it is in
// use leaves the cursor position unspecified.
type Cursor struct {
	n    *Number
	next int
	last int
}

// Cursor returns a cursor positioned before the digit at index,
// clamped to [0, Len()].
func (n *Number) Cursor(index int) *Cursor {
	return &Cursor{
		n:    n,
		next: max(0, min(index, n.Len())),
		last: -1,
	}
}

// HasNext reports whether a digit follows the cursor.
func (c *Cursor) HasNext() bool {
	return c.next < c.n.Len()
}

// HasPrev reports whether a digit precedes the cursor.
func (c *Cursor) HasPrev() bool {
	return c.next > 0
}

// NextIndex returns the index of the digit Next would return.
func (c *Cursor) NextIndex() int {
	return c.next
}

// PrevIndex returns the index of the digit Prev would return.
func (c *Cursor) PrevIndex() int {
	return c.next - 1
}

// Next moves forward over a digit and returns it.
func (c *Cursor) Next() (d Digit, ok bool) {
	if !c.HasNext() {
		return 0, false
	}

	c.last = c.next
	c.next++

	return c.n.Get(c.last)
}

// Prev moves backward over a digit and returns it.
func (c *Cursor) Prev() (d Digit, ok bool) {
	if !c.HasPrev() {
		return 0, false
	}

	c.next--
	c.last = c.next

	return c.n.Get(c.last)
}

// Remove removes the current digit.
func (c *Cursor) Remove() error {
	if c.last < 0 {
		return ErrNoCurrent
	}

	c.n.RemoveAt(c.last)
	if c.last < c.next {
		c.next--
	}
	c.last = -1

	return nil
}

// Set replaces the current digit.
func (c *Cursor) Set(d Digit) error {
	if c.last < 0 {
		return ErrNoCurrent
	}

	_, err := c.n.Set(c.last, d)

	return err
}

// Insert inserts a digit at the cursor position. The cursor moves past it.
func (c *Cursor) Insert(d Digit) error {
	if err := c.n.InsertAt(c.next, d); err != nil {
		return err
	}

	c.next++
	c.last = -1

	return nil
}
