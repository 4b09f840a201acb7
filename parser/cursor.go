package parser

// Cursor is a forward-scanning position tracker over an owned sequence.
// The position starts one before the first element, so the first
// Advance(1) lands on index zero. All index arithmetic is bounds checked;
// the position never wraps.
type Cursor[T any] struct {
	values []T
	pos    int
}

// NewCursor returns a cursor positioned before the first element of
// values. The cursor takes ownership of the slice.
func NewCursor[T any](values []T) *Cursor[T] {
	return &Cursor[T]{values: values, pos: -1}
}

// Pos returns the current position; -1 until the first Advance.
func (c *Cursor[T]) Pos() int {
	return c.pos
}

// Advance moves the position forward by offset and returns the element
// now under the cursor. A negative offset does not move the cursor. The
// position saturates one past the last element, so advancing beyond the
// end reports false rather than wrapping.
func (c *Cursor[T]) Advance(offset int) (T, bool) {
	var zero T
	if offset < 0 {
		return zero, false
	}
	c.pos += offset
	if c.pos > len(c.values) {
		c.pos = len(c.values)
	}
	if c.pos < 0 || c.pos >= len(c.values) {
		return zero, false
	}
	return c.values[c.pos], true
}

// Peek returns the element at the signed offset from the current
// position without moving the cursor.
func (c *Cursor[T]) Peek(offset int) (T, bool) {
	var zero T
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.values) {
		return zero, false
	}
	return c.values[idx], true
}

// PeekRange returns a view of the elements in [from, to) by absolute
// index, or false when the range is out of bounds.
func (c *Cursor[T]) PeekRange(from, to int) ([]T, bool) {
	if from < 0 || to > len(c.values) || from > to {
		return nil, false
	}
	return c.values[from:to], true
}

// AdvanceIf consumes and returns the next element when it satisfies
// pred; otherwise the cursor is left untouched.
func (c *Cursor[T]) AdvanceIf(pred func(T) bool) (T, bool) {
	next, ok := c.Peek(1)
	if !ok || !pred(next) {
		var zero T
		return zero, false
	}
	return c.Advance(1)
}

// AdvanceUntil advances while the next element does not satisfy pred,
// stopping just before the element that does, or at the end. It returns
// the span consumed since the call began.
func (c *Cursor[T]) AdvanceUntil(pred func(T) bool) []T {
	start := c.pos
	for {
		next, ok := c.Peek(1)
		if !ok || pred(next) {
			break
		}
		c.Advance(1)
	}
	span, _ := c.PeekRange(start+1, c.pos+1)
	return span
}

// Completed reports whether the cursor is at the last valid index, with
// nothing left to Peek(1).
func (c *Cursor[T]) Completed() bool {
	return c.pos >= len(c.values)-1
}
