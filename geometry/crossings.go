package geometry

import (
	"iter"
	"math"
)

// Crossings is a forward-only cursor over the integer grid-line coordinates
// strictly crossed when moving from a to b along one axis, in the order they
// are met. Neither a nor b is ever emitted, even when integer valued.
//
// A Crossings cannot be rewound; build a new one with NewCrossings to
// traverse again. It is not safe for concurrent use.
type Crossings struct {
	next  int     // candidate to emit
	step  int     // +1 ascending, -1 descending
	bound float64 // exclusive end (b)
	done  bool
}

// NewCrossings returns a cursor over the grid lines between a and b.
//
//   - a < b: the first integer above a, increasing while < b.
//   - a > b: the first integer below a, decreasing while > b.
//   - a == b, or either is NaN or infinite: empty.
//
// Complexity: O(1).
func NewCrossings(a, b float64) *Crossings {
	switch {
	case math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0):
		return &Crossings{done: true}
	case a < b:
		return &Crossings{next: int(math.Floor(a)) + 1, step: 1, bound: b}
	case a > b:
		return &Crossings{next: int(math.Ceil(a)) - 1, step: -1, bound: b}
	default:
		return &Crossings{done: true}
	}
}

// Peek returns the next grid line without consuming it.
// The boolean is false once the cursor is exhausted.
func (c *Crossings) Peek() (int, bool) {
	if c.done {
		return 0, false
	}
	v := float64(c.next)
	if (c.step > 0 && v >= c.bound) || (c.step < 0 && v <= c.bound) {
		c.done = true
		return 0, false
	}

	return c.next, true
}

// Next consumes and returns the next grid line.
// The boolean is false once the cursor is exhausted.
func (c *Crossings) Next() (int, bool) {
	v, ok := c.Peek()
	if !ok {
		return 0, false
	}
	c.next += c.step

	return v, true
}

// All returns an iterator draining the cursor.
// Breaking out of the loop leaves the lines not yet yielded in the cursor.
func (c *Crossings) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
