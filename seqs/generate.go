package seqs

import "golang.org/x/exp/constraints"

type rangeCursor[T constraints.Integer | constraints.Float] struct {
	cur, stop, step T
	i               int
	done            bool
}

func (c *rangeCursor[T]) Next() (Triple, bool) {
	if c.done || c.step == 0 || (c.step > 0 && c.cur > c.stop) || (c.step < 0 && c.cur < c.stop) {
		c.done = true
		return Triple{}, false
	}
	t := Triple{Key: c.i, Value: c.cur, Kind: KindSequence}
	c.i++
	next := c.cur + c.step
	// stop before wrapping around the integer range
	if (c.step > 0 && next < c.cur) || (c.step < 0 && next > c.cur) {
		c.done = true
	}
	c.cur = next
	return t, true
}

func (c *rangeCursor[T]) Kind() Kind { return KindSequence }

// Range counts from start to stop inclusive by step, emitting
// (position, value) sequence triples. A negative step counts down; a zero
// step yields nothing.
func Range[T constraints.Integer | constraints.Float](start, stop, step T) Cursor {
	return &rangeCursor[T]{cur: start, stop: stop, step: step}
}
