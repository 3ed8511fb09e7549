package seqs

type takeWhileCursor struct {
	upstream
	pred Predicate
	done bool
}

func (c *takeWhileCursor) Next() (Triple, bool) {
	if c.done {
		return Triple{}, false
	}
	t, ok := c.src.Next()
	if !ok {
		c.done = true
		return Triple{}, false
	}
	if !c.pred(t.Value, t.Key) {
		// final, even if a later triple would pass
		c.Stop()
		return Triple{}, false
	}
	return t, true
}

func (c *takeWhileCursor) Stop() {
	c.done = true
	c.upstream.Stop()
}

// TakeWhile re-emits triples while pred holds and ends for good at the
// first triple that fails it.
func TakeWhile(source any, pred Predicate) (Cursor, error) {
	return takeWhile("takeWhile", source, pred)
}

// Take re-emits the triples whose position is below n.
//
// Integer keys are taken as the position, so for a sparse source Take keeps
// the slots indexed below n and stops at the first slot past it. Sources
// with other keys (records, sets, most mappings) count by iteration order.
func Take(source any, n int) (Cursor, error) {
	return takeWhile("take", source, below(n))
}

func takeWhile(op string, source any, pred Predicate) (Cursor, error) {
	src, err := open(op, 1, source)
	if err != nil {
		return nil, err
	}
	return &takeWhileCursor{upstream: upstream{src}, pred: pred}, nil
}

type dropWhileCursor struct {
	upstream
	pred Predicate
	open bool
}

func (c *dropWhileCursor) Next() (Triple, bool) {
	for {
		t, ok := c.src.Next()
		if !ok {
			return Triple{}, false
		}
		if c.open || !c.pred(t.Value, t.Key) {
			c.open = true
			return t, true
		}
	}
}

// DropWhile suppresses triples while pred holds. Once a triple fails pred
// every remaining triple is re-emitted and pred is not called again.
func DropWhile(source any, pred Predicate) (Cursor, error) {
	return dropWhile("dropWhile", source, pred)
}

// Drop suppresses the triples whose position is below n, with the same
// position rule as Take.
func Drop(source any, n int) (Cursor, error) {
	return dropWhile("drop", source, below(n))
}

func dropWhile(op string, source any, pred Predicate) (Cursor, error) {
	src, err := open(op, 1, source)
	if err != nil {
		return nil, err
	}
	return &dropWhileCursor{upstream: upstream{src}, pred: pred}, nil
}

// below is the key < n predicate. Each call advances the iteration
// position used for non-integer keys.
func below(n int) Predicate {
	pos := -1
	return func(_, key any) bool {
		pos++
		if i, ok := ordinal(key); ok {
			return i < int64(n)
		}
		return pos < n
	}
}
