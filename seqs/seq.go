package seqs

import "iter"

// upstream gives a wrapping cursor the optional capabilities of the cursor
// it wraps.
type upstream struct {
	src Cursor
}

func (u upstream) Err() error { return cursorErr(u.src) }

func (u upstream) Stop() { stopCursor(u.src) }

func (u upstream) Kind() Kind { return KindOf(u.src) }

// open normalizes the arg-th (1-based) source of op.
func open(op string, arg int, source any) (Cursor, error) {
	c, err := normalize(source)
	if err != nil {
		return nil, opError(op, arg, err)
	}
	return c, nil
}

// Triples exposes a cursor as a range-over-func sequence. Breaking out of
// the loop stops the cursor. Check the cursor's Err after the loop when its
// source can fail.
func Triples(c Cursor) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for {
			t, ok := c.Next()
			if !ok {
				return
			}
			if !yield(t) {
				stopCursor(c)
				return
			}
		}
	}
}

type mapCursor struct {
	upstream
	fn MapFunc
}

func (c *mapCursor) Next() (Triple, bool) {
	t, ok := c.src.Next()
	if !ok {
		return Triple{}, false
	}
	t.Value = c.fn(t.Value, t.Key)
	return t, true
}

// Map re-emits every triple of source with its value replaced by
// fn(value, key). Keys and kinds are kept.
func Map(source any, fn MapFunc) (Cursor, error) {
	src, err := open("map", 1, source)
	if err != nil {
		return nil, err
	}
	return &mapCursor{upstream: upstream{src}, fn: fn}, nil
}

// lockstepCursor advances several cursors together and stops at the first
// one to run out.
type lockstepCursor struct {
	srcs []Cursor
	fn   func(key any, values ...any) any
	done bool
}

func (c *lockstepCursor) Next() (Triple, bool) {
	if c.done {
		return Triple{}, false
	}
	var first Triple
	values := make([]any, len(c.srcs))
	for i, src := range c.srcs {
		t, ok := src.Next()
		if !ok {
			c.Stop()
			return Triple{}, false
		}
		if i == 0 {
			first = t
		}
		values[i] = t.Value
	}
	return Triple{Key: first.Key, Value: c.fn(first.Key, values...), Kind: first.Kind}, true
}

func (c *lockstepCursor) Err() error {
	for _, src := range c.srcs {
		if err := cursorErr(src); err != nil {
			return err
		}
	}
	return nil
}

func (c *lockstepCursor) Stop() {
	if c.done {
		return
	}
	c.done = true
	for _, src := range c.srcs {
		stopCursor(src)
	}
}

func (c *lockstepCursor) Kind() Kind { return KindOf(c.srcs[0]) }

// MapN walks all sources in lockstep and emits fn(key, v1, ..., vn) keyed
// and stamped like the first source. It stops at the shortest source.
func MapN(fn func(key any, values ...any) any, sources ...any) (Cursor, error) {
	return mapN("map", fn, sources)
}

func mapN(op string, fn func(key any, values ...any) any, sources []any) (Cursor, error) {
	if len(sources) == 0 {
		return nil, opError(op, 1, ErrArity)
	}
	srcs := make([]Cursor, len(sources))
	for i, s := range sources {
		c, err := open(op, i+1, s)
		if err != nil {
			for _, opened := range srcs[:i] {
				stopCursor(opened)
			}
			return nil, err
		}
		srcs[i] = c
	}
	return &lockstepCursor{srcs: srcs, fn: fn}, nil
}

type filterCursor struct {
	upstream
	pred Predicate
}

func (c *filterCursor) Next() (Triple, bool) {
	for {
		t, ok := c.src.Next()
		if !ok {
			return Triple{}, false
		}
		if c.pred(t.Value, t.Key) {
			return t, true
		}
	}
}

// Filter re-emits the triples of source that satisfy pred, keys and kinds
// unchanged.
func Filter(source any, pred Predicate) (Cursor, error) {
	src, err := open("filter", 1, source)
	if err != nil {
		return nil, err
	}
	return &filterCursor{upstream: upstream{src}, pred: pred}, nil
}
