package seqs

import (
	"github.com/pkg/errors"

	"polyiter/queues"
)

// Zip pairs up the values of its sources in lockstep, emitting a []any with
// one element per source, keyed like the first source. It stops at the
// shortest source. A single source is returned normalized, values unwrapped.
func Zip(sources ...any) (Cursor, error) {
	switch len(sources) {
	case 0:
		return nil, opError("zip", 1, ErrArity)
	case 1:
		return open("zip", 1, sources[0])
	}
	return mapN("zip", tuple, sources)
}

func tuple(_ any, values ...any) any {
	return values
}

type chainCursor struct {
	cur     Cursor
	pending *queues.ArrayQueue[Cursor]
	kind    Kind
	err     error
}

func (c *chainCursor) Next() (Triple, bool) {
	for c.cur != nil {
		if t, ok := c.cur.Next(); ok {
			return t, true
		}
		if err := cursorErr(c.cur); err != nil {
			c.err = err
			c.Stop()
			return Triple{}, false
		}
		c.cur, _ = c.pending.Dequeue()
	}
	return Triple{}, false
}

func (c *chainCursor) Err() error { return c.err }

func (c *chainCursor) Stop() {
	if c.cur != nil {
		stopCursor(c.cur)
		c.cur = nil
	}
	for rest := range c.pending.Drain() {
		stopCursor(rest)
	}
}

func (c *chainCursor) Kind() Kind { return c.kind }

// Chain emits every triple of each source in argument order, unchanged.
// A single source is returned normalized.
func Chain(sources ...any) (Cursor, error) {
	switch len(sources) {
	case 0:
		return nil, opError("chain", 1, ErrArity)
	case 1:
		return open("chain", 1, sources[0])
	}
	pending := queues.NewArrayQueue[Cursor](len(sources))
	for i, s := range sources {
		c, err := open("chain", i+1, s)
		if err != nil {
			for opened := range pending.Drain() {
				stopCursor(opened)
			}
			return nil, err
		}
		pending.Enqueue(c)
	}
	first, _ := pending.Dequeue()
	return &chainCursor{cur: first, pending: pending, kind: KindOf(first)}, nil
}

// GroupOption configures GroupBy.
type GroupOption func(*groupConfig)

type groupConfig struct {
	kind Kind
}

// WithGroupKind fixes the kind of the container of groups instead of
// deriving it from the first group key.
func WithGroupKind(kind Kind) GroupOption {
	return func(cfg *groupConfig) {
		cfg.kind = kind
	}
}

// groupState is shared by the outer cursor and every group cursor. Pulling
// from either pumps the source; triples are buffered per group until the
// group's cursor asks for them.
type groupState struct {
	src    Cursor
	keyFn  MapFunc
	member Kind
	shape  Kind
	groups []*groupCursor
	index  map[any]*groupCursor
	done   bool
	err    error
}

// pump moves one triple from the source into its group.
func (s *groupState) pump() bool {
	if s.done {
		return false
	}
	t, ok := s.src.Next()
	if !ok {
		s.done = true
		s.err = cursorErr(s.src)
		return false
	}
	gk := s.keyFn(t.Value, t.Key)
	if !hashable(gk) {
		s.err = opError("groupBy", 0, errors.Wrapf(ErrIncompatibleKey, "group key %v (%T)", gk, gk))
		s.stop()
		return false
	}
	g, ok := s.index[gk]
	if !ok {
		if s.shape == KindNone {
			s.shape = shapeFor(gk)
		}
		g = &groupCursor{state: s, key: gk, buf: queues.NewArrayQueue[Triple](0)}
		s.index[gk] = g
		s.groups = append(s.groups, g)
	}
	g.buf.Enqueue(t)
	return true
}

func (s *groupState) stop() {
	if !s.done {
		s.done = true
		stopCursor(s.src)
	}
}

// shapeFor picks the container of groups from a group key: sparse for
// non-negative integers, record for strings, mapping otherwise.
func shapeFor(gk any) Kind {
	if _, ok := asIndex(gk); ok {
		return KindSparse
	}
	if _, ok := gk.(string); ok {
		return KindRecord
	}
	return KindMapping
}

type groupCursor struct {
	state *groupState
	key   any
	buf   *queues.ArrayQueue[Triple]
}

func (g *groupCursor) Next() (Triple, bool) {
	for {
		if t, ok := g.buf.Dequeue(); ok {
			return t, true
		}
		if !g.state.pump() {
			return Triple{}, false
		}
	}
}

func (g *groupCursor) Err() error { return g.state.err }

func (g *groupCursor) Kind() Kind { return g.state.member }

type groupsCursor struct {
	state *groupState
	next  int
}

func (c *groupsCursor) Next() (Triple, bool) {
	s := c.state
	for c.next >= len(s.groups) {
		if !s.pump() {
			return Triple{}, false
		}
	}
	g := s.groups[c.next]
	c.next++
	return Triple{Key: g.key, Value: g, Kind: s.shape}, true
}

func (c *groupsCursor) Err() error { return c.state.err }

func (c *groupsCursor) Stop() { c.state.stop() }

func (c *groupsCursor) Kind() Kind {
	if c.state.shape == KindNone {
		return KindGenerator
	}
	return c.state.shape
}

// GroupBy partitions source by keyFn(value, key). It emits one triple per
// distinct group key, in first-seen order, whose value is a Cursor over the
// group's members. Member triples keep their key and kind.
//
// The triples of groups are stamped with the kind of the container of
// groups: by default the first group key decides it (sparse for
// non-negative integers, record for strings, mapping for anything else,
// pointers included). Negative integers and floats are numeric but still
// give a mapping, since a sparse sequence only holds slot indices. Keys of a different type than the first one fail
// with ErrIncompatibleKey when the groups are collected into a sparse
// sequence or a record.
func GroupBy(source any, keyFn MapFunc, opts ...GroupOption) (Cursor, error) {
	var cfg groupConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	src, err := open("groupBy", 1, source)
	if err != nil {
		return nil, err
	}
	s := &groupState{
		src:    src,
		keyFn:  keyFn,
		member: KindOf(src),
		index:  make(map[any]*groupCursor),
	}
	if cfg.kind.Concrete() {
		s.shape = cfg.kind
	}
	return &groupsCursor{state: s}, nil
}
