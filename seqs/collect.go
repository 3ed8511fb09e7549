package seqs

import (
	"github.com/pkg/errors"

	"polyiter/queues"
)

// Collector folds triples into one freshly built container. It is meant for
// a single fold: create it, Add every triple, call Get once.
//
// A collector for a concrete kind inserts straight away. A KindGenerator
// collector adopts the kind stamped on the first triple, or builds a
// sequence when that triple is unstamped or no triple arrives. A KindNone
// collector (the reference could not be classified) waits for the first
// stamped triple, holding earlier ones back, and fails with
// ErrUnknownContainerKind when none arrives.
type Collector struct {
	target    Kind
	entry     kindEntry
	bound     bool
	container any
	pending   *queues.ArrayQueue[Triple]
}

// NewCollector returns a collector for kind; see Collector for the
// KindGenerator and KindNone modes.
func NewCollector(kind Kind) *Collector {
	c := &Collector{target: kind}
	if kind.Concrete() {
		c.bind(kind)
	}
	return c
}

func (c *Collector) bind(kind Kind) {
	c.entry, _ = lookup(kind)
	c.container = c.entry.empty()
	c.bound = true
}

// Kind reports the kind the collector builds, or KindNone while it is still
// undecided.
func (c *Collector) Kind() Kind {
	if !c.bound {
		return KindNone
	}
	return c.target
}

// Add inserts one triple.
func (c *Collector) Add(t Triple) error {
	if !c.bound {
		switch {
		case t.Kind.Concrete():
			c.target = t.Kind
			c.bind(t.Kind)
			if err := c.flush(); err != nil {
				return err
			}
		case c.target == KindGenerator:
			c.target = KindSequence
			c.bind(KindSequence)
		default:
			if c.pending == nil {
				c.pending = queues.NewArrayQueue[Triple](0)
			}
			c.pending.Enqueue(t)
			return nil
		}
	}
	var err error
	c.container, err = c.entry.insert(c.container, t.Value, t.Key)
	return err
}

func (c *Collector) flush() error {
	if c.pending == nil {
		return nil
	}
	for t := range c.pending.Drain() {
		var err error
		if c.container, err = c.entry.insert(c.container, t.Value, t.Key); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the built container.
func (c *Collector) Get() (any, error) {
	if !c.bound {
		if c.target != KindGenerator {
			return nil, errors.WithStack(ErrUnknownContainerKind)
		}
		c.bind(KindSequence)
	}
	return c.container, nil
}

// Collect materializes c into a container of the same kind as reference.
// reference is classified, never iterated or mutated.
func Collect(c Cursor, reference any) (any, error) {
	kind, err := Classify(reference)
	if err != nil {
		kind = KindNone
	}
	out, err := collect(c, kind)
	if err != nil {
		return nil, opError("collect", 0, err)
	}
	return out, nil
}

// CollectKind materializes c into a container of the given kind.
func CollectKind(c Cursor, kind Kind) (any, error) {
	out, err := collect(c, kind)
	if err != nil {
		return nil, opError("collect", 0, err)
	}
	return out, nil
}

func collect(c Cursor, kind Kind) (any, error) {
	col := NewCollector(kind)
	err := drive(c, func(t Triple) (Action, error) {
		return Continue, col.Add(t)
	})
	if err != nil {
		return nil, err
	}
	return col.Get()
}
