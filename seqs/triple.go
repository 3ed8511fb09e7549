package seqs

import "iter"

// Triple is the unit every cursor yields.
//
// Key is the position for sequences, the field name for records, the
// mapping's own key for mappings, and the value itself for sets.
type Triple struct {
	Key   any
	Value any
	Kind  Kind
}

// Cursor is a single-pass, pull-based iteration handle. Once Next reports
// false the cursor is exhausted for good. A cursor wrapping another cursor is
// that cursor's only consumer.
type Cursor interface {
	Next() (Triple, bool)
}

// Errer is implemented by cursors whose upstream can fail. Err is checked
// after Next reports false.
type Errer interface {
	Err() error
}

// Stopper is implemented by cursors holding a suspended upstream pull.
// Stop releases it; Next reports false afterwards.
type Stopper interface {
	Stop()
}

// Kinded is implemented by cursors that know the kind of the container they
// were built from.
type Kinded interface {
	Kind() Kind
}

// EntrySource is the entry capability: anything that can enumerate its own
// key/value pairs. Every type in the containers package implements it.
type EntrySource interface {
	Entries() iter.Seq2[any, any]
}

// Generator is an externally authored pull source. Each pulled value is
// either a Triple, passed through as is, or a bare value, which becomes
// (position, value, KindNone).
type Generator interface {
	Next() (any, bool)
}

// NextFunc adapts a pull function, such as the next func returned by
// iter.Pull, to a Generator.
type NextFunc func() (any, bool)

func (f NextFunc) Next() (any, bool) { return f() }

// Predicate tests a value and its key.
type Predicate func(value, key any) bool

// MapFunc transforms a value and its key into a new value.
type MapFunc func(value, key any) any

// Action tells a traversal what to do after a visit.
type Action uint8

const (
	// Continue moves on to the next triple.
	Continue Action = iota
	// Stop ends the traversal without error.
	Stop
)

// Visitor is called once per triple. Returning a non-nil error aborts the
// traversal and the error is returned to the caller.
type Visitor func(t Triple) (Action, error)

// KindOf reports the kind of the container c was built from, or
// KindGenerator when c does not know it.
func KindOf(c Cursor) Kind {
	if k, ok := c.(Kinded); ok && k.Kind() != KindNone {
		return k.Kind()
	}
	return KindGenerator
}

func cursorErr(c Cursor) error {
	if e, ok := c.(Errer); ok {
		return e.Err()
	}
	return nil
}

func stopCursor(c Cursor) {
	if s, ok := c.(Stopper); ok {
		s.Stop()
	}
}
