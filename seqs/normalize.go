package seqs

import (
	"iter"
	"reflect"

	"polyiter/containers"
)

// Normalize adapts source into a Cursor. Resolution order, first match wins:
//
//  1. zero-argument factories (func() any, or any func with no inputs and a
//     single result) are invoked and their result normalized
//  2. entry sources, slices, arrays and maps
//  3. iter.Seq[Triple], iter.Seq2[K, V] and iter.Seq[V]
//  4. Cursors, returned unchanged, and pull generators
//  5. structs and pointers to structs, enumerated field by field
//
// Anything else fails with ErrUnsupportedSourceKind.
func Normalize(source any) (Cursor, error) {
	c, err := normalize(source)
	if err != nil {
		return nil, opError("normalize", 0, err)
	}
	return c, nil
}

// Classify reports the kind a source normalizes as, without iterating it.
// Factories are invoked.
func Classify(source any) (Kind, error) {
	switch s := source.(type) {
	case nil:
		return KindNone, unsupported(source)
	case func() any:
		if s == nil {
			return KindNone, unsupported(source)
		}
		return Classify(s())
	case []any:
		return KindSequence, nil
	case EntrySource:
		return entryKind(s), nil
	case iter.Seq[Triple], func(func(Triple) bool),
		iter.Seq2[any, any], func(func(any, any) bool),
		iter.Seq[any], func(func(any) bool):
		return KindGenerator, nil
	case Cursor:
		return KindOf(s), nil
	case Generator, func() (any, bool):
		return KindGenerator, nil
	}

	v := reflect.ValueOf(source)
	if v.Kind() == reflect.Func && v.IsNil() {
		return KindNone, unsupported(source)
	}
	sh := shapeOf(v.Type())
	switch sh.form {
	case formFactory:
		return Classify(v.Call(nil)[0].Interface())
	case formSlice:
		return KindSequence, nil
	case formMap:
		return sh.kind, nil
	case formSeq, formSeq2, formPull:
		return KindGenerator, nil
	case formStruct:
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return KindNone, unsupported(source)
		}
		return KindRecord, nil
	}
	return KindNone, unsupported(source)
}

func normalize(source any) (Cursor, error) {
	switch s := source.(type) {
	case nil:
		return nil, unsupported(source)
	case func() any:
		if s == nil {
			return nil, unsupported(source)
		}
		return normalize(s())
	case []any:
		return &sliceCursor{items: s}, nil
	case EntrySource:
		return fromEntries(s.Entries(), entryKind(s)), nil
	case iter.Seq[Triple]:
		return fromTriples(s), nil
	case func(func(Triple) bool):
		return fromTriples(s), nil
	case iter.Seq2[any, any]:
		return fromPairs(s), nil
	case func(func(any, any) bool):
		return fromPairs(s), nil
	case iter.Seq[any]:
		return fromValues(s), nil
	case func(func(any) bool):
		return fromValues(s), nil
	case Cursor:
		return s, nil
	case Generator:
		g := &generatorCursor{next: s.Next}
		if st, ok := s.(Stopper); ok {
			g.stop = st.Stop
		}
		return g, nil
	case func() (any, bool):
		return &generatorCursor{next: s}, nil
	}

	v := reflect.ValueOf(source)
	if v.Kind() == reflect.Func && v.IsNil() {
		return nil, unsupported(source)
	}
	sh := shapeOf(v.Type())
	switch sh.form {
	case formFactory:
		return normalize(v.Call(nil)[0].Interface())
	case formSlice:
		return &reflectSliceCursor{v: v}, nil
	case formMap:
		return &reflectMapCursor{v: v, keys: sortedKeys(v), kind: sh.kind}, nil
	case formSeq:
		return fromValues(reflectSeq(v)), nil
	case formSeq2:
		return fromPairs(reflectSeq2(v)), nil
	case formPull:
		return &generatorCursor{next: func() (any, bool) {
			out := v.Call(nil)
			return out[0].Interface(), out[1].Bool()
		}}, nil
	case formStruct:
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil, unsupported(source)
			}
			v = v.Elem()
		}
		return &structCursor{v: v, fields: sh.fields}, nil
	}
	return nil, unsupported(source)
}

// entryKind classifies an entry source by its concrete container type.
// Foreign entry sources may declare a kind; otherwise they are mappings.
func entryKind(s EntrySource) Kind {
	switch s.(type) {
	case *containers.Record:
		return KindRecord
	case *containers.Mapping:
		return KindMapping
	case *containers.Set:
		return KindSet
	case *containers.Sparse:
		return KindSparse
	}
	if k, ok := s.(Kinded); ok && k.Kind().Concrete() {
		return k.Kind()
	}
	return KindMapping
}

type sliceCursor struct {
	items []any
	i     int
}

func (c *sliceCursor) Next() (Triple, bool) {
	if c.i >= len(c.items) {
		return Triple{}, false
	}
	t := Triple{Key: c.i, Value: c.items[c.i], Kind: KindSequence}
	c.i++
	return t, true
}

func (c *sliceCursor) Kind() Kind { return KindSequence }

type reflectSliceCursor struct {
	v reflect.Value
	i int
}

func (c *reflectSliceCursor) Next() (Triple, bool) {
	if c.i >= c.v.Len() {
		return Triple{}, false
	}
	t := Triple{Key: c.i, Value: c.v.Index(c.i).Interface(), Kind: KindSequence}
	c.i++
	return t, true
}

func (c *reflectSliceCursor) Kind() Kind { return KindSequence }

type reflectMapCursor struct {
	v    reflect.Value
	keys []reflect.Value
	kind Kind
	i    int
}

func (c *reflectMapCursor) Next() (Triple, bool) {
	for c.i < len(c.keys) {
		k := c.keys[c.i]
		c.i++
		// the map may have lost the key since the snapshot
		if val := c.v.MapIndex(k); val.IsValid() {
			return Triple{Key: k.Interface(), Value: val.Interface(), Kind: c.kind}, true
		}
	}
	return Triple{}, false
}

func (c *reflectMapCursor) Kind() Kind { return c.kind }

type structCursor struct {
	v      reflect.Value
	fields []field
	i      int
}

func (c *structCursor) Next() (Triple, bool) {
	if c.i >= len(c.fields) {
		return Triple{}, false
	}
	f := c.fields[c.i]
	c.i++
	return Triple{Key: f.name, Value: c.v.Field(f.index).Interface(), Kind: KindRecord}, true
}

func (c *structCursor) Kind() Kind { return KindRecord }

// pullCursor adapts a push iterator through iter.Pull. It releases the
// coroutine as soon as the iterator is exhausted or Stop is called.
type pullCursor struct {
	next func() (Triple, bool)
	stop func()
	kind Kind
	done bool
}

func (c *pullCursor) Next() (Triple, bool) {
	if c.done {
		return Triple{}, false
	}
	t, ok := c.next()
	if !ok {
		c.Stop()
	}
	return t, ok
}

func (c *pullCursor) Stop() {
	if !c.done {
		c.done = true
		c.stop()
	}
}

func (c *pullCursor) Kind() Kind { return c.kind }

func fromEntries(seq iter.Seq2[any, any], kind Kind) *pullCursor {
	next, stop := iter.Pull2(seq)
	return &pullCursor{
		next: func() (Triple, bool) {
			k, v, ok := next()
			return Triple{Key: k, Value: v, Kind: kind}, ok
		},
		stop: stop,
		kind: kind,
	}
}

func fromTriples(seq iter.Seq[Triple]) *pullCursor {
	next, stop := iter.Pull(seq)
	return &pullCursor{next: next, stop: stop, kind: KindGenerator}
}

func fromPairs(seq iter.Seq2[any, any]) *pullCursor {
	next, stop := iter.Pull2(seq)
	return &pullCursor{
		next: func() (Triple, bool) {
			k, v, ok := next()
			return Triple{Key: k, Value: v}, ok
		},
		stop: stop,
		kind: KindGenerator,
	}
}

func fromValues(seq iter.Seq[any]) *generatorCursor {
	next, stop := iter.Pull(seq)
	return &generatorCursor{next: next, stop: stop}
}

// generatorCursor wraps a pull function. Pulled triples pass through, bare
// values are keyed by their position.
type generatorCursor struct {
	next func() (any, bool)
	stop func()
	pos  int
	done bool
}

func (c *generatorCursor) Next() (Triple, bool) {
	if c.done {
		return Triple{}, false
	}
	v, ok := c.next()
	if !ok {
		c.Stop()
		return Triple{}, false
	}
	pos := c.pos
	c.pos++
	if t, ok := v.(Triple); ok {
		return t, true
	}
	return Triple{Key: pos, Value: v}, true
}

func (c *generatorCursor) Stop() {
	if c.done {
		return
	}
	c.done = true
	if c.stop != nil {
		c.stop()
	}
}

func (c *generatorCursor) Kind() Kind { return KindGenerator }

// reflectSeq adapts a func(func(T) bool) of any element type.
func reflectSeq(fn reflect.Value) iter.Seq[any] {
	yieldType := fn.Type().In(0)
	return func(yield func(any) bool) {
		y := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface()))}
		})
		fn.Call([]reflect.Value{y})
	}
}

// reflectSeq2 adapts a func(func(K, V) bool) of any key and value types.
func reflectSeq2(fn reflect.Value) iter.Seq2[any, any] {
	yieldType := fn.Type().In(0)
	return func(yield func(any, any) bool) {
		y := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface(), args[1].Interface()))}
		})
		fn.Call([]reflect.Value{y})
	}
}
