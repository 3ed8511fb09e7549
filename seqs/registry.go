package seqs

import (
	"math"
	"reflect"

	"github.com/pkg/errors"

	"polyiter/containers"
)

// kindEntry knows how to build an empty container of one kind and how to
// insert into it. insert may return a new container value (slices grow).
type kindEntry struct {
	empty  func() any
	insert func(container, value, key any) (any, error)
}

var registry = [...]kindEntry{
	KindSequence: {
		empty: func() any { return []any{} },
		insert: func(c, value, _ any) (any, error) {
			return append(c.([]any), value), nil
		},
	},
	KindRecord: {
		empty: func() any { return containers.NewRecord() },
		insert: func(c, value, key any) (any, error) {
			name, ok := fieldName(key)
			if !ok {
				return c, incompatibleKey(KindRecord, key)
			}
			return c.(*containers.Record).Set(name, value), nil
		},
	},
	KindMapping: {
		empty: func() any { return containers.NewMapping() },
		insert: func(c, value, key any) (any, error) {
			if !hashable(key) {
				return c, incompatibleKey(KindMapping, key)
			}
			return c.(*containers.Mapping).Set(key, value), nil
		},
	},
	KindSet: {
		empty: func() any { return containers.NewSet() },
		insert: func(c, value, _ any) (any, error) {
			if !hashable(value) {
				return c, incompatibleKey(KindSet, value)
			}
			return c.(*containers.Set).Add(value), nil
		},
	},
	KindSparse: {
		empty: func() any { return containers.NewSparse() },
		insert: func(c, value, key any) (any, error) {
			i, ok := asIndex(key)
			if !ok {
				return c, incompatibleKey(KindSparse, key)
			}
			return c.(*containers.Sparse).Set(i, value), nil
		},
	},
}

func lookup(k Kind) (kindEntry, bool) {
	if !k.Concrete() {
		return kindEntry{}, false
	}
	return registry[k], true
}

// Empty returns a new empty container of a concrete kind.
func Empty(k Kind) (any, error) {
	e, ok := lookup(k)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownContainerKind, "kind %s", k)
	}
	return e.empty(), nil
}

func incompatibleKey(k Kind, key any) error {
	return errors.Wrapf(ErrIncompatibleKey, "%s key %v (%T)", k, key, key)
}

func hashable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

func fieldName(key any) (string, bool) {
	if s, ok := key.(string); ok {
		return s, true
	}
	if v := reflect.ValueOf(key); v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}

// ordinal reports the integer value of an integer key of any type.
func ordinal(key any) (int64, bool) {
	v := reflect.ValueOf(key)
	switch {
	case v.CanInt():
		return v.Int(), true
	case v.CanUint():
		if u := v.Uint(); u <= math.MaxInt64 {
			return int64(u), true
		}
		return math.MaxInt64, true
	}
	return 0, false
}

// asIndex converts a non-negative integer key to a slot index.
func asIndex(key any) (int, bool) {
	n, ok := ordinal(key)
	if !ok || n < 0 || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}
