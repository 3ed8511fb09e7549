package seqs

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"polyiter/containers"
)

type pluckCursor struct {
	upstream
	path         []string
	onlyExisting bool
}

func (c *pluckCursor) Next() (Triple, bool) {
	for {
		t, ok := c.src.Next()
		if !ok {
			return Triple{}, false
		}
		v, found := pluck(t.Value, c.path)
		if c.onlyExisting && (!found || v == nil) {
			continue
		}
		t.Value = v
		return t, true
	}
}

// Pluck re-emits, for every value of source, the value at a dot-separated
// path such as "owner.name". Each segment selects a record or struct field
// (honoring the `iter` tag), a mapping or string-keyed map entry, or a
// slice or sparse index. A path that cannot be followed yields nil; with
// onlyExisting set, such values and nil values are skipped. Keys and kinds
// are kept.
func Pluck(source any, path string, onlyExisting bool) (Cursor, error) {
	src, err := open("pluck", 1, source)
	if err != nil {
		return nil, err
	}
	return &pluckCursor{upstream: upstream{src}, path: strings.Split(path, "."), onlyExisting: onlyExisting}, nil
}

func pluck(v any, path []string) (any, bool) {
	for _, name := range path {
		var ok bool
		if v, ok = property(v, name); !ok {
			return nil, false
		}
	}
	return v, true
}

// property looks up one path segment in v.
func property(v any, name string) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case *containers.Record:
		return v.Get(name)
	case *containers.Mapping:
		return v.Get(name)
	case *containers.Sparse:
		i, err := strconv.Atoi(name)
		if err != nil {
			return nil, false
		}
		return v.Get(i)
	case map[string]any:
		x, ok := v[name]
		return x, ok
	case []any:
		if i, ok := position(name, len(v)); ok {
			return v[i], true
		}
		return nil, false
	case EntrySource:
		for k, x := range v.Entries() {
			if k == name {
				return x, true
			}
		}
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		for _, f := range shapeOf(rv.Type()).fields {
			if f.name == name {
				return rv.Field(f.index).Interface(), true
			}
		}
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		if x := rv.MapIndex(reflect.ValueOf(name).Convert(kt)); x.IsValid() {
			return x.Interface(), true
		}
	case reflect.Slice, reflect.Array:
		if i, ok := position(name, rv.Len()); ok {
			return rv.Index(i).Interface(), true
		}
	}
	return nil, false
}

func position(name string, n int) (int, bool) {
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

type invokeCursor struct {
	upstream
	method string
	args   []any
	err    error
}

func (c *invokeCursor) Next() (Triple, bool) {
	if c.err != nil {
		return Triple{}, false
	}
	t, ok := c.src.Next()
	if !ok {
		return Triple{}, false
	}
	v, err := call(t.Value, c.method, c.args)
	if err != nil {
		c.err = opError("invoke", 0, errors.WithMessagef(err, "value at %v", t.Key))
		c.upstream.Stop()
		return Triple{}, false
	}
	t.Value = v
	return t, true
}

func (c *invokeCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.upstream.Err()
}

// Invoke re-emits the result of calling the named method with args on
// every value of source. A method with no results yields nil, one result
// yields it, and several yield them as a []any. A trailing error result is
// not part of the value: when it is non-nil the cursor stops and reports it
// through Err, as it does for values lacking the method (ErrNoMethod) or
// taking other arguments (ErrArity, ErrIncompatibleValue).
func Invoke(source any, method string, args ...any) (Cursor, error) {
	src, err := open("invoke", 1, source)
	if err != nil {
		return nil, err
	}
	return &invokeCursor{upstream: upstream{src}, method: method, args: args}, nil
}

var errorType = reflect.TypeFor[error]()

func call(v any, name string, args []any) (any, error) {
	if v == nil {
		return nil, errors.Wrapf(ErrNoMethod, "%s on nil", name)
	}
	m := reflect.ValueOf(v).MethodByName(name)
	if !m.IsValid() {
		return nil, errors.Wrapf(ErrNoMethod, "%T has no method %s", v, name)
	}
	mt := m.Type()
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
	}
	if len(args) < fixed || !mt.IsVariadic() && len(args) > fixed {
		return nil, errors.Wrapf(ErrArity, "%T.%s takes %d arguments, got %d", v, name, fixed, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		want := paramType(mt, i, fixed)
		if a == nil {
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(want)
				continue
			}
			return nil, errors.Wrapf(ErrIncompatibleValue, "argument %d of %T.%s: nil is not a %s", i+1, v, name, want)
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(want) {
			return nil, errors.Wrapf(ErrIncompatibleValue, "argument %d of %T.%s: %T is not a %s", i+1, v, name, a, want)
		}
		in[i] = av
	}

	out := m.Call(in)
	if n := len(out); n > 0 && mt.Out(n-1) == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return nil, err
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, nil
}

func paramType(mt reflect.Type, i, fixed int) reflect.Type {
	if i >= fixed {
		return mt.In(fixed).Elem()
	}
	return mt.In(i)
}
