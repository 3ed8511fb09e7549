package seqs

import (
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Reduce folds source from left to right. With an initial value the fold
// starts from it; without one the first value seeds the accumulator and
// folding starts at the second triple, which fails with ErrEmptyReduce on
// an empty source.
func Reduce(source any, fn func(acc, value, key any) any, initial ...any) (any, error) {
	return reduce("reduce", source, func(acc, value, key any) (any, error) {
		return fn(acc, value, key), nil
	}, initial)
}

// Sum adds up the values of source with Add.
func Sum(source any, initial ...any) (any, error) {
	return reduce("sum", source, func(acc, value, _ any) (any, error) {
		return Add(acc, value)
	}, initial)
}

func reduce(op string, source any, fn func(acc, value, key any) (any, error), initial []any) (any, error) {
	if len(initial) > 1 {
		return nil, opError(op, 3, errors.Wrapf(ErrArity, "%d initial values", len(initial)))
	}
	var acc any
	seeded := len(initial) == 1
	if seeded {
		acc = initial[0]
	}
	err := forEach(op, source, func(t Triple) (Action, error) {
		if !seeded {
			acc, seeded = t.Value, true
			return Continue, nil
		}
		next, err := fn(acc, t.Value, t.Key)
		if err != nil {
			return Stop, opError(op, 0, err)
		}
		acc = next
		return Continue, nil
	})
	if err != nil {
		return nil, err
	}
	if !seeded {
		return nil, opError(op, 0, errors.WithStack(ErrEmptyReduce))
	}
	return acc, nil
}

// SumOf adds up values of type T. A value of any other type fails with
// ErrIncompatibleValue.
func SumOf[T constraints.Integer | constraints.Float](source any, initial T) (T, error) {
	total := initial
	err := forEach("sumOf", source, func(t Triple) (Action, error) {
		v, ok := t.Value.(T)
		if !ok {
			return Stop, opError("sumOf", 0, errors.Wrapf(ErrIncompatibleValue, "%v (%T) is not a %T", t.Value, t.Value, total))
		}
		total += v
		return Continue, nil
	})
	return total, err
}

// Add adds two dynamic values. Integers, floats and strings of one type add
// within that type; numbers of different types add as float64.
func Add(a, b any) (any, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Type() == vb.Type() {
		sum := reflect.New(va.Type()).Elem()
		switch {
		case va.CanInt():
			sum.SetInt(va.Int() + vb.Int())
			return sum.Interface(), nil
		case va.CanUint():
			sum.SetUint(va.Uint() + vb.Uint())
			return sum.Interface(), nil
		case va.CanFloat():
			sum.SetFloat(va.Float() + vb.Float())
			return sum.Interface(), nil
		case va.Kind() == reflect.String:
			sum.SetString(va.String() + vb.String())
			return sum.Interface(), nil
		}
	}
	fa, okA := toFloat(va)
	fb, okB := toFloat(vb)
	if okA && okB {
		return fa + fb, nil
	}
	return nil, errors.Wrapf(ErrIncompatibleValue, "cannot add %T and %T", a, b)
}

func toFloat(v reflect.Value) (float64, bool) {
	switch {
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	case v.CanFloat():
		return v.Float(), true
	}
	return 0, false
}
