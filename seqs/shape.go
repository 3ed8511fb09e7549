package seqs

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultShapeCacheSize is the number of reflected types whose iteration
// shape is remembered.
const DefaultShapeCacheSize = 256

type form uint8

const (
	formUnsupported form = iota
	formFactory
	formSlice
	formMap
	formSeq
	formSeq2
	formPull
	formStruct
)

// shape is what the normalizer needs to know about a reflected type.
type shape struct {
	form   form
	kind   Kind    // formMap: record for string keys, mapping otherwise
	fields []field // formStruct
}

type field struct {
	index int
	name  string
}

var shapes = mustShapeCache(DefaultShapeCacheSize)

func mustShapeCache(size int) *lru.Cache[reflect.Type, *shape] {
	c, err := lru.New[reflect.Type, *shape](size)
	if err != nil {
		panic(err)
	}
	return c
}

// SetClassifyCacheSize resizes the cache of reflected type shapes.
// Non-positive sizes are ignored.
func SetClassifyCacheSize(size int) {
	if size > 0 {
		shapes.Resize(size)
	}
}

func shapeOf(t reflect.Type) *shape {
	if sh, ok := shapes.Get(t); ok {
		return sh
	}
	sh := buildShape(t)
	shapes.Add(t, sh)
	return sh
}

var boolType = reflect.TypeFor[bool]()

func buildShape(t reflect.Type) *shape {
	switch t.Kind() {
	case reflect.Func:
		return funcShape(t)
	case reflect.Slice, reflect.Array:
		return &shape{form: formSlice}
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return &shape{form: formMap, kind: KindRecord}
		}
		return &shape{form: formMap, kind: KindMapping}
	case reflect.Struct:
		return &shape{form: formStruct, fields: structFields(t)}
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return &shape{form: formStruct, fields: structFields(t.Elem())}
		}
	}
	return &shape{}
}

func funcShape(t reflect.Type) *shape {
	if t.IsVariadic() {
		return &shape{}
	}
	if t.NumIn() == 0 && t.NumOut() == 1 {
		return &shape{form: formFactory}
	}
	if t.NumIn() == 0 && t.NumOut() == 2 && t.Out(1) == boolType {
		return &shape{form: formPull}
	}
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return &shape{}
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumOut() != 1 || y.Out(0) != boolType {
		return &shape{}
	}
	switch y.NumIn() {
	case 1:
		return &shape{form: formSeq}
	case 2:
		return &shape{form: formSeq2}
	}
	return &shape{}
}

// structFields lists exported fields in declaration order. The `iter` tag
// renames a field; `iter:"-"` skips it.
func structFields(t reflect.Type) []field {
	var fields []field
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("iter"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, field{index: i, name: name})
	}
	return fields
}

// sortedKeys returns the keys of a map value in a deterministic order.
func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	slices.SortFunc(keys, compareValues)
	return keys
}

func compareValues(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(validity(a), validity(b))
	}
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return cmp.Compare(a.Pointer(), b.Pointer())
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

func validity(v reflect.Value) int {
	if v.IsValid() {
		return 1
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
