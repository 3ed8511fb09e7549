package containers

import (
	"fmt"
	"iter"
	"strings"
)

// Mapping is a key-unique container with keys of any comparable dynamic
// type, in insertion order. Keys are compared with ==, so two distinct
// pointers are distinct keys even when they point at equal values.
//
// Like a native map, Set panics if the key's dynamic type is not comparable.
type Mapping struct {
	entries orderedMap[any, any]
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: newOrderedMap[any, any]()}
}

// Set stores value under key and returns the mapping for chaining.
// Overwriting keeps the key's original position.
func (m *Mapping) Set(key, value any) *Mapping {
	m.entries.set(key, value)
	return m
}

func (m *Mapping) Get(key any) (any, bool) {
	return m.entries.get(key)
}

func (m *Mapping) Has(key any) bool {
	return m.entries.has(key)
}

func (m *Mapping) Delete(key any) bool {
	return m.entries.remove(key)
}

func (m *Mapping) Len() int {
	return m.entries.len()
}

func (m *Mapping) Keys() []any {
	return m.entries.keys()
}

func (m *Mapping) Values() []any {
	return m.entries.values()
}

// Entries iterates key/value pairs in insertion order.
func (m *Mapping) Entries() iter.Seq2[any, any] {
	return m.entries.all()
}

func (m *Mapping) String() string {
	var b strings.Builder
	b.WriteString("map[")
	i := 0
	for k, v := range m.entries.all() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v:%v", k, v)
		i++
	}
	b.WriteString("]")
	return b.String()
}
