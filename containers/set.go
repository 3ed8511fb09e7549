package containers

import (
	"fmt"
	"iter"
	"strings"
)

// Set is a value-unique container in first-insertion order. A set has no
// independent keys: its entries pair every value with itself.
//
// Add panics if the value's dynamic type is not comparable.
type Set struct {
	members orderedMap[any, struct{}]
}

// NewSet returns a set holding values, duplicates dropped, in first-seen
// order.
func NewSet(values ...any) *Set {
	s := &Set{members: newOrderedMap[any, struct{}]()}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts value if absent and returns the set for chaining.
func (s *Set) Add(value any) *Set {
	if !s.members.has(value) {
		s.members.set(value, struct{}{})
	}
	return s
}

func (s *Set) Has(value any) bool {
	return s.members.has(value)
}

func (s *Set) Delete(value any) bool {
	return s.members.remove(value)
}

func (s *Set) Len() int {
	return s.members.len()
}

// Values returns the members in insertion order.
func (s *Set) Values() []any {
	return s.members.keys()
}

// Entries yields (value, value) for every member.
func (s *Set) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for v := range s.members.all() {
			if !yield(v, v) {
				return
			}
		}
	}
}

// Union returns the members of s followed by the members of o not in s.
func (s *Set) Union(o *Set) *Set {
	out := NewSet(s.Values()...)
	for v := range o.members.all() {
		out.Add(v)
	}
	return out
}

// Intersection returns the members of s that are also in o, in s's order.
func (s *Set) Intersection(o *Set) *Set {
	out := NewSet()
	for v := range s.members.all() {
		if o.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Difference returns the members of s that are not in o.
func (s *Set) Difference(o *Set) *Set {
	out := NewSet()
	for v := range s.members.all() {
		if !o.Has(v) {
			out.Add(v)
		}
	}
	return out
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("set[")
	i := 0
	for v := range s.members.all() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", v)
		i++
	}
	b.WriteString("]")
	return b.String()
}
