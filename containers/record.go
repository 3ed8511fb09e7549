package containers

import (
	"fmt"
	"iter"
	"strings"
)

// Record is a string-keyed container that remembers field insertion order.
// It is the output kind for plain records and for groups keyed by strings.
type Record struct {
	fields orderedMap[string, any]
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: newOrderedMap[string, any]()}
}

// Set assigns a field and returns the record for chaining. Reassigning an
// existing field keeps its original position.
func (r *Record) Set(name string, value any) *Record {
	r.fields.set(name, value)
	return r
}

func (r *Record) Get(name string) (any, bool) {
	return r.fields.get(name)
}

func (r *Record) Has(name string) bool {
	return r.fields.has(name)
}

// Delete removes a field, reporting whether it existed.
func (r *Record) Delete(name string) bool {
	return r.fields.remove(name)
}

func (r *Record) Len() int {
	return r.fields.len()
}

// Keys returns field names in insertion order.
func (r *Record) Keys() []string {
	return r.fields.keys()
}

// Values returns field values in insertion order.
func (r *Record) Values() []any {
	return r.fields.values()
}

// Fields iterates name/value pairs in insertion order.
func (r *Record) Fields() iter.Seq2[string, any] {
	return r.fields.all()
}

// Entries iterates name/value pairs in insertion order with untyped keys.
func (r *Record) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range r.fields.all() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Map copies the fields into a native map, dropping the order.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, r.Len())
	for k, v := range r.fields.all() {
		out[k] = v
	}
	return out
}

func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("{")
	i := 0
	for k, v := range r.fields.all() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s:%v", k, v)
		i++
	}
	b.WriteString("}")
	return b.String()
}
