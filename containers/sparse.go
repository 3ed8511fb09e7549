package containers

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// DenseLimit is the largest length Slice will allocate.
const DenseLimit = 1 << 24

// ErrTooSparse is returned by Slice when the dense form would be longer
// than DenseLimit.
var ErrTooSparse = errors.New("sparse sequence too long to densify")

// Sparse is an integer-indexed sequence that may have holes. Entries are
// always enumerated in ascending index order, whatever order they were set.
type Sparse struct {
	slots   map[int]any
	indices []int // sorted
}

// NewSparse returns an empty sparse sequence.
func NewSparse() *Sparse {
	return &Sparse{slots: make(map[int]any)}
}

// Set writes value at index and returns the sequence for chaining.
// It panics if index is negative.
func (s *Sparse) Set(index int, value any) *Sparse {
	if index < 0 {
		panic(fmt.Sprintf("containers: negative sparse index %d", index))
	}
	if _, ok := s.slots[index]; !ok {
		pos, _ := slices.BinarySearch(s.indices, index)
		s.indices = slices.Insert(s.indices, pos, index)
	}
	s.slots[index] = value
	return s
}

func (s *Sparse) Get(index int) (any, bool) {
	v, ok := s.slots[index]
	return v, ok
}

func (s *Sparse) Has(index int) bool {
	_, ok := s.slots[index]
	return ok
}

func (s *Sparse) Delete(index int) bool {
	if _, ok := s.slots[index]; !ok {
		return false
	}
	delete(s.slots, index)
	pos, _ := slices.BinarySearch(s.indices, index)
	s.indices = slices.Delete(s.indices, pos, pos+1)
	return true
}

// Len is one past the highest occupied index, holes included.
func (s *Sparse) Len() int {
	if len(s.indices) == 0 {
		return 0
	}
	return s.indices[len(s.indices)-1] + 1
}

// Count is the number of occupied slots.
func (s *Sparse) Count() int {
	return len(s.indices)
}

// Indices returns the occupied indices in ascending order.
func (s *Sparse) Indices() []int {
	return slices.Clone(s.indices)
}

// Values returns the occupied values in ascending index order.
func (s *Sparse) Values() []any {
	out := make([]any, len(s.indices))
	for i, idx := range s.indices {
		out[i] = s.slots[idx]
	}
	return out
}

// Entries yields (index, value) for occupied slots in ascending order.
func (s *Sparse) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, idx := range s.indices {
			if !yield(idx, s.slots[idx]) {
				return
			}
		}
	}
}

// Slice returns a dense copy of length Len with nil in every hole. It fails
// with ErrTooSparse rather than allocate more than DenseLimit slots.
func (s *Sparse) Slice() ([]any, error) {
	if n := s.Len(); n > DenseLimit {
		return nil, errors.Wrapf(ErrTooSparse, "length %d with %d entries", n, s.Count())
	}
	out := make([]any, s.Len())
	for _, idx := range s.indices {
		out[idx] = s.slots[idx]
	}
	return out, nil
}

// String prints a hole-free sequence like a slice, and otherwise only the
// occupied index:value pairs.
func (s *Sparse) String() string {
	if s.Count() == s.Len() {
		return fmt.Sprint(s.Values())
	}
	var b strings.Builder
	b.WriteString("sparse[")
	for i, idx := range s.indices {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%v", idx, s.slots[idx])
	}
	b.WriteByte(']')
	return b.String()
}
