package queues

import (
	"iter"
	"math/bits"
)

const defaultCapacity = 8

// ArrayQueue is a ring-buffer FIFO. Capacity is always a power of two so the
// physical slot of a logical position is a mask away.
type ArrayQueue[T any] struct {
	buf  []T
	head int
	size int
	mask int
}

// NewArrayQueue creates a queue able to hold initialCapacity elements before
// it has to grow. Non-positive capacities use a small default.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = defaultCapacity
	}
	capacity := roundUp(initialCapacity)
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// roundUp returns the smallest power of two >= n (n > 0).
func roundUp(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow reallocates so at least extra more elements fit, unwrapping the ring.
func (aq *ArrayQueue[T]) grow(extra int) {
	capacity := roundUp(aq.size + extra)
	next := make([]T, capacity)
	if aq.head+aq.size <= len(aq.buf) {
		copy(next, aq.buf[aq.head:aq.head+aq.size])
	} else {
		n := copy(next, aq.buf[aq.head:])
		copy(next[n:], aq.buf[:(aq.head+aq.size)&aq.mask])
	}
	clear(aq.buf)
	aq.buf = next
	aq.head = 0
	aq.mask = capacity - 1
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow(1)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if n == 0 {
		return
	}
	if aq.size+n > len(aq.buf) {
		aq.grow(n)
	}
	tail := (aq.head + aq.size) & aq.mask
	if tail+n <= len(aq.buf) {
		copy(aq.buf[tail:], values)
	} else {
		split := len(aq.buf) - tail
		copy(aq.buf[tail:], values[:split])
		copy(aq.buf, values[split:])
	}
	aq.size += n
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // drop the reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

// Drain yields queued elements in FIFO order, removing each one before it is
// yielded. Elements enqueued while draining are yielded too.
func (aq *ArrayQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := aq.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}
