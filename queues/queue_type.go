package queues

import "iter"

// Queue is a FIFO buffer. The lazy combinators use it to park work that was
// pulled from an upstream cursor before its consumer asked for it.
type Queue[T any] interface {
	// puts an element at the end of the queue
	Enqueue(value T)
	// puts multiple elements at the end of the queue, preserving their order
	EnqueueAll(values ...T)
	// removes and returns the element at the front of the queue
	Dequeue() (value T, ok bool)
	// returns the element at the front of the queue without removing it
	Peek() (value T, ok bool)
	// yields and removes elements from the front until the queue is empty
	Drain() iter.Seq[T]
	// returns the number of elements in the queue
	Size() int
	// returns true if the queue is empty
	IsEmpty() bool
	// removes all elements from the queue
	Clear()
}

var _ Queue[int] = (*ArrayQueue[int])(nil)
