package containers

import "iter"

type node[K comparable, V any] struct {
	prev *node[K, V]
	next *node[K, V]
	key  K
	val  V
}

// orderedMap is a hash index over a sentinel-bounded doubly linked list.
// The list carries insertion order; the index gives O(1) lookup and removal.
type orderedMap[K comparable, V any] struct {
	headSentinel *node[K, V]
	tailSentinel *node[K, V]
	index        map[K]*node[K, V]
}

func newOrderedMap[K comparable, V any]() orderedMap[K, V] {
	om := orderedMap[K, V]{
		headSentinel: &node[K, V]{},
		tailSentinel: &node[K, V]{},
		index:        make(map[K]*node[K, V]),
	}
	om.headSentinel.next = om.tailSentinel
	om.tailSentinel.prev = om.headSentinel
	return om
}

// set overwrites in place when key exists, so the key keeps its position.
func (om *orderedMap[K, V]) set(key K, val V) {
	if n, ok := om.index[key]; ok {
		n.val = val
		return
	}
	n := &node[K, V]{key: key, val: val}
	last := om.tailSentinel.prev
	n.prev = last
	n.next = om.tailSentinel
	last.next = n
	om.tailSentinel.prev = n
	om.index[key] = n
}

func (om *orderedMap[K, V]) get(key K) (val V, ok bool) {
	n, ok := om.index[key]
	if !ok {
		return val, false
	}
	return n.val, true
}

func (om *orderedMap[K, V]) has(key K) bool {
	_, ok := om.index[key]
	return ok
}

func (om *orderedMap[K, V]) remove(key K) bool {
	n, ok := om.index[key]
	if !ok {
		return false
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	// Help GC
	n.prev = nil
	n.next = nil
	delete(om.index, key)
	return true
}

func (om *orderedMap[K, V]) len() int {
	return len(om.index)
}

func (om *orderedMap[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for current := om.headSentinel.next; current != om.tailSentinel; current = current.next {
			if !yield(current.key, current.val) {
				return
			}
		}
	}
}

func (om *orderedMap[K, V]) keys() []K {
	out := make([]K, 0, om.len())
	for k := range om.all() {
		out = append(out, k)
	}
	return out
}

func (om *orderedMap[K, V]) values() []V {
	out := make([]V, 0, om.len())
	for _, v := range om.all() {
		out = append(out, v)
	}
	return out
}
