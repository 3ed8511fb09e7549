package seqs

// First returns the first triple of source satisfying pred. Traversal stops
// at the match. A nil pred matches everything.
func First(source any, pred Predicate) (Triple, bool, error) {
	return first("first", source, pred)
}

// Last returns the last triple of source satisfying pred. The source is
// always traversed to the end. A nil pred matches everything.
func Last(source any, pred Predicate) (Triple, bool, error) {
	return last("last", source, pred)
}

func first(op string, source any, pred Predicate) (found Triple, ok bool, err error) {
	err = forEach(op, source, func(t Triple) (Action, error) {
		if pred == nil || pred(t.Value, t.Key) {
			found, ok = t, true
			return Stop, nil
		}
		return Continue, nil
	})
	return found, ok, err
}

func last(op string, source any, pred Predicate) (found Triple, ok bool, err error) {
	err = forEach(op, source, func(t Triple) (Action, error) {
		if pred == nil || pred(t.Value, t.Key) {
			found, ok = t, true
		}
		return Continue, nil
	})
	return found, ok, err
}

// Some reports whether any triple satisfies pred.
func Some(source any, pred Predicate) (bool, error) {
	_, ok, err := first("some", source, pred)
	return ok, err
}

// Every reports whether no triple fails pred. It is true for an empty source
// and for a nil pred.
func Every(source any, pred Predicate) (bool, error) {
	if pred == nil {
		pred = func(any, any) bool { return true }
	}
	_, ok, err := first("every", source, func(v, k any) bool { return !pred(v, k) })
	return !ok, err
}

// IndexOf returns the key of the first value equal to el, or -1.
func IndexOf(source any, el any) (any, error) {
	return keyOf(first("indexOf", source, equalTo(el)))
}

// LastIndexOf returns the key of the last value equal to el, or -1.
func LastIndexOf(source any, el any) (any, error) {
	return keyOf(last("lastIndexOf", source, equalTo(el)))
}

// FindIndex returns the key of the first triple satisfying pred, or -1.
func FindIndex(source any, pred Predicate) (any, error) {
	return keyOf(first("findIndex", source, pred))
}

// FindLastIndex returns the key of the last triple satisfying pred, or -1.
func FindLastIndex(source any, pred Predicate) (any, error) {
	return keyOf(last("findLastIndex", source, pred))
}

// Find returns the value of the first triple satisfying pred, or nil.
func Find(source any, pred Predicate) (any, error) {
	t, _, err := first("find", source, pred)
	return t.Value, err
}

// FindLast returns the value of the last triple satisfying pred, or nil.
func FindLast(source any, pred Predicate) (any, error) {
	t, _, err := last("findLast", source, pred)
	return t.Value, err
}

func keyOf(t Triple, ok bool, err error) (any, error) {
	if err != nil || !ok {
		return -1, err
	}
	return t.Key, nil
}

// equalTo matches values == el. Values of types that cannot be compared
// never match.
func equalTo(el any) Predicate {
	ok := hashable(el)
	return func(v, _ any) bool {
		return ok && hashable(v) && v == el
	}
}

// Count returns the number of triples in source.
func Count(source any) (int, error) {
	n := 0
	err := forEach("count", source, func(Triple) (Action, error) {
		n++
		return Continue, nil
	})
	return n, err
}
