package seqs

import "reflect"

// ForEach calls visit for every triple of source, in order. A Stop action
// ends the traversal early and releases the cursor; a visitor error ends it
// and is returned. Once the source is exhausted, an error recorded by its
// cursor is returned.
//
// Plain slices are walked by index without building a cursor.
func ForEach(source any, visit Visitor) error {
	return forEach("forEach", source, visit)
}

// Each is ForEach with a plain callback that never stops early.
func Each(source any, fn func(value, key any)) error {
	return forEach("each", source, func(t Triple) (Action, error) {
		fn(t.Value, t.Key)
		return Continue, nil
	})
}

func forEach(op string, source any, visit Visitor) error {
	if s, ok := source.([]any); ok {
		for i, v := range s {
			act, err := visit(Triple{Key: i, Value: v, Kind: KindSequence})
			if err != nil || act == Stop {
				return err
			}
		}
		return nil
	}
	if v, ok := plainSlice(source); ok {
		for i := range v.Len() {
			act, err := visit(Triple{Key: i, Value: v.Index(i).Interface(), Kind: KindSequence})
			if err != nil || act == Stop {
				return err
			}
		}
		return nil
	}

	c, err := normalize(source)
	if err != nil {
		return opError(op, 1, err)
	}
	return drive(c, visit)
}

// plainSlice reports whether source is a slice or array that the
// normalizer would walk by index.
func plainSlice(source any) (reflect.Value, bool) {
	switch source.(type) {
	case nil, EntrySource, Cursor, Generator:
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(source)
	if k := v.Kind(); k != reflect.Slice && k != reflect.Array {
		return reflect.Value{}, false
	}
	return v, true
}

func drive(c Cursor, visit Visitor) error {
	for {
		t, ok := c.Next()
		if !ok {
			return cursorErr(c)
		}
		act, err := visit(t)
		if err != nil {
			stopCursor(c)
			return err
		}
		if act == Stop {
			stopCursor(c)
			return nil
		}
	}
}
