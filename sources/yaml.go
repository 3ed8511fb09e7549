package sources

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"polyiter/seqs"
)

// YAMLMap is a YAML mapping in document order. Nested mappings are exposed
// as *YAMLMap values and nested sequences as []any.
type YAMLMap struct {
	items yaml.MapSlice
}

// YAML wraps a decoded MapSlice.
func YAML(ms yaml.MapSlice) *YAMLMap {
	return &YAMLMap{items: ms}
}

// Entries yields key/value pairs in document order.
func (m *YAMLMap) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, item := range m.items {
			if !yield(item.Key, wrapValue(item.Value)) {
				return
			}
		}
	}
}

// Kind reports seqs.KindMapping; YAML keys need not be strings.
func (m *YAMLMap) Kind() seqs.Kind { return seqs.KindMapping }

func (m *YAMLMap) Len() int { return len(m.items) }

// Get returns the value of the first item with the given key. Keys that
// cannot be compared, such as complex sequence keys, never match.
func (m *YAMLMap) Get(key any) (any, bool) {
	if !canCompare(key) {
		return nil, false
	}
	for _, item := range m.items {
		if canCompare(item.Key) && item.Key == key {
			return wrapValue(item.Value), true
		}
	}
	return nil, false
}

// DecodeYAML decodes a YAML document. The result is a *YAMLMap for a
// mapping document, a []any for a sequence and the bare scalar otherwise.
// Mappings keep their document order only under a mapping document; inside
// a sequence document they decode as native maps.
func DecodeYAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if _, ok := doc.(map[any]any); !ok {
		return wrapValue(doc), nil
	}
	var ms yaml.MapSlice
	if err := yaml.Unmarshal(data, &ms); err != nil {
		return nil, errors.Wrap(err, "decode yaml mapping")
	}
	return YAML(ms), nil
}

func canCompare(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

func wrapValue(v any) any {
	switch v := v.(type) {
	case yaml.MapSlice:
		return YAML(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = wrapValue(e)
		}
		return out
	default:
		return v
	}
}
