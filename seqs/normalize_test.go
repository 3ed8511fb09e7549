package seqs_test

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"polyiter/containers"
	"polyiter/seqs"
)

func tr(key, value any, kind seqs.Kind) seqs.Triple {
	return seqs.Triple{Key: key, Value: value, Kind: kind}
}

func drain(t *testing.T, c seqs.Cursor) []seqs.Triple {
	t.Helper()
	var out []seqs.Triple
	for triple := range seqs.Triples(c) {
		out = append(out, triple)
	}
	if e, ok := c.(seqs.Errer); ok {
		require.NoError(t, e.Err())
	}
	return out
}

// counting yields 0, 1, 2, ... forever and records when it has returned.
func counting(finished *bool) iter.Seq[any] {
	return func(yield func(any) bool) {
		defer func() { *finished = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

type point struct {
	X      int
	Y      int `iter:"why"`
	Z      int `iter:"-"`
	hidden int
}

func TestNormalize(t *testing.T) {
	pulled := 0
	pull := func() (any, bool) {
		if pulled == 2 {
			return nil, false
		}
		pulled++
		return pulled * 10, true
	}
	typedPulled := 0
	typedPull := func() (string, bool) {
		if typedPulled == 1 {
			return "", false
		}
		typedPulled++
		return "only", true
	}
	triples := iter.Seq[seqs.Triple](func(yield func(seqs.Triple) bool) {
		yield(tr("k", 1, seqs.KindRecord))
	})

	tests := []struct {
		name   string
		source any
		kind   seqs.Kind
		want   []seqs.Triple
	}{
		{
			name:   "any slice",
			source: []any{"a", "b"},
			kind:   seqs.KindSequence,
			want:   []seqs.Triple{tr(0, "a", seqs.KindSequence), tr(1, "b", seqs.KindSequence)},
		},
		{
			name:   "typed slice",
			source: []int{10, 20},
			kind:   seqs.KindSequence,
			want:   []seqs.Triple{tr(0, 10, seqs.KindSequence), tr(1, 20, seqs.KindSequence)},
		},
		{
			name:   "array",
			source: [2]string{"x", "y"},
			kind:   seqs.KindSequence,
			want:   []seqs.Triple{tr(0, "x", seqs.KindSequence), tr(1, "y", seqs.KindSequence)},
		},
		{
			name:   "string keyed map in key order",
			source: map[string]int{"b": 2, "a": 1, "c": 3},
			kind:   seqs.KindRecord,
			want: []seqs.Triple{
				tr("a", 1, seqs.KindRecord), tr("b", 2, seqs.KindRecord), tr("c", 3, seqs.KindRecord),
			},
		},
		{
			name:   "int keyed map in key order",
			source: map[int]string{2: "two", 1: "one"},
			kind:   seqs.KindMapping,
			want:   []seqs.Triple{tr(1, "one", seqs.KindMapping), tr(2, "two", seqs.KindMapping)},
		},
		{
			name:   "struct",
			source: point{X: 1, Y: 2, Z: 3, hidden: 4},
			kind:   seqs.KindRecord,
			want:   []seqs.Triple{tr("X", 1, seqs.KindRecord), tr("why", 2, seqs.KindRecord)},
		},
		{
			name:   "struct pointer",
			source: &point{X: 1, Y: 2},
			kind:   seqs.KindRecord,
			want:   []seqs.Triple{tr("X", 1, seqs.KindRecord), tr("why", 2, seqs.KindRecord)},
		},
		{
			name:   "record",
			source: containers.NewRecord().Set("b", 1).Set("a", 2),
			kind:   seqs.KindRecord,
			want:   []seqs.Triple{tr("b", 1, seqs.KindRecord), tr("a", 2, seqs.KindRecord)},
		},
		{
			name:   "mapping",
			source: containers.NewMapping().Set(1, "x"),
			kind:   seqs.KindMapping,
			want:   []seqs.Triple{tr(1, "x", seqs.KindMapping)},
		},
		{
			name:   "set keys are values",
			source: containers.NewSet(5, 6),
			kind:   seqs.KindSet,
			want:   []seqs.Triple{tr(5, 5, seqs.KindSet), tr(6, 6, seqs.KindSet)},
		},
		{
			name:   "sparse",
			source: containers.NewSparse().Set(4, "e").Set(2, "c"),
			kind:   seqs.KindSparse,
			want:   []seqs.Triple{tr(2, "c", seqs.KindSparse), tr(4, "e", seqs.KindSparse)},
		},
		{
			name:   "factory",
			source: func() any { return []any{1} },
			kind:   seqs.KindSequence,
			want:   []seqs.Triple{tr(0, 1, seqs.KindSequence)},
		},
		{
			name:   "typed factory",
			source: func() []string { return []string{"s"} },
			kind:   seqs.KindSequence,
			want:   []seqs.Triple{tr(0, "s", seqs.KindSequence)},
		},
		{
			name:   "value iterator",
			source: slices.Values([]int{7, 8}),
			kind:   seqs.KindGenerator,
			want:   []seqs.Triple{tr(0, 7, seqs.KindNone), tr(1, 8, seqs.KindNone)},
		},
		{
			name:   "pair iterator",
			source: maps.All(map[string]int{"k": 1}),
			kind:   seqs.KindGenerator,
			want:   []seqs.Triple{tr("k", 1, seqs.KindNone)},
		},
		{
			name:   "triple iterator passes through",
			source: triples,
			kind:   seqs.KindGenerator,
			want:   []seqs.Triple{tr("k", 1, seqs.KindRecord)},
		},
		{
			name:   "pull func",
			source: pull,
			kind:   seqs.KindGenerator,
			want:   []seqs.Triple{tr(0, 10, seqs.KindNone), tr(1, 20, seqs.KindNone)},
		},
		{
			name:   "typed pull func",
			source: typedPull,
			kind:   seqs.KindGenerator,
			want:   []seqs.Triple{tr(0, "only", seqs.KindNone)},
		},
		{
			name:   "range cursor",
			source: seqs.Range(1, 2, 1),
			kind:   seqs.KindSequence,
			want:   []seqs.Triple{tr(0, 1, seqs.KindSequence), tr(1, 2, seqs.KindSequence)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := seqs.Normalize(tt.source)
			require.NoError(t, err)
			require.Equal(t, tt.kind, seqs.KindOf(c))
			require.Equal(t, tt.want, drain(t, c))

			_, ok := c.Next()
			require.False(t, ok, "exhausted cursors stay exhausted")
		})
	}
}

func TestNormalize_Unsupported(t *testing.T) {
	var nilFactory func() any
	var nilPoint *point

	for _, source := range []any{nil, 42, "text", make(chan int), nilFactory, nilPoint, func(int) {}} {
		_, err := seqs.Normalize(source)
		require.ErrorIs(t, err, seqs.ErrUnsupportedSourceKind)

		var opErr *seqs.OpError
		require.ErrorAs(t, err, &opErr)
		require.Equal(t, "normalize", opErr.Op)

		_, err = seqs.Classify(source)
		require.ErrorIs(t, err, seqs.ErrUnsupportedSourceKind)
	}
}

func TestNormalize_CursorUnchanged(t *testing.T) {
	c := seqs.Range(1, 3, 1)
	got, err := seqs.Normalize(c)
	require.NoError(t, err)
	require.True(t, c == got)
}

func TestNormalize_FactoryReevaluated(t *testing.T) {
	calls := 0
	factory := func() any {
		calls++
		return []any{calls}
	}

	for want := 1; want <= 2; want++ {
		c, err := seqs.Normalize(factory)
		require.NoError(t, err)
		require.Equal(t, []seqs.Triple{tr(0, want, seqs.KindSequence)}, drain(t, c))
	}
}

func TestNormalize_StopReleasesIterator(t *testing.T) {
	finished := false
	c, err := seqs.Normalize(counting(&finished))
	require.NoError(t, err)

	got, ok := c.Next()
	require.True(t, ok)
	require.Equal(t, tr(0, 0, seqs.KindNone), got)
	require.False(t, finished)

	c.(seqs.Stopper).Stop()
	require.True(t, finished)

	_, ok = c.Next()
	require.False(t, ok)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		source any
		want   seqs.Kind
	}{
		{[]int{}, seqs.KindSequence},
		{[]any{}, seqs.KindSequence},
		{map[string]any{}, seqs.KindRecord},
		{map[any]any{}, seqs.KindMapping},
		{point{}, seqs.KindRecord},
		{containers.NewSet(), seqs.KindSet},
		{containers.NewSparse(), seqs.KindSparse},
		{slices.Values([]int{}), seqs.KindGenerator},
		{func() any { return containers.NewMapping() }, seqs.KindMapping},
		{seqs.NextFunc(func() (any, bool) { return nil, false }), seqs.KindGenerator},
	}
	for _, tt := range tests {
		got, err := seqs.Classify(tt.source)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%T", tt.source)
	}
}

func TestSetClassifyCacheSize(t *testing.T) {
	defer seqs.SetClassifyCacheSize(seqs.DefaultShapeCacheSize)

	seqs.SetClassifyCacheSize(1)
	seqs.SetClassifyCacheSize(0)
	for range 2 {
		k, err := seqs.Classify(point{})
		require.NoError(t, err)
		require.Equal(t, seqs.KindRecord, k)

		k, err = seqs.Classify(map[int]int{})
		require.NoError(t, err)
		require.Equal(t, seqs.KindMapping, k)
	}
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "sequence", seqs.KindSequence.String())
	require.Equal(t, "generator", seqs.KindGenerator.String())
	require.Equal(t, "kind(42)", seqs.Kind(42).String())
	require.True(t, seqs.KindSparse.Concrete())
	require.False(t, seqs.KindGenerator.Concrete())
	require.False(t, seqs.KindNone.Concrete())
}
