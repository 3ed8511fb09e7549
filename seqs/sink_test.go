package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"polyiter/containers"
	"polyiter/seqs"
)

func greaterThan(n int) seqs.Predicate {
	return func(v, _ any) bool { return v.(int) > n }
}

func TestFirstLast(t *testing.T) {
	source := []int{10, 20, 30, 40, 50}

	got, ok, err := seqs.First(source, greaterThan(25))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, tr(2, 30, seqs.KindSequence), got)

	got, ok, err = seqs.Last(source, greaterThan(25))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, tr(4, 50, seqs.KindSequence), got)

	_, ok, err = seqs.First(source, greaterThan(99))
	require.NoError(t, err)
	require.False(t, ok)

	got, ok, err = seqs.First(source, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 10, got.Value)
}

func TestFirst_StopsAtMatch(t *testing.T) {
	calls := 0
	got, ok, err := seqs.First(seqs.Range(1, 1000, 1), func(v, _ any) bool {
		calls++
		return v.(int) == 3
	})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, got.Value)
	require.Equal(t, 3, calls)

	finished := false
	_, ok, err = seqs.First(counting(&finished), greaterThan(2))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, finished)
}

func TestSomeEvery(t *testing.T) {
	source := []int{2, 4, 6}

	some, err := seqs.Some(source, greaterThan(5))
	require.NoError(t, err)
	require.True(t, some)

	some, err = seqs.Some(source, greaterThan(6))
	require.NoError(t, err)
	require.False(t, some)

	every, err := seqs.Every(source, func(v, _ any) bool { return v.(int)%2 == 0 })
	require.NoError(t, err)
	require.True(t, every)

	every, err = seqs.Every(source, greaterThan(2))
	require.NoError(t, err)
	require.False(t, every)

	every, err = seqs.Every([]int{}, greaterThan(100))
	require.NoError(t, err)
	require.True(t, every)

	every, err = seqs.Every(source, nil)
	require.NoError(t, err)
	require.True(t, every)

	some, err = seqs.Some(source, nil)
	require.NoError(t, err)
	require.True(t, some)
}

func TestIndexOf(t *testing.T) {
	source := []any{"a", "b", "a", []int{1}}

	idx, err := seqs.IndexOf(source, "a")
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	idx, err = seqs.LastIndexOf(source, "a")
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	idx, err = seqs.IndexOf(source, "z")
	require.NoError(t, err)
	require.Equal(t, -1, idx)

	idx, err = seqs.IndexOf(source, []int{1})
	require.NoError(t, err)
	require.Equal(t, -1, idx, "slices never compare equal")

	idx, err = seqs.IndexOf([]any{1, int64(1)}, int64(1))
	require.NoError(t, err)
	require.Equal(t, 1, idx, "equality includes the dynamic type")
}

func TestFind(t *testing.T) {
	r := containers.NewRecord().Set("ten", 10).Set("twenty", 20).Set("thirty", 30)

	key, err := seqs.FindIndex(r, greaterThan(15))
	require.NoError(t, err)
	require.Equal(t, "twenty", key)

	key, err = seqs.FindLastIndex(r, greaterThan(15))
	require.NoError(t, err)
	require.Equal(t, "thirty", key)

	key, err = seqs.FindLastIndex(r, greaterThan(99))
	require.NoError(t, err)
	require.Equal(t, -1, key)

	v, err := seqs.Find(r, greaterThan(15))
	require.NoError(t, err)
	require.Equal(t, 20, v)

	v, err = seqs.FindLast(r, greaterThan(15))
	require.NoError(t, err)
	require.Equal(t, 30, v)

	v, err = seqs.Find(r, greaterThan(99))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSearch_Errors(t *testing.T) {
	_, err := seqs.Some(nil, greaterThan(1))
	require.ErrorIs(t, err, seqs.ErrUnsupportedSourceKind)
	require.ErrorContains(t, err, "some: argument 1")

	idx, err := seqs.IndexOf(42, 1)
	require.ErrorIs(t, err, seqs.ErrUnsupportedSourceKind)
	require.Equal(t, -1, idx)

	_, err = seqs.Find(&failingCursor{n: 3}, greaterThan(10))
	require.ErrorIs(t, err, errBroken)
}

func TestCount(t *testing.T) {
	n, err := seqs.Count(containers.NewSet(1, 2, 2, 3))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = seqs.Count([]int{})
	require.NoError(t, err)
	require.Zero(t, n)
}
