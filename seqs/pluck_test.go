package seqs_test

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"polyiter/containers"
	"polyiter/seqs"
)

type address struct {
	City string `iter:"city"`
}

type person struct {
	Name string
	Home *address
	Tags []string
}

func TestPluck(t *testing.T) {
	people := []any{
		person{Name: "ann", Home: &address{City: "oslo"}, Tags: []string{"a"}},
		containers.NewRecord().Set("Name", "bob").Set("Home", containers.NewMapping().Set("city", "rome")),
		map[string]any{"Name": "cid"},
		nil,
	}

	tests := []struct {
		name         string
		path         string
		onlyExisting bool
		want         []any
	}{
		{"field", "Name", false, []any{"ann", "bob", "cid", nil}},
		{"dot path", "Home.city", false, []any{"oslo", "rome", nil, nil}},
		{"only existing", "Home.city", true, []any{"oslo", "rome"}},
		{"slice index", "Tags.0", true, []any{"a"}},
		{"missing", "Nope", true, []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := seqs.Pluck(people, tt.path, tt.onlyExisting)
			require.Equal(t, tt.want, collect(t, c, err))
		})
	}
}

func TestPluck_KeepsKeys(t *testing.T) {
	r := containers.NewRecord().
		Set("x", []any{1, 2}).
		Set("y", []any{3})
	c, err := seqs.Pluck(r, "1", true)
	require.NoError(t, err)
	require.Equal(t, []seqs.Triple{tr("x", 2, seqs.KindRecord)}, drain(t, c))

	_, err = seqs.Pluck(42, "a", false)
	require.ErrorIs(t, err, seqs.ErrUnsupportedSourceKind)
	require.ErrorContains(t, err, "pluck: argument 1")
}

type meter int

func (m meter) Format(unit string) string { return strconv.Itoa(int(m)) + unit }

func (m meter) Split(parts int) (meter, error) {
	if parts == 0 {
		return 0, errors.New("zero parts")
	}
	return m / meter(parts), nil
}

func (m meter) Join(sep string, more ...meter) int { return len(more) }

func (m meter) Reset() {}

func TestInvoke(t *testing.T) {
	source := []meter{10, 20}

	c, err := seqs.Invoke(source, "Format", "m")
	require.Equal(t, []any{"10m", "20m"}, collect(t, c, err))

	c, err = seqs.Invoke(source, "Split", 2)
	require.Equal(t, []any{meter(5), meter(10)}, collect(t, c, err))

	c, err = seqs.Invoke(source, "Join", ",", meter(1), meter(2))
	require.Equal(t, []any{2, 2}, collect(t, c, err))

	c, err = seqs.Invoke(source, "Reset")
	require.Equal(t, []any{nil, nil}, collect(t, c, err))

	r := containers.NewRecord().Set("a", 1)
	c, err = seqs.Invoke([]any{r}, "Get", "a")
	require.Equal(t, []any{[]any{1, true}}, collect(t, c, err))
}

func TestInvoke_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		args   []any
		want   error
	}{
		{"no method", "Missing", nil, seqs.ErrNoMethod},
		{"too few arguments", "Format", nil, seqs.ErrArity},
		{"too many arguments", "Format", []any{"m", "s"}, seqs.ErrArity},
		{"wrong argument type", "Format", []any{1}, seqs.ErrIncompatibleValue},
		{"nil for a value type", "Split", []any{nil}, seqs.ErrIncompatibleValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := seqs.Invoke([]meter{1, 2}, tt.method, tt.args...)
			require.NoError(t, err)
			_, ok := c.Next()
			require.False(t, ok)
			err = c.(seqs.Errer).Err()
			require.ErrorIs(t, err, tt.want)
			require.ErrorContains(t, err, "invoke: value at 0")
		})
	}

	c, err := seqs.Invoke([]meter{4, 6}, "Split", 0)
	require.NoError(t, err)
	_, ok := c.Next()
	require.False(t, ok)
	require.EqualError(t, c.(seqs.Errer).Err(), "invoke: value at 0: zero parts")
}
