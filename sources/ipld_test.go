package sources_test

import (
	"testing"

	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/stretchr/testify/require"

	"polyiter/containers"
	"polyiter/seqs"
	"polyiter/sources"
)

func buildMap(t *testing.T) datamodel.Node {
	nb := basicnode.Prototype.Any.NewBuilder()
	ma, err := nb.BeginMap(3)
	require.NoError(t, err)
	require.NoError(t, ma.AssembleKey().AssignString("name"))
	require.NoError(t, ma.AssembleValue().AssignString("polyiter"))
	require.NoError(t, ma.AssembleKey().AssignString("count"))
	require.NoError(t, ma.AssembleValue().AssignInt(7))
	require.NoError(t, ma.AssembleKey().AssignString("tags"))
	la, err := ma.AssembleValue().BeginList(2)
	require.NoError(t, err)
	require.NoError(t, la.AssembleValue().AssignString("a"))
	require.NoError(t, la.AssembleValue().AssignNull())
	require.NoError(t, la.Finish())
	require.NoError(t, ma.Finish())
	return nb.Build()
}

func TestNode_Map(t *testing.T) {
	c, err := sources.Node(buildMap(t))
	require.NoError(t, err)
	require.Equal(t, seqs.KindRecord, c.Kind())

	out, err := seqs.Collect(c, c)
	require.NoError(t, err)
	require.NoError(t, c.Err())

	r := out.(*containers.Record)
	require.Equal(t, []string{"name", "count", "tags"}, r.Keys())
	count, _ := r.Get("count")
	require.Equal(t, int64(7), count)

	tags, _ := r.Get("tags")
	list, err := sources.Node(tags.(datamodel.Node))
	require.NoError(t, err)
	values, err := seqs.Collect(list, list)
	require.NoError(t, err)
	require.Equal(t, []any{"a", nil}, values)
}

func TestNode_ListKeys(t *testing.T) {
	nb := basicnode.Prototype.Any.NewBuilder()
	la, err := nb.BeginList(3)
	require.NoError(t, err)
	for _, n := range []int64{4, 5, 6} {
		require.NoError(t, la.AssembleValue().AssignInt(n))
	}
	require.NoError(t, la.Finish())

	c, err := sources.Node(nb.Build())
	require.NoError(t, err)
	idx, err := seqs.IndexOf(c, int64(6))
	require.NoError(t, err)
	require.Equal(t, 2, idx)
}

func TestNode_Scalar(t *testing.T) {
	_, err := sources.Node(basicnode.NewString("scalar"))
	require.ErrorIs(t, err, seqs.ErrUnsupportedSourceKind)
}
