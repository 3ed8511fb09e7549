package sources

import (
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/pkg/errors"

	"polyiter/seqs"
)

// NodeCursor walks an IPLD map node as a record or a list node as a
// sequence. Scalar members become Go values (int64, float64, string, bool,
// []byte, datamodel.Link, or nil for null); map and list members stay
// datamodel.Node values and can be walked with Node in turn.
type NodeCursor struct {
	kind  seqs.Kind
	mapIt datamodel.MapIterator
	lstIt datamodel.ListIterator
	err   error
}

// Node returns a cursor over a map or list node.
func Node(n datamodel.Node) (*NodeCursor, error) {
	switch n.Kind() {
	case datamodel.Kind_Map:
		return &NodeCursor{kind: seqs.KindRecord, mapIt: n.MapIterator()}, nil
	case datamodel.Kind_List:
		return &NodeCursor{kind: seqs.KindSequence, lstIt: n.ListIterator()}, nil
	}
	return nil, errors.Wrapf(seqs.ErrUnsupportedSourceKind, "ipld node of kind %s", n.Kind())
}

func (c *NodeCursor) Next() (seqs.Triple, bool) {
	if c.err != nil {
		return seqs.Triple{}, false
	}
	var (
		key any
		v   datamodel.Node
		err error
	)
	switch {
	case c.mapIt != nil:
		if c.mapIt.Done() {
			return seqs.Triple{}, false
		}
		var k datamodel.Node
		if k, v, err = c.mapIt.Next(); err == nil {
			key, err = k.AsString()
		}
	case c.lstIt != nil:
		if c.lstIt.Done() {
			return seqs.Triple{}, false
		}
		var idx int64
		idx, v, err = c.lstIt.Next()
		key = int(idx)
	default:
		return seqs.Triple{}, false
	}
	if err != nil {
		c.err = errors.Wrap(err, "iterate ipld node")
		return seqs.Triple{}, false
	}
	value, err := nodeValue(v)
	if err != nil {
		c.err = errors.Wrapf(err, "read ipld value at %v", key)
		return seqs.Triple{}, false
	}
	return seqs.Triple{Key: key, Value: value, Kind: c.kind}, true
}

// Err returns the first iteration or decoding error.
func (c *NodeCursor) Err() error { return c.err }

func (c *NodeCursor) Kind() seqs.Kind { return c.kind }

func nodeValue(n datamodel.Node) (any, error) {
	switch n.Kind() {
	case datamodel.Kind_Null:
		return nil, nil
	case datamodel.Kind_Bool:
		return n.AsBool()
	case datamodel.Kind_Int:
		return n.AsInt()
	case datamodel.Kind_Float:
		return n.AsFloat()
	case datamodel.Kind_String:
		return n.AsString()
	case datamodel.Kind_Bytes:
		return n.AsBytes()
	case datamodel.Kind_Link:
		return n.AsLink()
	}
	return n, nil
}
