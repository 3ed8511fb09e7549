/*
Package seqs is a lazy, pull-based iteration core over heterogeneous
containers.

Any supported source is normalized into a [Cursor] of [Triple] values
(key, value, kind). The kind records which container the triple came from
so a [Collector] can rebuild a container of the same kind after any chain
of lazy combinators:

	c, _ := seqs.Filter(record, func(v, _ any) bool { return v.(int) < 25 })
	out, _ := seqs.Collect(c, record) // *containers.Record

Supported sources, in the order the normalizer tries them:

  - zero-argument factories, invoked each time they are normalized
  - entry sources (the containers package), slices, arrays and maps
  - iter.Seq and iter.Seq2 push iterators
  - Cursors and pull generators
  - structs, enumerated by exported field

Lazy combinators ([Map], [MapN], [Filter], [TakeWhile], [Take], [DropWhile],
[Drop], [Zip], [Chain], [GroupBy]) wrap their source and do no work until
pulled. A wrapping cursor is the only consumer of the cursor it wraps.

# Traversal

[ForEach] drives a source with a [Visitor] that returns [Continue] or
[Stop] plus an error. [First], [Some], [IndexOf] and friends stop at the
first match; [Reduce] and [Sum] fold the whole source.

# Errors

Failures are returned as [*OpError] naming the operation and, where one is
responsible, the positional argument. They wrap the sentinels in errors.go,
so errors.Is works:

	_, err := seqs.Map(42, fn)
	errors.Is(err, seqs.ErrUnsupportedSourceKind) // true
*/
package seqs
