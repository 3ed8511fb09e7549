package eager

import (
	"github.com/pkg/errors"

	"polyiter/seqs"
)

// GroupBy partitions source by keyFn(value, key). Every group is
// materialized as the kind of source; the container of groups is a sparse
// sequence, record or mapping depending on the first group key, or the
// kind given with Into.
func GroupBy(source any, keyFn seqs.MapFunc, opts ...Option) (any, error) {
	cfg := configure(opts)
	var groupOpts []seqs.GroupOption
	if cfg.kind.Concrete() {
		groupOpts = append(groupOpts, seqs.WithGroupKind(cfg.kind))
	}
	c, err := seqs.GroupBy(source, keyFn, groupOpts...)
	if err != nil {
		return nil, err
	}

	outer := seqs.NewCollector(seqs.KindGenerator)
	err = seqs.ForEach(c, func(g seqs.Triple) (seqs.Action, error) {
		members, err := seqs.Collect(g.Value.(seqs.Cursor), g.Value)
		if err != nil {
			return seqs.Stop, err
		}
		g.Value = members
		return seqs.Continue, outer.Add(g)
	})
	if err != nil {
		return nil, err
	}
	return outer.Get()
}

// Part splits source in one pass into the values that satisfy pred and the
// ones that do not. Both keep their relative order and the kind of source.
func Part(source any, pred seqs.Predicate, opts ...Option) (matched, unmatched any, err error) {
	c, err := seqs.Normalize(source)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "part")
	}
	kind := seqs.KindOf(c)
	if cfg := configure(opts); cfg.kind != seqs.KindNone {
		kind = cfg.kind
	}

	yes, no := seqs.NewCollector(kind), seqs.NewCollector(kind)
	err = seqs.ForEach(c, func(t seqs.Triple) (seqs.Action, error) {
		if pred(t.Value, t.Key) {
			return seqs.Continue, yes.Add(t)
		}
		return seqs.Continue, no.Add(t)
	})
	if err != nil {
		return nil, nil, err
	}
	if matched, err = yes.Get(); err != nil {
		return nil, nil, err
	}
	if unmatched, err = no.Get(); err != nil {
		return nil, nil, err
	}
	return matched, unmatched, nil
}
