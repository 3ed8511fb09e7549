package eager

import (
	"polyiter/seqs"
)

// Option configures an eager operation.
type Option func(*config)

type config struct {
	kind seqs.Kind
}

// Into materializes the result as kind instead of the kind of the source.
func Into(kind seqs.Kind) Option {
	return func(cfg *config) {
		cfg.kind = kind
	}
}

func configure(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func run(c seqs.Cursor, err error, opts []Option) (any, error) {
	if err != nil {
		return nil, err
	}
	if cfg := configure(opts); cfg.kind != seqs.KindNone {
		return seqs.CollectKind(c, cfg.kind)
	}
	return seqs.Collect(c, c)
}

// Map collects fn(value, key) for every triple of source.
func Map(source any, fn seqs.MapFunc, opts ...Option) (any, error) {
	c, err := seqs.Map(source, fn)
	return run(c, err, opts)
}

// MapN combines its sources in lockstep. The result has the kind of the
// first source.
func MapN(fn func(key any, values ...any) any, sources ...any) (any, error) {
	c, err := seqs.MapN(fn, sources...)
	return run(c, err, nil)
}

// Filter collects the triples of source that satisfy pred.
func Filter(source any, pred seqs.Predicate, opts ...Option) (any, error) {
	c, err := seqs.Filter(source, pred)
	return run(c, err, opts)
}

// TakeWhile collects the leading triples of source that satisfy pred.
func TakeWhile(source any, pred seqs.Predicate, opts ...Option) (any, error) {
	c, err := seqs.TakeWhile(source, pred)
	return run(c, err, opts)
}

// Take collects the first n triples of source.
func Take(source any, n int, opts ...Option) (any, error) {
	c, err := seqs.Take(source, n)
	return run(c, err, opts)
}

// DropWhile collects what is left of source after its leading triples
// that satisfy pred.
func DropWhile(source any, pred seqs.Predicate, opts ...Option) (any, error) {
	c, err := seqs.DropWhile(source, pred)
	return run(c, err, opts)
}

// Drop collects source without its first n triples.
func Drop(source any, n int, opts ...Option) (any, error) {
	c, err := seqs.Drop(source, n)
	return run(c, err, opts)
}

// Zip collects []any tuples, one element per source, into the kind of the
// first source.
func Zip(sources ...any) (any, error) {
	c, err := seqs.Zip(sources...)
	return run(c, err, nil)
}

// Chain concatenates its sources into the kind of the first source.
func Chain(sources ...any) (any, error) {
	c, err := seqs.Chain(sources...)
	return run(c, err, nil)
}

// Pluck collects the value at a dot-separated path inside every value of
// source; see seqs.Pluck.
func Pluck(source any, path string, onlyExisting bool, opts ...Option) (any, error) {
	c, err := seqs.Pluck(source, path, onlyExisting)
	return run(c, err, opts)
}

// Invoke collects the result of calling method with args on every value of
// source; see seqs.Invoke.
func Invoke(source any, method string, args ...any) (any, error) {
	c, err := seqs.Invoke(source, method, args...)
	return run(c, err, nil)
}
