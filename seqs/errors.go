package seqs

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedSourceKind means a source offers none of the iteration
	// capabilities the normalizer understands.
	ErrUnsupportedSourceKind = errors.New("unsupported source kind")
	// ErrUnknownContainerKind means the collector could classify neither the
	// reference container nor any triple it was given.
	ErrUnknownContainerKind = errors.New("unknown container kind")
	// ErrEmptyReduce means a reduce with no initial value met an empty source.
	ErrEmptyReduce = errors.New("reduce of empty sequence with no initial value")
	// ErrArity means a combinator was called without the sources it needs,
	// or with more optional arguments than it takes.
	ErrArity = errors.New("wrong number of arguments")
	// ErrIncompatibleKey means a key cannot be stored in the target kind,
	// such as a string key for a sparse sequence.
	ErrIncompatibleKey = errors.New("incompatible key for container kind")
	// ErrIncompatibleValue means a value cannot take part in an arithmetic
	// fold.
	ErrIncompatibleValue = errors.New("incompatible value")
	// ErrNoMethod means Invoke met a value without the requested method.
	ErrNoMethod = errors.New("no such method")
)

// OpError records the operation that failed and, when the failure is tied
// to one, the 1-based positional argument responsible.
type OpError struct {
	Op  string
	Arg int
	Err error
}

func (e *OpError) Error() string {
	if e.Arg > 0 {
		return fmt.Sprintf("%s: argument %d: %v", e.Op, e.Arg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

var sentinels = []error{
	ErrUnsupportedSourceKind,
	ErrUnknownContainerKind,
	ErrEmptyReduce,
	ErrArity,
	ErrIncompatibleKey,
	ErrIncompatibleValue,
	ErrNoMethod,
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// opError builds an OpError. Bare sentinels and errors without a stack
// trace get the stack of the call that failed.
func opError(op string, arg int, err error) error {
	if _, ok := err.(stackTracer); !ok || slices.Contains(sentinels, err) {
		err = errors.WithStack(err)
	}
	return &OpError{Op: op, Arg: arg, Err: err}
}

func unsupported(source any) error {
	return errors.Wrapf(ErrUnsupportedSourceKind, "source of type %T", source)
}
