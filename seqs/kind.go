package seqs

import "strconv"

// Kind tags the container kind a triple came from, and the kind an output
// container is rebuilt as.
type Kind uint8

const (
	// KindNone is the absent stamp: the triple's origin is unknown.
	KindNone Kind = iota
	// KindSequence is an ordered, densely indexed sequence.
	KindSequence
	// KindRecord is a string-keyed record.
	KindRecord
	// KindMapping is a key-unique mapping with arbitrary comparable keys.
	KindMapping
	// KindSet is a value-unique set. Set triples use the value as the key.
	KindSet
	// KindSparse is an integer-indexed sequence that may have holes.
	KindSparse
	// KindGenerator classifies an unlabelled lazy source. It never stamps a
	// materialized container; collecting into it defers to the triples'
	// own stamps.
	KindGenerator
)

var kindNames = [...]string{
	KindNone:      "none",
	KindSequence:  "sequence",
	KindRecord:    "record",
	KindMapping:   "mapping",
	KindSet:       "set",
	KindSparse:    "sparse",
	KindGenerator: "generator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Concrete reports whether containers of this kind can be materialized.
func (k Kind) Concrete() bool {
	return k >= KindSequence && k <= KindSparse
}
