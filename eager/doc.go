// Package eager holds the materializing counterparts of the seqs
// combinators. Each one drives its lazy version to the end and rebuilds the
// result as a container of the same kind as its first source, unless [Into]
// asks for another kind.
//
// Sources must be finite.
package eager
