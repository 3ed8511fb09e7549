/*
Package containers provides the ordered output containers that the seqs
result collector materializes into.

Go's native maps do not remember insertion order, so record, mapping and set
kinds each get a container that does:

  - [Record]: string-keyed fields.
  - [Mapping]: keys of any comparable dynamic type, including pointers, so
    groups can be keyed by object identity.
  - [Set]: unique values.
  - [Sparse]: integer-indexed slots with holes, enumerated by index.

Every container exposes Entries() iter.Seq2[any, any], which is the entry
capability the seqs normalizer looks for.
*/
package containers
