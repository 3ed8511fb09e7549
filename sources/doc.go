// Package sources adapts containers from other data models to the seqs
// source contract: YAML documents decoded with gopkg.in/yaml.v2, and IPLD
// data model nodes.
package sources
