// Package ir provides the intermediate representation (IR) shared by every
// format treeconv converts between.
//
// # Overview
//
// A document in any supported format (XML, JSON, YAML) is decoded into a
// tree of *Node and encoded from one. The IR is a closed tagged union whose
// variant is given by Node.Type:
//
//   - NullType: absence of content
//   - ScalarType: leaf text, in Node.String
//   - MapType: ordered named fields, Fields[i] is the key of Values[i]
//   - ListType: ordered sequence, in Node.Values
//
// Scalars carry a ScalarKind. Markup text is always StringKind; JSON and
// YAML numbers and booleans keep NumberKind and BoolKind so that they are
// rendered unquoted when written back to one of those formats. The text
// form in Node.String is canonical for all kinds.
//
// # Maps
//
// Map keys are unique and kept in insertion order. Put replaces the value
// of an existing key in place, so a key always keeps the position of its
// first insertion.
//
// # Comparison
//
// Equal compares maps as mappings, ignoring entry order. EqualOrdered also
// requires entries to appear in the same order.
//
// # Thread Safety
//
// Nodes are built once per conversion by a single decoder and are not
// safe for concurrent mutation.
//
// # Related Packages
//
//   - github.com/signadot/treeconv/parse - Parses bytes into IR nodes
//   - github.com/signadot/treeconv/encode - Encodes IR nodes to bytes
//   - github.com/signadot/treeconv/xmltree - Maps element trees to and from IR
package ir
