// Package xmltree maps XML element trees to and from the IR.
//
// # Decoding
//
// Decode turns an element into the single-entry map {tag: content}. The
// content of an element with neither attributes nor child elements is a
// string scalar holding its trimmed text, or null when that text is empty.
// Any other element becomes a map, built in this order:
//
//  1. attributes, in document order, as string scalars
//  2. child elements, in document order; a tag seen a second time turns
//     its entry into a list of both values, later occurrences append
//  3. the element's own trimmed leading text under the key "text", when
//     it is not empty
//
// Writing a key that already exists replaces its value and keeps the key's
// first position. So a child element named like an attribute replaces the
// attribute, and inline text replaces an attribute or child named "text".
// Text following child elements is not kept.
//
// # Encoding
//
// Encode is the partial inverse. Nested maps become child elements and
// scalars become attributes, including an entry named "text". Lists and
// null entries cannot be represented and fail with ir.ErrUnsupportedShape,
// as does any root other than a map with exactly one entry. An element
// whose content is null is written empty.
//
// DecodeDocument rejects documents with more than one top-level element or
// with text outside the root element.
//
// Namespaces are not interpreted: prefixed names are carried as written.
package xmltree
