// Package encode encodes IR nodes as XML, JSON or YAML text.
//
// # Usage
//
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
//	// Encode the content of an element under an explicit root tag
//	err = encode.Encode(content, w, encode.WrapRoot("config"))
//
// XML output follows the rules of package xmltree and fails with
// ir.ErrUnsupportedShape for values it cannot represent. JSON and YAML
// represent every IR value; map entry order is kept.
//
// # Related Packages
//
//   - github.com/signadot/treeconv/ir - IR representation
//   - github.com/signadot/treeconv/parse - Parse text to IR
package encode
