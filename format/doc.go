// Package format names the document formats treeconv converts between and
// classifies file paths by suffix.
//
// # Usage
//
//	f, err := format.FromPath("data.yaml") // format.YAMLFormat
//	f, err = format.ParseFormat("x")       // format.XMLFormat
//
// # Related Packages
//
//   - github.com/signadot/treeconv/parse - Parse bytes to IR
//   - github.com/signadot/treeconv/encode - Encode IR to bytes
package format
