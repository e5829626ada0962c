// Package parse parses XML, JSON and YAML documents into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseFormat(format.JSONFormat))
//	if err != nil {
//	    return err
//	}
//
// XML is decoded with the rules of package xmltree. JSON object members and
// YAML mapping entries keep their document order; JSON input may contain
// comments and trailing commas. Numbers and booleans become scalars of
// NumberKind and BoolKind.
//
// Malformed input fails with an error wrapping ir.ErrParse.
//
// # Related Packages
//
//   - github.com/signadot/treeconv/ir - IR representation
//   - github.com/signadot/treeconv/encode - Encode IR to text
package parse
