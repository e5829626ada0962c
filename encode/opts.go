package encode

import "github.com/signadot/treeconv/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the indentation width. Zero selects the format default: 4
// for JSON, 2 otherwise.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// WrapRoot encodes the node as the content of a root entry named tag.
func WrapRoot(tag string) EncodeOption {
	return func(es *EncState) { es.rootTag = tag }
}
