package convert

import (
	"io"

	"github.com/signadot/treeconv/format"
)

type options struct {
	inFormat  *format.Format
	outFormat *format.Format
	indent    int
	check     io.Writer
}

type Option func(*options)

// InFormat overrides the input format otherwise derived from the input path.
func InFormat(f format.Format) Option {
	return func(o *options) { o.inFormat = &f }
}

// OutFormat overrides the output format otherwise derived from the output path.
func OutFormat(f format.Format) Option {
	return func(o *options) { o.outFormat = &f }
}

// Indent sets the output indentation, see encode.Indent.
func Indent(n int) Option {
	return func(o *options) { o.indent = n }
}

// CheckRoundTrip parses the converted output again and writes a diff to w
// when it does not match the input.
func CheckRoundTrip(w io.Writer) Option {
	return func(o *options) { o.check = w }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
