package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/treeconv/format"
)

var (
	errInternal = errors.New("internal error")

	ErrParse             = errors.New("parse error")
	ErrUnsupportedShape  = errors.New("unsupported shape")
	ErrIO                = errors.New("i/o error")
	ErrUnsupportedFormat = format.ErrUnsupportedFormat
)

// UnknownTypeError reports a node whose Type is none of the IR variants.
func UnknownTypeError(n *Node) error {
	return fmt.Errorf("%w: unknown node type %d", errInternal, int(n.Type))
}
