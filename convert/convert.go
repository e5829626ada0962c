package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/treeconv/debug"
	"github.com/signadot/treeconv/encode"
	"github.com/signadot/treeconv/format"
	"github.com/signadot/treeconv/ir"
	"github.com/signadot/treeconv/parse"
)

// Convert converts the document at in and writes it to out.
func Convert(in, out string, opts ...Option) error {
	o := newOptions(opts)
	inFmt, err := classify(in, o.inFormat)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	outFmt, err := classify(out, o.outFormat)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if debug.Route() {
		debug.Logf("converting %s (%s) to %s (%s)\n", in, inFmt, out, outFmt)
	}
	d, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	res, err := convertBytes(d, inFmt, outFmt, o)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	return writeFile(out, res)
}

// ConvertBytes converts d from inFmt to outFmt in memory.
func ConvertBytes(d []byte, inFmt, outFmt format.Format, opts ...Option) ([]byte, error) {
	return convertBytes(d, inFmt, outFmt, newOptions(opts))
}

func convertBytes(d []byte, inFmt, outFmt format.Format, o *options) ([]byte, error) {
	node, err := parse.Parse(d, parse.ParseFormat(inFmt))
	if err != nil {
		return nil, err
	}
	res, err := encode.Bytes(node, encode.EncodeFormat(outFmt), encode.Indent(o.indent))
	if err != nil {
		return nil, err
	}
	if o.check != nil {
		if err := check(o.check, node, res, inFmt, outFmt); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func classify(path string, override *format.Format) (format.Format, error) {
	if override != nil {
		return *override, nil
	}
	return format.FromPath(path)
}

// writeFile replaces path with d by renaming a temporary file from the same
// directory over it. A symlink at path is followed and its target replaced.
// An existing file keeps its permissions, a new one is created 0644.
func writeFile(path string, d []byte) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	tmp := f.Name()
	_, err = f.Write(d)
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	if err == nil {
		err = os.Chmod(tmp, mode)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: could not write %q: %w", ir.ErrIO, path, err)
	}
	return nil
}
